package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpenko/tasklist/internal/model"
)

var now = time.Date(2026, 8, 28, 15, 4, 5, 0, time.Local)

func day(offset int) string {
	return now.AddDate(0, 0, offset).Format(model.DeadlineLayout)
}

func TestCompute_SortOrder(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "A", Completed: false, Deadline: "2024-01-01", Priority: 3},
		{ID: 2, Title: "B", Completed: true, Deadline: "2023-01-01", Priority: 5},
		{ID: 3, Title: "C", Completed: false, Deadline: "2024-01-01", Priority: 5},
	}

	v := Compute(tasks, model.FilterState{}, now)

	require.Len(t, v.Tasks, 3)
	// incomplete first, then deadline, then priority descending
	assert.Equal(t, "C", v.Tasks[0].Title)
	assert.Equal(t, "A", v.Tasks[1].Title)
	assert.Equal(t, "B", v.Tasks[2].Title)
}

func TestCompute_TiesKeepCreationOrder(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Title: "first", Deadline: "2026-01-01", Priority: 2},
		{ID: 2, Title: "second", Deadline: "2026-01-01", Priority: 2},
		{ID: 3, Title: "third", Deadline: "2026-01-01", Priority: 2},
	}

	v := Compute(tasks, model.FilterState{}, now)

	require.Len(t, v.Tasks, 3)
	assert.Equal(t, int64(1), v.Tasks[0].ID)
	assert.Equal(t, int64(2), v.Tasks[1].ID)
	assert.Equal(t, int64(3), v.Tasks[2].ID)
}

func TestCompute_DoesNotMutateInput(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Deadline: "2026-02-01", Priority: 1},
		{ID: 2, Deadline: "2026-01-01", Priority: 1},
	}

	Compute(tasks, model.FilterState{}, now)

	assert.Equal(t, int64(1), tasks[0].ID, "collection order is creation order, not display order")
	assert.Equal(t, int64(2), tasks[1].ID)
}

func TestCompute_Filters(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Completed: false, Deadline: day(1), Priority: 3},
		{ID: 2, Completed: false, Deadline: day(1), Priority: 5},
		{ID: 3, Completed: true, Deadline: day(1), Priority: 3},
		{ID: 4, Completed: true, Deadline: day(1), Priority: 1},
	}

	tests := []struct {
		name    string
		filter  model.FilterState
		wantIDs []int64
	}{
		{"all", model.FilterState{}, []int64{1, 2, 3, 4}},
		{"completed only", model.FilterState{Status: model.StatusCompleted}, []int64{3, 4}},
		{"incomplete only", model.FilterState{Status: model.StatusIncomplete}, []int64{1, 2}},
		{"priority only", model.FilterState{Priority: 3}, []int64{1, 3}},
		{"incomplete priority 3", model.FilterState{Status: model.StatusIncomplete, Priority: 3}, []int64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Compute(tasks, tt.filter, now)

			gotIDs := make([]int64, 0, len(v.Tasks))
			for _, task := range v.Tasks {
				gotIDs = append(gotIDs, task.ID)
			}
			assert.ElementsMatch(t, tt.wantIDs, gotIDs)
			assert.Equal(t, len(tt.wantIDs), v.VisibleCount)

			// aggregate counts ignore the filter
			assert.Equal(t, 4, v.TotalCount)
			assert.Equal(t, 2, v.CompletedCount)
		})
	}
}

func TestCompute_Annotations(t *testing.T) {
	tests := []struct {
		name         string
		deadline     string
		completed    bool
		wantOverdue  bool
		wantDueToday bool
	}{
		{"yesterday", day(-1), false, true, false},
		{"today", day(0), false, false, true},
		{"tomorrow", day(1), false, false, false},
		{"completed yesterday", day(-1), true, false, false},
		{"completed today", day(0), true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := []model.Task{
				{ID: 1, Deadline: tt.deadline, Completed: tt.completed, Priority: 3},
			}

			v := Compute(tasks, model.FilterState{}, now)

			require.Len(t, v.Tasks, 1)
			assert.Equal(t, tt.wantOverdue, v.Tasks[0].Overdue)
			assert.Equal(t, tt.wantDueToday, v.Tasks[0].DueToday)
			assert.False(t, v.Tasks[0].Overdue && v.Tasks[0].DueToday)
		})
	}
}

func TestCompute_EmptyCollection(t *testing.T) {
	v := Compute(nil, model.FilterState{}, now)

	assert.Empty(t, v.Tasks)
	assert.Zero(t, v.VisibleCount)
	assert.Zero(t, v.TotalCount)
	assert.Zero(t, v.CompletedCount)
}
