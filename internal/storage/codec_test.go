package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpenko/tasklist/internal/model"
)

func TestDecodeJSON_Defensive(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantIDs []int64
	}{
		{"not json at all", `garbage`, nil},
		{"wrong top-level shape", `[1,2,3]`, nil},
		{"foreign document", `{"something":"else"}`, nil},
		{
			"broken record dropped, rest kept",
			`{"tasks":[
				{"id":1,"title":"ok","deadline":"2026-01-01","priority":2},
				{"id":"not-a-number","title":"bad"},
				{"id":2,"title":"also ok","deadline":"2026-01-02","priority":4}
			]}`,
			[]int64{1, 2},
		},
		{
			"records without identity dropped",
			`{"tasks":[
				{"id":0,"title":"no id","deadline":"2026-01-01","priority":2},
				{"id":3,"title":"   ","deadline":"2026-01-01","priority":2},
				{"id":4,"title":"bad date","deadline":"someday","priority":2},
				{"id":5,"title":"keeper","deadline":"2026-01-01","priority":2}
			]}`,
			[]int64{5},
		},
		{
			"duplicate id keeps first",
			`{"tasks":[
				{"id":7,"title":"first","deadline":"2026-01-01","priority":1},
				{"id":7,"title":"second","deadline":"2026-01-02","priority":2}
			]}`,
			[]int64{7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := decodeJSON([]byte(tt.data))

			var gotIDs []int64
			for _, task := range tasks {
				gotIDs = append(gotIDs, task.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

func TestSanitize_CoercesFields(t *testing.T) {
	created := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)

	tasks := sanitize([]model.Task{
		{ID: 1, Title: "low", Deadline: "2026-01-01", Priority: -3, CreatedAt: created, UpdatedAt: created},
		{ID: 2, Title: "high", Deadline: "2026-01-01", Priority: 99, CreatedAt: created, UpdatedAt: created},
		{ID: 3, Title: "stale update", Deadline: "2026-01-01", Priority: 2,
			CreatedAt: created, UpdatedAt: created.Add(-time.Hour)},
		{ID: 4, Title: "no timestamps", Deadline: "2026-01-01", Priority: 2},
	})

	require.Len(t, tasks, 4)
	assert.Equal(t, 1, tasks[0].Priority)
	assert.Equal(t, 5, tasks[1].Priority)
	assert.Equal(t, tasks[2].CreatedAt, tasks[2].UpdatedAt)
	assert.False(t, tasks[3].CreatedAt.IsZero())
	assert.False(t, tasks[3].UpdatedAt.Before(tasks[3].CreatedAt))
}

func TestEncodeDecodeJSON_RoundTrip(t *testing.T) {
	created := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)
	want := []model.Task{
		{ID: 1, Title: "alpha", Description: "first", Deadline: "2026-04-01",
			Priority: 2, Completed: false, CreatedAt: created, UpdatedAt: created},
		{ID: 2, Title: "beta", Description: "second", Deadline: "2026-03-20",
			Priority: 5, Completed: true, CreatedAt: created, UpdatedAt: created.Add(time.Hour)},
	}

	data, err := encodeJSON(want)
	require.NoError(t, err)
	assert.Equal(t, want, decodeJSON(data))
}
