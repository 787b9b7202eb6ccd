// Package view derives the display projection of a collection. Everything
// here is pure: the collection is never mutated and the whole view is
// recomputed from scratch on every call.
package view

import (
	"sort"
	"time"

	"github.com/mkarpenko/tasklist/internal/model"
)

// AnnotatedTask is a task plus its date-relative display flags. The flags are
// computed at view time against local midnight and never stored.
type AnnotatedTask struct {
	model.Task
	Overdue  bool
	DueToday bool
}

type View struct {
	Tasks          []AnnotatedTask
	VisibleCount   int
	TotalCount     int
	CompletedCount int
}

// Compute sorts, filters and annotates a snapshot of the collection.
// Sort order: incomplete before completed, then earlier deadline, then higher
// priority; ties keep creation order (stable sort). TotalCount and
// CompletedCount cover the full collection regardless of filters.
func Compute(tasks []model.Task, f model.FilterState, now time.Time) View {
	v := View{TotalCount: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			v.CompletedCount++
		}
	}

	sorted := make([]model.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Completed != b.Completed {
			return !a.Completed
		}
		if a.Deadline != b.Deadline {
			return a.Deadline < b.Deadline
		}
		return a.Priority > b.Priority
	})

	today := now.Format(model.DeadlineLayout)
	v.Tasks = make([]AnnotatedTask, 0, len(sorted))
	for _, t := range sorted {
		if !f.Matches(t) {
			continue
		}
		v.Tasks = append(v.Tasks, AnnotatedTask{
			Task:     t,
			Overdue:  !t.Completed && t.Deadline < today,
			DueToday: !t.Completed && t.Deadline == today,
		})
	}
	v.VisibleCount = len(v.Tasks)
	return v
}
