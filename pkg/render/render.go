// Package render formats engine output for the terminal.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mkarpenko/tasklist/internal/model"
	"github.com/mkarpenko/tasklist/internal/view"
)

// Table writes the view as an aligned table with a counts footer.
func Table(w io.Writer, v view.View) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDONE\tDUE\tPRI\tTITLE\tDESCRIPTION")
	for _, t := range v.Tasks {
		fmt.Fprintf(tw, "%d\t%s\t%s%s\t%d\t%s\t%s\n",
			t.ID, mark(t.Completed), t.Deadline, dueNote(t), t.Priority, t.Title, t.Description)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d shown, %d total, %d completed\n",
		v.VisibleCount, v.TotalCount, v.CompletedCount)
}

// Task writes a one-line summary of a single task, used after mutations.
func Task(w io.Writer, t model.Task) {
	fmt.Fprintf(w, "[%d] %s %s (due %s, priority %d)\n",
		t.ID, mark(t.Completed), t.Title, t.Deadline, t.Priority)
}

func mark(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func dueNote(t view.AnnotatedTask) string {
	switch {
	case t.Overdue:
		return " (overdue)"
	case t.DueToday:
		return " (today)"
	default:
		return ""
	}
}
