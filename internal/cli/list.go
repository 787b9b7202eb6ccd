package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mkarpenko/tasklist/internal/model"
	"github.com/mkarpenko/tasklist/internal/view"
	"github.com/mkarpenko/tasklist/pkg/render"
)

func newListCmd(app *App) *cobra.Command {
	var (
		status   string
		priority int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the task list",
		RunE: func(*cobra.Command, []string) error {
			filter, err := parseFilter(status, priority)
			if err != nil {
				return err
			}

			v := view.Compute(app.store.Collection(), filter, time.Now())
			render.Table(app.out, v)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "all", "all, done or todo")
	cmd.Flags().IntVar(&priority, "priority", 0, "show only this priority (1-5), 0 for all")
	return cmd
}

func parseFilter(status string, priority int) (model.FilterState, error) {
	var f model.FilterState

	switch status {
	case "all":
		f.Status = model.StatusAll
	case "done":
		f.Status = model.StatusCompleted
	case "todo":
		f.Status = model.StatusIncomplete
	default:
		return f, fmt.Errorf("invalid status filter %q (want all, done or todo)", status)
	}

	if priority != 0 && !model.ValidPriority(priority) {
		return f, fmt.Errorf("invalid priority filter %d (want 1-5, or 0 for all)", priority)
	}
	f.Priority = priority
	return f, nil
}
