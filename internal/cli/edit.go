package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mkarpenko/tasklist/internal/store"
	"github.com/mkarpenko/tasklist/pkg/render"
)

func newEditCmd(app *App) *cobra.Command {
	var p store.TaskParams

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace a task's editable fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			t, err := app.store.Update(cmd.Context(), id, p)
			if err != nil {
				return err
			}
			fmt.Fprint(app.out, "updated ")
			render.Task(app.out, t)
			return nil
		},
	}

	// the update contract replaces all four editable fields at once
	cmd.Flags().StringVar(&p.Title, "title", "", "task title")
	cmd.Flags().StringVar(&p.Description, "desc", "", "task description")
	cmd.Flags().StringVar(&p.Deadline, "due", "", "deadline as YYYY-MM-DD")
	cmd.Flags().IntVar(&p.Priority, "priority", 0, "priority from 1 to 5")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("desc")
	cmd.MarkFlagRequired("due")
	cmd.MarkFlagRequired("priority")
	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
