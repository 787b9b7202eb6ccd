package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarpenko/tasklist/internal/store"
	"github.com/mkarpenko/tasklist/pkg/render"
)

func newAddCmd(app *App) *cobra.Command {
	var p store.TaskParams

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := app.store.Create(cmd.Context(), p)
			if err != nil {
				return err
			}
			fmt.Fprint(app.out, "added ")
			render.Task(app.out, t)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.Title, "title", "", "task title")
	cmd.Flags().StringVar(&p.Description, "desc", "", "task description")
	cmd.Flags().StringVar(&p.Deadline, "due", "", "deadline as YYYY-MM-DD")
	cmd.Flags().IntVar(&p.Priority, "priority", 3, "priority from 1 to 5")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("desc")
	cmd.MarkFlagRequired("due")
	return cmd
}
