package cli

import (
	"github.com/spf13/cobra"

	"github.com/mkarpenko/tasklist/pkg/render"
)

func newDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE:  setCompleted(app, true),
	}
}

func newReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen <id>",
		Short: "Mark a task incomplete again",
		Args:  cobra.ExactArgs(1),
		RunE:  setCompleted(app, false),
	}
}

func setCompleted(app *App, completed bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		t, err := app.store.SetCompleted(cmd.Context(), id, completed)
		if err != nil {
			return err
		}
		render.Task(app.out, t)
		return nil
	}
}
