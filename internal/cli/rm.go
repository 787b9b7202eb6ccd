package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task permanently",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := app.store.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(app.out, "deleted task %d\n", id)
			return nil
		},
	}
}
