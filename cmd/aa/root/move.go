package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <task-id> <status>",
		Short: "Move a task to a kanban status",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("task id and status are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			status, ok := engine.ParseTaskStatus(args[1])
			if !ok {
				return fmt.Errorf("unknown status %q (backlog|todo|inProgress|review|done)", args[1])
			}

			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			t, err := svc.UpdateTaskStatus(args[0], status).Settle()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s → %s\n", ui.IconDone, t.Title, ui.StatusText(t.Status))
			return nil
		},
	}

	return cmd
}
