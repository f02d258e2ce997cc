package root

import (
	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the kanban board TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			return tui.RunBoard(svc, scopeFlag(cmd), cmd.OutOrStdout())
		},
	}

	return cmd
}
