package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newListCmd() *cobra.Command {
	var (
		byStatus   string
		byPriority string
		byCategory string
		byAssignee string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			tasks, err := svc.FetchTasks(scopeFlag(cmd)).Settle()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Tasks"))
			shown := 0
			for _, t := range tasks {
				if byStatus != "" && t.Status != byStatus {
					continue
				}
				if byPriority != "" && t.Priority != byPriority {
					continue
				}
				if byCategory != "" && t.Category != byCategory {
					continue
				}
				if byAssignee != "" && t.Assignee != byAssignee {
					continue
				}
				shown++
				assignee := t.Assignee
				if assignee == "" {
					assignee = "unassigned"
				}
				fmt.Fprintf(out, "%s  %s  [%s] %s %s\n",
					ui.Muted.Render("#"+t.ID),
					t.Title,
					ui.StatusText(t.Status),
					ui.PriorityText(t.Priority),
					ui.Muted.Render(assignee),
				)
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No tasks in scope."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&byStatus, "status", "", "Filter by kanban status")
	cmd.Flags().StringVar(&byPriority, "priority", "", "Filter by priority (Low|Medium|High)")
	cmd.Flags().StringVar(&byCategory, "category", "", "Filter by category")
	cmd.Flags().StringVar(&byAssignee, "assignee", "", "Filter by assignee name")

	return cmd
}
