package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newCommentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment <task-id> <text>",
		Short: "Comment on a task (@name mentions notify)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("task id and text are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			res, err := svc.AddComment(args[0], args[1]).Settle()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Comment added to %q\n", ui.IconComment, res.Task.Title)
			fmt.Fprintln(out, ui.LabelValue("Comments", len(res.Task.Comments)))
			if n := svc.Store().UnreadCount(); n > 0 {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s %d mention notification(s) dispatched", ui.IconMention, n)))
			}
			return nil
		},
	}

	return cmd
}
