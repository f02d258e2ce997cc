package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newInboxCmd() *cobra.Command {
	var markAll bool

	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Show mention notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			if markAll {
				svc.MarkAllNotificationsRead()
			}

			st := svc.Store()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBell, fmt.Sprintf("Inbox (%d unread)", st.UnreadCount())))
			list := st.ListNotifications()
			if len(list) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No notifications."))
				return nil
			}
			for _, n := range list {
				marker := ui.Warn.Render("●")
				if n.Read {
					marker = ui.Muted.Render("○")
				}
				fmt.Fprintf(out, "%s %s %s\n", marker, n.Message, ui.Muted.Render(n.CreatedAt.Format("Jan 2 15:04")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&markAll, "read-all", false, "Mark every notification read")

	return cmd
}
