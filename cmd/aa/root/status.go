package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the sprint dashboard for a scope",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}
			scope := scopeFlag(cmd)
			out := cmd.OutOrStdout()

			if _, err := svc.FetchCommunities().Settle(); err != nil {
				return err
			}
			if current, ok := svc.Store().CurrentCommunity(); ok {
				fmt.Fprintln(out, ui.Heading(ui.IconChart, "Dashboard — "+current.Name))
			} else {
				fmt.Fprintln(out, ui.Heading(ui.IconChart, "Dashboard"))
			}
			fmt.Fprintln(out, "")

			epics, err := svc.FetchEpics(scope).Settle()
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconEpic+" Epics"))
			if len(epics) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No epics in scope."))
			}
			for _, e := range epics {
				fmt.Fprintf(out, "- %s [%s]\n  %s  %s\n",
					e.Title,
					ui.StatusText(e.Status),
					ui.ProgressBar(e.Progress, 20),
					ui.Muted.Render(fmt.Sprintf("%d sprints, %d completed", e.SprintCount, e.CompletedSprints)),
				)
			}
			fmt.Fprintln(out, "")

			sprints, err := svc.FetchSprints(scope).Settle()
			if err != nil {
				return err
			}
			stats := engine.Velocity(sprints)
			fmt.Fprintln(out, ui.H2.Render(ui.IconSprint+" Velocity"))
			if len(stats.Samples) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No completed sprints yet."))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Average", fmt.Sprintf("%d pts over %d sprint(s)", stats.Average, len(stats.Samples))))
				fmt.Fprintln(out, ui.LabelValue("Trend", string(stats.Trend)))
			}
			fmt.Fprintln(out, "")

			if active, ok := svc.Store().CurrentSprint(); ok {
				fmt.Fprintln(out, ui.H2.Render("Current sprint — "+active.Name))
				fmt.Fprintln(out, ui.LabelValue("Progress", ui.ProgressBar(active.Progress, 20)))
				fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d / %d", active.CompletedPoints, active.TotalPoints)))
				for _, w := range active.WeeklySprints {
					fmt.Fprintf(out, "  %s  %s\n", w.Name, ui.ProgressBar(w.Progress, 12))
				}
				if active.Retrospective != "" {
					fmt.Fprintln(out, ui.LabelValue("Retro", active.Retrospective))
				}
			}

			if n := svc.Store().UnreadCount(); n > 0 {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s %d unread notification(s)", ui.IconBell, n)))
			}
			return nil
		},
	}

	return cmd
}
