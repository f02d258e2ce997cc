package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newBurndownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "burndown <sprint-id>",
		Short: "Show the ideal vs actual burndown for a sprint",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("sprint id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			sp, ok := svc.Store().GetSprint(args[0])
			if !ok {
				return fmt.Errorf("sprint %q not found", args[0])
			}
			points, err := svc.SprintBurndown(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Burndown — "+sp.Name))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d points, %s → %s",
				sp.TotalPoints, sp.StartDate.Format("Jan 2"), sp.EndDate.Format("Jan 2"))))
			fmt.Fprintln(out, "")

			max := sp.TotalPoints
			if max == 0 {
				max = 1
			}
			for _, p := range points {
				width := 30
				idealBar := strings.Repeat("·", p.Ideal*width/max)
				actualBar := strings.Repeat("█", p.Actual*width/max)
				fmt.Fprintf(out, "%s  %s\n", ui.Muted.Render(p.Date.Format("Mon 02")), actualBar)
				fmt.Fprintf(out, "        %s\n", ui.Muted.Render(idealBar))
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.Muted.Render("█ actual remaining · dotted ideal"))
			return nil
		},
	}

	return cmd
}
