package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newSprintCmd() *cobra.Command {
	var (
		goal      string
		sprintTyp string
		start     string
		end       string
		community string
		points    int
	)

	cmd := &cobra.Command{
		Use:   "sprint <name>",
		Short: "Create a sprint",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			in := engine.CreateSprintInput{
				Name:        args[0],
				Goal:        goal,
				Type:        engine.SprintType(sprintTyp),
				CommunityID: community,
				TotalPoints: points,
			}
			if start != "" {
				t, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("bad start date %q (want YYYY-MM-DD)", start)
				}
				in.StartDate = t
			}
			if end != "" {
				t, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("bad end date %q (want YYYY-MM-DD)", end)
				}
				in.EndDate = t
			}

			sp, err := svc.CreateSprint(in).Settle()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSprint, "Sprint created"))
			fmt.Fprintln(out, ui.LabelValue("ID", sp.ID))
			fmt.Fprintln(out, ui.LabelValue("Name", sp.Name))
			fmt.Fprintln(out, ui.LabelValue("Window", fmt.Sprintf("%s → %s", sp.StartDate.Format("2006-01-02"), sp.EndDate.Format("2006-01-02"))))
			fmt.Fprintln(out, ui.LabelValue("Total points", sp.TotalPoints))
			return nil
		},
	}

	cmd.Flags().StringVar(&goal, "goal", "", "Sprint goal")
	cmd.Flags().StringVar(&sprintTyp, "type", "weekly", "Sprint type (weekly|monthly|quarterly)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&community, "community", "", "Owning community id")
	cmd.Flags().IntVar(&points, "points", 0, "Total story points")

	return cmd
}
