package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newEpicCmd() *cobra.Command {
	var (
		description string
		color       string
		start       string
		target      string
		community   string
	)

	cmd := &cobra.Command{
		Use:   "epic <title>",
		Short: "Create an epic",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			in := engine.CreateEpicInput{
				Title:       args[0],
				Description: description,
				Color:       color,
				CommunityID: community,
			}
			if start != "" {
				t, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("bad start date %q (want YYYY-MM-DD)", start)
				}
				in.StartDate = t
			}
			if target != "" {
				t, err := time.Parse("2006-01-02", target)
				if err != nil {
					return fmt.Errorf("bad target date %q (want YYYY-MM-DD)", target)
				}
				in.TargetDate = t
			}

			e, err := svc.CreateEpic(in).Settle()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconEpic, "Epic created"))
			fmt.Fprintln(out, ui.LabelValue("ID", e.ID))
			fmt.Fprintln(out, ui.LabelValue("Title", e.Title))
			fmt.Fprintln(out, ui.LabelValue("Window", fmt.Sprintf("%s → %s", e.StartDate.Format("2006-01-02"), e.TargetDate.Format("2006-01-02"))))
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVar(&color, "color", "indigo", "Color tag")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&target, "target", "", "Target date (YYYY-MM-DD, required)")
	cmd.Flags().StringVar(&community, "community", "", "Owning community id")

	return cmd
}
