package root

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newLinkCmd() *cobra.Command {
	var unlink bool

	cmd := &cobra.Command{
		Use:   "link <epic-id> <sprint-id>",
		Short: "Link (or unlink) a sprint to an epic",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("epic id and sprint id are required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := openService(cmd)
			if err != nil {
				return err
			}

			e, err := svc.LinkSprintToEpic(args[0], args[1], !unlink).Settle()
			if err != nil {
				return err
			}

			verb := "Linked"
			if unlink {
				verb = "Unlinked"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s sprint %s\n", ui.IconEpic, verb, args[1])
			fmt.Fprintln(out, ui.LabelValue("Epic", e.Title))
			fmt.Fprintln(out, ui.LabelValue("Progress", ui.ProgressBar(e.Progress, 20)))
			fmt.Fprintln(out, ui.LabelValue("Sprints", fmt.Sprintf("%d linked, %d completed", e.SprintCount, e.CompletedSprints)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unlink, "unlink", false, "Remove the link instead of adding it")

	return cmd
}
