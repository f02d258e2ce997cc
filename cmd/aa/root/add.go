package root

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/engine"
	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		priority    string
		level       string
		category    string
		assignee    string
		due         string
		hours       int
		points      int
		community   string
		tags        []string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
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

			in := engine.CreateTaskInput{
				Title:          args[0],
				Description:    description,
				Priority:       engine.ParsePriority(priority),
				TaskLevel:      engine.ParseTaskLevel(level),
				Category:       engine.Category(category),
				Assignee:       assignee,
				EstimatedHours: hours,
				StoryPoints:    points,
				CommunityID:    community,
				Tags:           tags,
			}
			if due != "" {
				d, err := time.Parse("2006-01-02", due)
				if err != nil {
					return fmt.Errorf("bad due date %q (want YYYY-MM-DD)", due)
				}
				in.DueDate = &d
			}

			t, err := svc.CreateTask(in).Settle()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTask, "Task created"))
			fmt.Fprintln(out, ui.LabelValue("ID", t.ID))
			fmt.Fprintln(out, ui.LabelValue("Title", t.Title))
			fmt.Fprintln(out, ui.LabelValue("Status", t.Status))
			if n := svc.Store().UnreadCount(); n > 0 {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("%s %d mention notification(s) dispatched", ui.IconMention, n)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "desc", "", "Description")
	cmd.Flags().StringVarP(&priority, "priority", "p", "Medium", "Priority (Low|Medium|High)")
	cmd.Flags().StringVar(&level, "level", "Medium", "Task level (Easy|Medium|Hard)")
	cmd.Flags().StringVar(&category, "category", "Feature", "Category (Bug|Feature|Research|Documentation|Design|Deployment)")
	cmd.Flags().StringVar(&assignee, "assignee", "", "Assignee name")
	cmd.Flags().StringVar(&due, "due", "", "Due date (YYYY-MM-DD, required)")
	cmd.Flags().IntVar(&hours, "hours", 0, "Estimated hours")
	cmd.Flags().IntVar(&points, "points", 0, "Story points")
	cmd.Flags().StringVar(&community, "community", "", "Owning community id")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Tags (repeatable; @name tags mention users)")

	return cmd
}
