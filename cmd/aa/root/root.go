package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Shubham12sharma/Assign-Alert/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "aa",
	Short:         "Assign-Alert — sprint and task tracking for teams",
	Long:          "Assign-Alert tracks epics, sprints and tasks across a community hierarchy,\nwith mention notifications and sprint analytics.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().String("config", "", "Config file path (default ~/.assignalert.toml)")
	rootCmd.PersistentFlags().StringP("scope", "s", "all", "Community scope (community id or 'all')")

	rootCmd.AddCommand(
		newListCmd(),
		newAddCmd(),
		newEpicCmd(),
		newSprintCmd(),
		newMoveCmd(),
		newLinkCmd(),
		newCommentCmd(),
		newStatusCmd(),
		newBurndownCmd(),
		newInboxCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
