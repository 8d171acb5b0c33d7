package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"neurofocus/internal/config"
	"neurofocus/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "nf",
	Short:         "NeuroFocus — gamified focus and task tracker",
	Long:          "NeuroFocus is a local-first CLI/TUI productivity tracker with XP, streaks and an AI coach.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	cfg := config.Load()
	config.SetupLogging(cfg)

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newAddCmd(cfg),
		newListCmd(cfg),
		newCheckCmd(cfg),
		newUncheckCmd(cfg),
		newRmCmd(cfg),
		newStatusCmd(cfg),
		newSetupCmd(cfg),
		newProfileCmd(cfg),
		newStepsCmd(cfg),
		newCoachCmd(cfg),
		newFocusCmd(cfg),
		newBoardCmd(cfg),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
