package root

import (
	"context"

	"github.com/spf13/cobra"

	"neurofocus/internal/config"
	"neurofocus/internal/tui"
)

func newBoardCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, sess, cmd.OutOrStdout())
		},
	}

	return cmd
}
