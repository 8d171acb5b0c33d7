package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"neurofocus/internal/config"
	"neurofocus/internal/storage"
	"neurofocus/internal/ui"
)

func newFocusCmd(cfg config.Config) *cobra.Command {
	var isBreak bool

	cmd := &cobra.Command{
		Use:   "focus <minutes>",
		Short: "Log a finished focus (or break) session",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("minutes is required")
			}
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return errors.New("minutes must be a positive integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, _ := strconv.Atoi(args[0])
			mode := "focus"
			if isBreak {
				mode = "break"
			}

			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			err = store.Focus().Insert(ctx, storage.FocusSession{
				ID:              uuid.NewString(),
				UserID:          cfg.UserID,
				DurationMinutes: minutes,
				Mode:            mode,
				CompletedAt:     time.Now().UTC(),
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Logged %d %s minutes.\n", ui.IconTimer, minutes, mode)
			if total, err := store.Focus().MinutesSince(ctx, cfg.UserID, startOfDay(time.Now())); err == nil {
				fmt.Fprintln(out, ui.Dim.Render(fmt.Sprintf("%d focused minutes today.", total)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&isBreak, "break", false, "Log a break instead of focus time")
	return cmd
}
