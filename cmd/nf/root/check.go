package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"neurofocus/internal/config"
	"neurofocus/internal/engine"
	"neurofocus/internal/ui"
)

func newCheckCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <task>",
		Short: "Complete a task (id, id prefix or title)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task reference is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := findTaskID(sess, args[0])
			if err != nil {
				return err
			}

			res, err := sess.Toggle(ctx, id)
			if err != nil {
				return err
			}
			if !res.Completed {
				// Toggle on an already-done task unchecks it; report that.
				printUnchecked(cmd, res)
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s +%d XP (%s)\n", ui.IconDone, res.Points, ui.TierText(res.Tier))
			if res.Message != "" {
				fmt.Fprintln(out, ui.Dim.Render(res.Message))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s You are now level %d!\n", ui.IconTrophy, ui.BadgeLevelUp, res.LevelAfter)
			}
			fmt.Fprintf(out, "%s %d-day streak\n", ui.IconFire, res.StreakDays)
			return nil
		},
	}

	return cmd
}

func newUncheckCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uncheck <task>",
		Short: "Undo a completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task reference is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := findTaskID(sess, args[0])
			if err != nil {
				return err
			}

			for _, t := range sess.Tasks() {
				if t.ID == id && !t.IsCompleted {
					return fmt.Errorf("task %s is not completed", shortID(id))
				}
			}

			res, err := sess.Toggle(ctx, id)
			if err != nil {
				return err
			}
			printUnchecked(cmd, res)
			return nil
		},
	}

	return cmd
}

func printUnchecked(cmd *cobra.Command, res *engine.ToggleResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Unchecked %s: -%d XP\n", shortID(res.TaskID), res.Points)
	if res.LevelDown {
		fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf("Level dropped to %d.", res.LevelAfter)))
	}
}
