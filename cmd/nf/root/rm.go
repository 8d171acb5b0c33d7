package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"neurofocus/internal/config"
	"neurofocus/internal/ui"
)

func newRmCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <task>",
		Short: "Delete a task",
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
			if err := sess.DeleteTask(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Deleted "+shortID(id)+"."))
			return nil
		},
	}

	return cmd
}
