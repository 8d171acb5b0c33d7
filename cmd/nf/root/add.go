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

func newAddCmd(cfg config.Config) *cobra.Command {
	var taskType string

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
			tt, err := engine.ParseTaskType(taskType)
			if err != nil {
				return err
			}

			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := sess.AddTask(ctx, args[0], tt)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s %s\n",
				ui.IconPlus, ui.TypeIcon(tt), t.Title,
				ui.Muted.Render(fmt.Sprintf("(%s, id %s)", t.Type, shortID(t.ID))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&taskType, "type", "t", "todo", "Task type (todo|daily|habit)")
	return cmd
}
