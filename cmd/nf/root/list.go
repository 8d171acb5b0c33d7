package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"neurofocus/internal/config"
	"neurofocus/internal/engine"
	"neurofocus/internal/ui"
)

func newListCmd(cfg config.Config) *cobra.Command {
	var showAll bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			tasks := sess.Tasks()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Dim.Render("No tasks yet. Add one with `nf add`."))
				return nil
			}

			fmt.Fprintln(out, ui.Heading(ui.IconBrain, "Tasks"))
			for _, t := range tasks {
				if t.IsCompleted && !showAll {
					continue
				}
				check := "[ ]"
				title := t.Title
				suffix := ""
				if t.IsCompleted {
					check = "[x]"
					title = ui.Muted.Render(title)
					suffix = ui.Gold.Render(fmt.Sprintf("  +%d XP", t.Points))
				}
				fmt.Fprintf(out, "%s %s %s %s%s\n",
					check, ui.TypeIcon(engine.TaskType(t.Type)), title,
					ui.Muted.Render(shortID(t.ID)), suffix)
				for _, sub := range t.Subtasks {
					subCheck := "[ ]"
					if sub.IsCompleted {
						subCheck = "[x]"
					}
					fmt.Fprintf(out, "    %s %s\n", subCheck, ui.Dim.Render(sub.Title))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showAll, "all", "a", false, "Include completed tasks")
	return cmd
}
