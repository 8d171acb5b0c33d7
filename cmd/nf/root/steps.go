package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"neurofocus/internal/ai"
	"neurofocus/internal/config"
	"neurofocus/internal/ui"
)

func newStepsCmd(cfg config.Config) *cobra.Command {
	var tick int

	cmd := &cobra.Command{
		Use:   "steps <task>",
		Short: "Break a task into AI micro-steps, or tick one off",
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
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("tick") {
				sub, err := sess.ToggleSubtask(ctx, id, tick)
				if err != nil {
					return err
				}
				mark := "[ ]"
				if sub.IsCompleted {
					mark = "[x]"
				}
				fmt.Fprintf(out, "%s %s\n", mark, sub.Title)
				return nil
			}

			var title string
			for _, t := range sess.Tasks() {
				if t.ID == id {
					title = t.Title
					break
				}
			}

			client, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return err
			}
			defer client.Close()

			steps := client.DecomposeTask(ctx, title)
			if len(steps) == 0 {
				fmt.Fprintln(out, ui.Dim.Render("No suggestion right now. Try rephrasing the task."))
				return nil
			}

			if err := sess.AttachSteps(ctx, id, steps); err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Heading(ui.IconRobot, "Micro-steps for "+title))
			for i, step := range steps {
				fmt.Fprintf(out, "%d. %s\n", i+1, step)
			}
			fmt.Fprintln(out, ui.Dim.Render("Tick one with `nf steps "+shortID(id)+" --tick <n>`."))
			return nil
		},
	}

	cmd.Flags().IntVar(&tick, "tick", 0, "Toggle step by number instead of generating")
	return cmd
}
