package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"neurofocus/internal/ai"
	"neurofocus/internal/config"
	"neurofocus/internal/ui"
)

func newCoachCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Routine suggestions from the AI coach",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			var done, pending []string
			for _, t := range sess.Tasks() {
				if t.IsCompleted {
					done = append(done, t.Title)
				} else {
					pending = append(pending, t.Title)
				}
			}

			// Unreachable coach still answers with the built-in tips.
			suggestions := ai.FallbackSuggestions()
			if client, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel); err == nil {
				defer client.Close()
				suggestions = client.RoutineSuggestions(ctx, done, pending)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconRobot, "Dr. Neuro suggests"))
			for _, s := range suggestions {
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(s.Title+":"), s.Description)
			}
			return nil
		},
	}

	cmd.AddCommand(newCoachChatCmd(cfg))
	return cmd
}

func newCoachChatCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Chat with Dr. Neuro (ctrl+d to leave)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			client, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return err
			}
			defer client.Close()

			chat := client.NewCoachChat(sess.Profile(), sess.Tasks())
			out := cmd.OutOrStdout()
			scanner := bufio.NewScanner(cmd.InOrStdin())

			fmt.Fprintln(out, ui.Heading(ui.IconRobot, "Dr. Neuro"))
			fmt.Fprintln(out, ui.Dim.Render("Ask anything about focus, sleep or your routine."))
			for {
				fmt.Fprint(out, ui.Key.Render("you> "))
				if !scanner.Scan() {
					fmt.Fprintln(out, "")
					return nil
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					continue
				}
				if line == "exit" || line == "quit" {
					return nil
				}
				fmt.Fprintln(out, chat.Send(ctx, line))
				fmt.Fprintln(out, "")
			}
		},
	}

	return cmd
}
