package root

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"neurofocus/internal/config"
	"neurofocus/internal/engine"
	"neurofocus/internal/storage"
	"neurofocus/internal/ui"
)

func newSetupCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "First-run onboarding (name and chronotype)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			reader := bufio.NewReader(cmd.InOrStdin())

			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Welcome to NeuroFocus"))

			fmt.Fprint(out, "What should we call you? ")
			name, _ := reader.ReadString('\n')
			name = strings.TrimSpace(name)

			fmt.Fprintln(out, "\nWhen is your energy highest?")
			fmt.Fprintln(out, "  lion    — early morning")
			fmt.Fprintln(out, "  bear    — follows daylight")
			fmt.Fprintln(out, "  wolf    — evening and night")
			fmt.Fprintln(out, "  dolphin — light, irregular sleeper")
			fmt.Fprint(out, "Chronotype: ")
			chrono, _ := reader.ReadString('\n')

			patch := storage.ProfileSettingsPatch{}
			if name != "" {
				patch.Username = &name
			}
			if c := strings.TrimSpace(chrono); c != "" {
				parsed, err := engine.ParseChronotype(c)
				if err != nil {
					return err
				}
				s := string(parsed)
				patch.Chronotype = &s
			}

			if err := sess.UpdateProfileSettings(ctx, patch); err != nil {
				return err
			}
			fmt.Fprintln(out, "\n"+ui.Good.Render("You're set. Try `nf add` and `nf board`."))
			return nil
		},
	}

	return cmd
}

func newProfileCmd(cfg config.Config) *cobra.Command {
	var name, bio, chrono string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, _, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()

			patch := storage.ProfileSettingsPatch{}
			if cmd.Flags().Changed("name") {
				patch.Username = &name
			}
			if cmd.Flags().Changed("bio") {
				patch.Bio = &bio
			}
			if cmd.Flags().Changed("chronotype") {
				parsed, err := engine.ParseChronotype(chrono)
				if err != nil {
					return err
				}
				s := string(parsed)
				patch.Chronotype = &s
			}

			if patch.Username != nil || patch.Bio != nil || patch.Chronotype != nil {
				if err := sess.UpdateProfileSettings(ctx, patch); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Good.Render("Profile updated."))
			}

			p := sess.Profile()
			fmt.Fprintln(out, ui.LabelValue("Username", p.Username))
			fmt.Fprintln(out, ui.LabelValue("Email", p.Email))
			if p.Bio != "" {
				fmt.Fprintln(out, ui.LabelValue("Bio", p.Bio))
			}
			if p.Chronotype != nil {
				fmt.Fprintln(out, ui.LabelValue("Chronotype", *p.Chronotype))
			}
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%d/%d XP)", p.Level, p.CurrentXP, p.XPToNext)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&bio, "bio", "", "Short bio / mantra")
	cmd.Flags().StringVar(&chrono, "chronotype", "", "Chronotype (lion|bear|wolf|dolphin)")
	return cmd
}
