package root

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"neurofocus/internal/clock"
	"neurofocus/internal/config"
	"neurofocus/internal/ui"
)

func newStatusCmd(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show profile, streak, heatmap and challenges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			sess, store, cleanup, err := openSession(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			p := sess.Profile()

			name := p.Username
			if name == "" {
				name = "Member"
			}
			fmt.Fprintln(out, ui.Heading(ui.IconBrain, "NeuroFocus — "+name))
			if p.Bio != "" {
				fmt.Fprintln(out, ui.Dim.Render(p.Bio))
			}
			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", ui.XPBar(p.CurrentXP, p.XPToNext, 30)))
			fmt.Fprintln(out, ui.LabelValue("Streak", fmt.Sprintf("%s %d days", ui.IconFire, p.StreakDays)))
			if p.Chronotype != nil {
				fmt.Fprintln(out, ui.LabelValue("Chronotype", *p.Chronotype))
			} else {
				fmt.Fprintln(out, ui.Dim.Render("Chronotype not set — run `nf setup` for tailored coaching."))
			}
			fmt.Fprintln(out, "")

			// Today's totals.
			today := sess.Entry(clock.Today())
			fmt.Fprintln(out, ui.H2.Render("📅 Today"))
			fmt.Fprintf(out, "- %s %d completions, %d XP\n", ui.IconDone, today.Count, today.TotalXP)

			midnight := startOfDay(time.Now())
			if minutes, err := store.Focus().MinutesSince(ctx, cfg.UserID, midnight); err == nil && minutes > 0 {
				fmt.Fprintf(out, "- %s %d focused minutes\n", ui.IconTimer, minutes)
			}
			fmt.Fprintln(out, "")

			// Activity heatmap, most recent days last.
			window := sess.ActivityWindow()
			if len(window) > 0 {
				fmt.Fprintln(out, ui.H2.Render("📈 Activity"))
				var cells strings.Builder
				for _, e := range window {
					cells.WriteString(ui.HeatCell(e.Count))
				}
				fmt.Fprintln(out, cells.String())
				fmt.Fprintln(out, "")
			}

			fmt.Fprintln(out, ui.H2.Render("🏆 Challenges"))
			for _, c := range sess.Challenges() {
				mark := ui.Dim.Render(fmt.Sprintf("%d/%d", c.Current, c.Target))
				if c.Done {
					mark = ui.Good.Render("done")
				}
				fmt.Fprintf(out, "- %s %s %s %s\n", c.Icon, ui.Key.Render(c.Name+":"), c.Description, mark)
			}
			return nil
		},
	}

	return cmd
}

func startOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
