package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/abhisek/rivalgoals/internal/insights"
	"github.com/abhisek/rivalgoals/internal/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's scoreboard",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		renderStatus(cmd.OutOrStdout(), rt.engine.Snapshot(), rt.engine.Now())
		return nil
	}),
}

// renderStatus writes the plain-text scoreboard for s at now.
func renderStatus(w io.Writer, s state.AppState, now time.Time) {
	p := message.NewPrinter(language.English)
	num := func(n int) string { return p.Sprintf("%d", n) }
	rule := strings.Repeat("─", 36)
	d := insights.BuildDashboard(s, now)

	fmt.Fprintf(w, "%-14s%s\n", "Player", s.UserSettings.UserName)
	fmt.Fprintf(w, "%-14s%s\n", "Title", d.Title)
	fmt.Fprintf(w, "%-14s%s\n", "Streak", plural(d.Streak, "day"))
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "%-14s%s / %s XP\n", "You", num(d.UserXP), num(d.Target))
	fmt.Fprintf(w, "%-14s%s / %s XP\n", "Riva", num(d.RivalXP), num(d.Target))
	if d.Message != "" {
		fmt.Fprintf(w, "%-14s%s\n", "", d.Message)
	}
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "%-14s%s\n", "Active tasks", num(d.ActiveTasks))
	fmt.Fprintf(w, "%-14s%s\n", "Done today", num(d.CompletedToday))
	fmt.Fprintf(w, "%-14s%s\n", "Focus blocks", num(s.TotalFocusBlocksCompleted))
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "%-12s%10s%10s\n", "Date", "You", "Riva")
	for _, day := range d.Chart {
		fmt.Fprintf(w, "%-12s%10s%10s\n", day.Date, num(day.UserXP), num(day.RivaXP))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
