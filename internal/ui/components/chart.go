package components

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

// DayLabel formats a YYYY-MM-DD date with the given layout ("Mon", "Jan 2").
// Unparseable dates are returned unchanged.
func DayLabel(date, layout string) string {
	t, err := time.Parse(state.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}

// XPChart renders paired horizontal bars (user, then rival) for each day.
type XPChart struct {
	Days        []state.DailyStat
	Width       int
	LabelLayout string
}

// View renders the chart.
func (c XPChart) View() string {
	if len(c.Days) == 0 {
		return theme.Hint.Render("No history yet.")
	}
	layout := c.LabelLayout
	if layout == "" {
		layout = "Mon"
	}

	labels := make([]string, len(c.Days))
	labelWidth := 0
	peak := 1
	for i, d := range c.Days {
		labels[i] = DayLabel(d.Date, layout)
		labelWidth = max(labelWidth, lipgloss.Width(labels[i]))
		peak = max(peak, d.UserXP, d.RivaXP)
	}

	// label, gap, bar, gap, value
	valueWidth := len(fmt.Sprint(peak)) + 1
	barWidth := max(c.Width-labelWidth-valueWidth-2, 4)

	var b strings.Builder
	for i, d := range c.Days {
		label := lipgloss.NewStyle().Width(labelWidth).Foreground(theme.TextDim).Render(labels[i])
		pad := strings.Repeat(" ", labelWidth)
		b.WriteString(label + " " + bar(d.UserXP, peak, barWidth, theme.Primary) + "\n")
		b.WriteString(pad + " " + bar(d.RivaXP, peak, barWidth, theme.Rival) + "\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render("■ You") + "  " +
		lipgloss.NewStyle().Foreground(theme.Rival).Render("■ Riva"))
	return b.String()
}

func bar(v, peak, width int, c color.Color) string {
	n := 0
	if peak > 0 {
		n = v * width / peak
	}
	if v > 0 && n == 0 {
		n = 1
	}
	return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("█", n)) + " " + fmt.Sprint(v)
}
