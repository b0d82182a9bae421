package insights

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/insights"
	"github.com/abhisek/rivalgoals/internal/progression"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/ui/components"
	"github.com/abhisek/rivalgoals/internal/ui/layout"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

// InsightsScreen shows the weekly summary, the title ladder and the archive
// of finished days.
type InsightsScreen struct {
	store    screen.Store
	selected int // index into the archive, newest first
	expanded map[string]bool
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

// New creates a new InsightsScreen.
func New(store screen.Store) *InsightsScreen {
	return &InsightsScreen{store: store, expanded: make(map[string]bool)}
}

func (s *InsightsScreen) Init() tea.Cmd {
	return nil
}

func (s *InsightsScreen) Title() string {
	return "Insights"
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Archive"},
		{Key: "Enter", Description: "Details"},
	}
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	archive := archived(s.store.Snapshot())
	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(archive)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(archive) {
			date := archive[s.selected].Date
			s.expanded[date] = !s.expanded[date]
		}
	}
	return s, nil
}

// archived returns the finished days, newest first.
func archived(st state.AppState) []state.DailyStat {
	out := make([]state.DailyStat, len(st.DailyHistory))
	for i, d := range st.DailyHistory {
		out[len(out)-1-i] = d
	}
	return out
}

func (s *InsightsScreen) View(width, height int) string {
	snap := s.store.Snapshot()
	sum := insights.BuildSummary(snap, s.store.Now())
	cw := min(max(width-6, 30), 76)

	sections := []string{
		renderSummary(sum),
		theme.Subtitle.Render("Last 7 days") + "\n" +
			components.XPChart{Days: sum.Chart, Width: cw, LabelLayout: "Jan 2"}.View(),
		renderTitles(snap),
		s.renderArchive(snap),
	}
	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func renderSummary(sum insights.Summary) string {
	stat := func(label, value string, c color.Color) string {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+" ") +
			lipgloss.NewStyle().Foreground(c).Bold(true).Render(value)
	}
	row1 := strings.Join([]string{
		stat("Focus blocks", fmt.Sprint(sum.TotalFocusBlocks), theme.WorkTimer),
		stat("Streak", fmt.Sprintf("%d days", sum.Streak), theme.Success),
		stat("Title", sum.Title.Icon()+" "+string(sum.Title), theme.Accent),
	}, "   ")
	row2 := strings.Join([]string{
		stat("Avg you", fmt.Sprintf("%.0f XP", sum.UserAverage), theme.Primary),
		stat("Avg Riva", fmt.Sprintf("%.0f XP", sum.RivalAverage), theme.Rival),
		stat("Days won", fmt.Sprintf("%d/%d", sum.DaysWon, len(sum.Chart)), theme.Success),
	}, "   ")
	return row1 + "\n" + row2
}

func renderTitles(s state.AppState) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Titles"))
	for _, r := range progression.Rules() {
		mark, style := "○", lipgloss.NewStyle().Foreground(theme.TextDim)
		if r.Eligible(s) {
			mark, style = "✓", lipgloss.NewStyle().Foreground(theme.Success)
		}
		if r.Title == s.CurrentTitle {
			style = theme.Selected
		}
		b.WriteString("\n" + style.Render(fmt.Sprintf("  %s %s %-22s", mark, r.Title.Icon(), r.Title)) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(r.Description))
	}
	return b.String()
}

func (s *InsightsScreen) renderArchive(st state.AppState) string {
	archive := archived(st)
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Archive (%d days)", len(archive))))
	if len(archive) == 0 {
		b.WriteString("\n" + theme.Hint.Render("  Finished days show up here after midnight."))
		return b.String()
	}
	s.selected = min(s.selected, len(archive)-1)

	for i, d := range archive {
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		result := "lost"
		if d.UserXP > d.RivaXP {
			result = "won"
		}
		line := fmt.Sprintf("%s%s  you %d  Riva %d  %s",
			prefix, components.DayLabel(d.Date, "Mon Jan 2"), d.UserXP, d.RivaXP, result)
		b.WriteString("\n" + style.Render(line))

		if s.expanded[d.Date] {
			b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(
				fmt.Sprintf("      %d tasks completed, %d focus blocks", d.TasksCompleted, d.FocusBlocksCompleted)))
		}
	}
	return b.String()
}
