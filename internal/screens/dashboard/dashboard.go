package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/insights"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/ui/components"
	"github.com/abhisek/rivalgoals/internal/ui/layout"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

// DashboardScreen shows today's race against Riva.
type DashboardScreen struct {
	store screen.Store
	menu  components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a new DashboardScreen.
func New(store screen.Store) *DashboardScreen {
	items := []components.MenuItem{
		{Label: "TASK BOARD", Detail: "plan and finish work", Action: func() tea.Cmd { return screen.Navigate(screen.DestBoard) }},
		{Label: "NOTES", Detail: "scrap pad library", Action: func() tea.Cmd { return screen.Navigate(screen.DestNotes) }},
		{Label: "INSIGHTS", Detail: "weekly performance", Action: func() tea.Cmd { return screen.Navigate(screen.DestInsights) }},
		{Label: "SETTINGS", Detail: "name and timer lengths", Action: func() tea.Cmd { return screen.Navigate(screen.DestSettings) }},
	}
	return &DashboardScreen{store: store, menu: components.NewMenu(items)}
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "a", Description: "Add task"},
		{Key: "1-4", Description: "Views"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "a" {
		return d, func() tea.Msg { return screen.AddTaskMsg{} }
	}
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	snap := d.store.Snapshot()
	dash := insights.BuildDashboard(snap, d.store.Now())

	cw := min(max(width-6, 30), 72)
	compact := height < 30 || layout.IsCompactWidth(width)

	var sections []string

	greeting := "Welcome back"
	if name := snap.UserSettings.UserName; name != "" {
		greeting += ", " + name
	}
	sections = append(sections, theme.Title.Render(greeting+"!"))

	sections = append(sections, renderRace(dash, cw))

	stats := fmt.Sprintf("%s   %s   %s",
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%d active", dash.ActiveTasks)),
		lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(fmt.Sprintf("%d done today", dash.CompletedToday)),
		lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("★ %d day streak", dash.Streak)),
	)
	sections = append(sections, stats)

	if !compact {
		mood := MoodFor(dash.UserXP, dash.RivalXP)
		riva := lipgloss.JoinHorizontal(lipgloss.Center,
			RenderRiva(mood), "   ", theme.Hint.Render(moodLine(mood)))
		sections = append(sections, riva)
	}

	sections = append(sections, renderTodo(dash, cw))

	if !compact {
		chart := components.XPChart{Days: dash.Chart, Width: cw, LabelLayout: "Mon"}
		sections = append(sections,
			theme.Subtitle.Render("Last 5 days")+"\n"+chart.View())
	}

	sections = append(sections, d.menu.View())

	content := lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func renderRace(dash insights.Dashboard, cw int) string {
	you := components.NewProgressBar(
		fmt.Sprintf("You  %5d / %d XP", dash.UserXP, dash.Target), dash.UserProgress, true, cw)
	riva := components.NewProgressBar(
		fmt.Sprintf("Riva %5d / %d XP", dash.RivalXP, dash.Target), dash.RivalProgress, true, cw)
	riva.Color = theme.Rival

	lines := []string{you.View(), riva.View()}
	if dash.Message != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Rival).Italic(true).Render(dash.Message))
	}
	return strings.Join(lines, "\n")
}

func renderTodo(dash insights.Dashboard, cw int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Up next"))
	b.WriteString("\n")
	if len(dash.Todo) == 0 {
		b.WriteString(theme.Hint.Render("Nothing in To Do. Press a to add a task."))
		return b.String()
	}
	for _, t := range dash.Todo {
		title := t.Title
		if lipgloss.Width(title) > cw-12 {
			title = string([]rune(title)[:max(cw-15, 1)]) + "..."
		}
		b.WriteString(fmt.Sprintf("  ○ %s %s\n",
			lipgloss.NewStyle().Foreground(theme.Text).Render(title),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("+%d XP", t.XP))))
	}
	return strings.TrimRight(b.String(), "\n")
}
