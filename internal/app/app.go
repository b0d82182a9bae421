package app

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/pomodoro"
	"github.com/abhisek/rivalgoals/internal/router"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/screens/board"
	"github.com/abhisek/rivalgoals/internal/screens/dashboard"
	"github.com/abhisek/rivalgoals/internal/screens/insights"
	"github.com/abhisek/rivalgoals/internal/screens/noteeditor"
	"github.com/abhisek/rivalgoals/internal/screens/notes"
	"github.com/abhisek/rivalgoals/internal/screens/onboarding"
	"github.com/abhisek/rivalgoals/internal/screens/settings"
	"github.com/abhisek/rivalgoals/internal/screens/welcome"
	"github.com/abhisek/rivalgoals/internal/ui/layout"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

const pomodoroTickInterval = time.Second

// Options holds the dependencies for the TUI.
type Options struct {
	Engine        *engine.Engine
	RivalInterval time.Duration
	Logger        *slog.Logger
}

type rivalTickMsg time.Time

type pomodoroTickMsg time.Time

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	engine    *engine.Engine
	scheduler *engine.Scheduler
	timer     *pomodoro.Timer
	logger    *slog.Logger
	width     int
	height    int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	snap := opts.Engine.Snapshot()
	theme.Apply(snap.Theme)

	m := AppModel{
		engine:    opts.Engine,
		scheduler: engine.NewScheduler(opts.Engine, opts.RivalInterval),
		timer:     pomodoro.New(snap.UserSettings.PomodoroWorkDuration, snap.UserSettings.PomodoroBreakDuration),
		logger:    logger,
	}

	var greetName string
	if snap.OnboardingCompleted {
		greetName = snap.UserSettings.UserName
	}
	m.router = router.New(welcome.New(greetName, m.afterWelcome))
	return m
}

// afterWelcome picks the first real screen: onboarding on a first run,
// otherwise the dashboard.
func (m AppModel) afterWelcome() screen.Screen {
	if !m.engine.Snapshot().OnboardingCompleted {
		return onboarding.New(m.engine, func() screen.Screen { return dashboard.New(m.engine) })
	}
	return dashboard.New(m.engine)
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		rivalTick(m.scheduler.Interval()),
		pomodoroTick(),
	)
}

func rivalTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return rivalTickMsg(t) })
}

func pomodoroTick() tea.Cmd {
	return tea.Tick(pomodoroTickInterval, func(t time.Time) tea.Msg { return pomodoroTickMsg(t) })
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case rivalTickMsg:
		m.scheduler.Tick()
		return m, tea.Batch(m.broadcast(), rivalTick(m.scheduler.Interval()))

	case pomodoroTickMsg:
		var cmd tea.Cmd
		if minutes, done := m.timer.Tick(); done {
			m.logger.Info("focus session completed", "minutes", minutes)
			m.engine.Dispatch(engine.CompletePomodoro(minutes))
			cmd = m.broadcast()
		}
		return m, tea.Batch(cmd, pomodoroTick())

	case screen.NavigateMsg:
		return m, m.navigate(msg.To)

	case screen.AddTaskMsg:
		return m, m.openBoardForAdd()

	case tea.KeyPressMsg:
		if cmd, handled := m.handleGlobalKey(msg.String()); handled {
			return m, cmd
		}
	}

	cmd := m.router.Update(msg)
	m.syncSettings()
	return m, cmd
}

// handleGlobalKey applies app-wide shortcuts. Plain-character shortcuts are
// skipped while the active screen is taking text.
func (m AppModel) handleGlobalKey(key string) (tea.Cmd, bool) {
	switch key {
	case "ctrl+c":
		return tea.Quit, true
	case "alt+p":
		m.timer.Toggle()
		return nil, true
	case "alt+r":
		m.timer.Reset()
		return nil, true
	case "alt+t":
		m.engine.Dispatch(engine.ToggleTheme())
		theme.Apply(m.engine.Snapshot().Theme)
		return nil, true
	}

	if !m.engine.Snapshot().OnboardingCompleted {
		return nil, false
	}

	if key == "alt+s" {
		return m.router.Push(noteeditor.New(m.engine, nil)), true
	}

	if m.capturing() {
		return nil, false
	}

	switch key {
	case "esc":
		if m.router.Depth() > 1 {
			return m.router.Pop(), true
		}
		return nil, false
	case "N":
		return m.openBoardForAdd(), true
	case "1":
		return m.navigate(screen.DestDashboard), true
	case "2":
		return m.navigate(screen.DestBoard), true
	case "3":
		return m.navigate(screen.DestNotes), true
	case "4":
		return m.navigate(screen.DestInsights), true
	case "s":
		return m.navigate(screen.DestSettings), true
	}
	return nil, false
}

func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.InputCapturer)
	return ok && c.CapturingInput()
}

// navigate switches top-level views. Settings opens on top of the current
// view; the others replace the whole stack.
func (m AppModel) navigate(to screen.Destination) tea.Cmd {
	switch to {
	case screen.DestBoard:
		return m.router.Reset(board.New(m.engine))
	case screen.DestNotes:
		return m.router.Reset(notes.New(m.engine))
	case screen.DestInsights:
		return m.router.Reset(insights.New(m.engine))
	case screen.DestSettings:
		return m.router.Push(settings.New(m.engine))
	default:
		return m.router.Reset(dashboard.New(m.engine))
	}
}

// openBoardForAdd shows the board and asks it to focus the add-task input.
func (m AppModel) openBoardForAdd() tea.Cmd {
	initCmd := m.router.Reset(board.New(m.engine))
	m.engine.Dispatch(engine.RequestFocusAddTask())
	return tea.Batch(initCmd, m.broadcast())
}

// broadcast tells the active screen that state changed underneath it.
func (m AppModel) broadcast() tea.Cmd {
	return m.router.Update(screen.StateChangedMsg{State: m.engine.Snapshot()})
}

// syncSettings pushes timer lengths and theme from state into the UI.
func (m AppModel) syncSettings() {
	snap := m.engine.Snapshot()
	m.timer.SetDurations(snap.UserSettings.PomodoroWorkDuration, snap.UserSettings.PomodoroBreakDuration)
	if theme.Current() != snap.Theme {
		theme.Apply(snap.Theme)
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render lays out header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, layout.StatsFrom(m.engine.Snapshot()), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.timerStatus(), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Alt+P", Description: "Timer"},
		{Key: "Alt+S", Description: "Note"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// timerStatus renders the focus timer for the footer.
func (m AppModel) timerStatus() string {
	c := theme.WorkTimer
	if m.timer.Mode() == pomodoro.ModeBreak {
		c = theme.BreakTime
	}
	state := "paused"
	if m.timer.Active() {
		state = "running"
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(m.timer.Mode().Label()+" "+m.timer.String()) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(" "+state+"  ")
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
