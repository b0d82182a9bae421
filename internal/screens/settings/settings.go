package settings

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/router"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/ui/components"
	"github.com/abhisek/rivalgoals/internal/ui/layout"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

const (
	fieldName = iota
	fieldWork
	fieldBreak
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Your Name",
	"Pomodoro Work Duration (minutes)",
	"Pomodoro Break Duration (minutes)",
}

// SettingsScreen edits the user's name and timer lengths.
type SettingsScreen struct {
	store  screen.Store
	inputs [fieldCount]components.TextInput
	focus  int
	errMsg string
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)
var _ screen.InputCapturer = (*SettingsScreen)(nil)

// New creates a SettingsScreen prefilled from the current settings.
func New(store screen.Store) *SettingsScreen {
	cur := store.Snapshot().UserSettings
	s := &SettingsScreen{store: store}

	s.inputs[fieldName] = components.NewTextInput("Enter your name", false, 40)
	s.inputs[fieldName].SetValue(cur.UserName)
	s.inputs[fieldWork] = components.NewTextInput("25", true, 3)
	s.inputs[fieldWork].SetValue(strconv.Itoa(cur.PomodoroWorkDuration))
	s.inputs[fieldBreak] = components.NewTextInput("5", true, 3)
	s.inputs[fieldBreak].SetValue(strconv.Itoa(cur.PomodoroBreakDuration))

	s.setFocus(fieldName)
	return s
}

func (s *SettingsScreen) Init() tea.Cmd {
	return s.inputs[s.focus].Focus()
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) CapturingInput() bool {
	return true
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab/↑↓", Description: "Field"},
		{Key: "Enter", Description: "Save"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + fieldCount - 1) % fieldCount)
		case "enter", "ctrl+s":
			return s, s.save()
		}
	}

	var cmd tea.Cmd
	s.inputs[s.focus], cmd = s.inputs[s.focus].Update(msg)
	return s, cmd
}

func (s *SettingsScreen) setFocus(f int) tea.Cmd {
	s.focus = f
	for i := range s.inputs {
		if i != f {
			s.inputs[i].Blur()
		}
	}
	return s.inputs[f].Focus()
}

// Settings parses the form. Blank or non-numeric durations are errors.
func (s *SettingsScreen) Settings() (state.UserSettings, error) {
	work, err := s.inputs[fieldWork].NumericValue()
	if err != nil {
		return state.UserSettings{}, fmt.Errorf("work duration must be a whole number of minutes")
	}
	brk, err := s.inputs[fieldBreak].NumericValue()
	if err != nil {
		return state.UserSettings{}, fmt.Errorf("break duration must be a whole number of minutes")
	}
	us := state.UserSettings{
		UserName:              strings.TrimSpace(s.inputs[fieldName].Value()),
		PomodoroWorkDuration:  work,
		PomodoroBreakDuration: brk,
	}
	if err := state.ValidateSettings(us); err != nil {
		return state.UserSettings{}, err
	}
	return us, nil
}

func (s *SettingsScreen) save() tea.Cmd {
	us, err := s.Settings()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.errMsg = ""
	s.store.Dispatch(engine.UpdateSettings(engine.SettingsPatch{
		UserName:              &us.UserName,
		PomodoroWorkDuration:  &us.PomodoroWorkDuration,
		PomodoroBreakDuration: &us.PomodoroBreakDuration,
	}))
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *SettingsScreen) View(width, height int) string {
	var lines []string
	lines = append(lines, theme.Title.Render("Settings"), "")
	for i := range s.inputs {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if i == s.focus {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, style.Render(fieldLabels[i]), s.inputs[i].View(), "")
	}
	if s.errMsg != "" {
		lines = append(lines, theme.ErrorText.Render(s.errMsg))
	} else {
		lines = append(lines, theme.Hint.Render("Timer changes apply to the next session."))
	}
	w := min(max(width-8, 30), 60)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Card.Width(w).Render(strings.Join(lines, "\n")))
}
