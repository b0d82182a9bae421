package onboarding

import (
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

const nameLimit = 40

// OnboardingScreen asks for the user's name the first time the app runs.
type OnboardingScreen struct {
	store screen.Store
	next  func() screen.Screen
	input components.TextInput
	done  bool
}

var _ screen.Screen = (*OnboardingScreen)(nil)
var _ screen.KeyHintProvider = (*OnboardingScreen)(nil)
var _ screen.InputCapturer = (*OnboardingScreen)(nil)

// New creates an OnboardingScreen. Once the name is submitted the router is
// reset to the screen produced by next.
func New(store screen.Store, next func() screen.Screen) *OnboardingScreen {
	input := components.NewTextInput("Enter your name", false, nameLimit)
	// The default name is a placeholder, not something the user chose.
	if name := store.Snapshot().UserSettings.UserName; name != state.DefaultUserSettings().UserName {
		input.SetValue(name)
	}
	return &OnboardingScreen{store: store, next: next, input: input}
}

func (s *OnboardingScreen) Title() string {
	return "Welcome"
}

func (s *OnboardingScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *OnboardingScreen) CapturingInput() bool {
	return true
}

func (s *OnboardingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Let's get started"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *OnboardingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		_, cmd := s.startButton().Update(msg)
		return s, cmd
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// startButton is active once a name has been typed.
func (s *OnboardingScreen) startButton() components.Button {
	return components.NewButton("Let's get started", strings.TrimSpace(s.input.Value()) != "", s.submit)
}

func (s *OnboardingScreen) submit() tea.Cmd {
	name := strings.TrimSpace(s.input.Value())
	if name == "" || s.done {
		return nil
	}
	s.done = true
	s.store.Dispatch(engine.SetUsername(name))
	s.store.Dispatch(engine.CompleteOnboarding())

	nextScreen := s.next()
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: nextScreen}
	}
}

func (s *OnboardingScreen) View(width, height int) string {
	title := theme.Title.Render("Welcome to RivalGoals")
	intro := lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-4, 56)).Align(lipgloss.Center).
		Render("Ready to boost your productivity and conquer your goals? Riva, your AI rival, is waiting. Let's start by setting up your profile.")
	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render("What should we call you?")

	btn := s.startButton()
	hint := theme.Hint.Render("press enter to start")
	if !btn.Active {
		hint = theme.Hint.Render("type a name to continue")
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		title, "", intro, "", prompt, "", s.input.View(), "", btn.View(), hint,
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(body))
}
