package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// InputCapturer is implemented by screens that take free text. While
// CapturingInput is true, plain-character global shortcuts are suppressed.
type InputCapturer interface {
	CapturingInput() bool
}

// Store is the part of the engine screens read from and dispatch to.
type Store interface {
	Snapshot() state.AppState
	Dispatch(a engine.Action)
	Now() time.Time
}

// StateChangedMsg is broadcast to the active screen after the app dispatches
// an action on its behalf, such as a rival tick.
type StateChangedMsg struct {
	State state.AppState
}

// Destination names a top-level view.
type Destination int

const (
	DestDashboard Destination = iota
	DestBoard
	DestNotes
	DestInsights
	DestSettings
)

// NavigateMsg asks the app to switch to a top-level view.
type NavigateMsg struct {
	To Destination
}

// Navigate returns a command that emits NavigateMsg.
func Navigate(to Destination) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}

// AddTaskMsg asks the app to open the board with the add-task input focused.
type AddTaskMsg struct{}
