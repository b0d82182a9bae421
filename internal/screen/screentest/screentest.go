// Package screentest holds helpers for driving screens in tests.
package screentest

import (
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/store"
)

// Now is the fixed time every test engine reads.
var Now = time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return Now }

type seqIDs struct{ n int }

func (g *seqIDs) New() string {
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

// quietRand never lets the rival gain.
type quietRand struct{}

func (quietRand) Float64() float64 { return 0.99 }
func (quietRand) IntN(int) int     { return 0 }

// NewEngine returns an initialized engine on an in-memory repo. IDs are
// issued as id-1, id-2 and so on.
func NewEngine(t testing.TB, onboarded bool) (*engine.Engine, *store.MemoryRepo) {
	t.Helper()
	repo := store.NewMemoryRepo(nil)
	e := engine.New(repo, engine.WithDeps(engine.Deps{
		Clock: fixedClock{},
		IDs:   &seqIDs{},
		Rand:  quietRand{},
	}))
	e.Dispatch(engine.Initialize())
	if onboarded {
		e.Dispatch(engine.CompleteOnboarding())
	}
	return e, repo
}

var namedKeys = map[string]rune{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEscape,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
}

// Key builds a key press from its string form: a named key, "ctrl+x",
// "alt+x" or a single printable character.
func Key(s string) tea.KeyPressMsg {
	if code, ok := namedKeys[s]; ok {
		return tea.KeyPressMsg{Code: code}
	}
	if len(s) == 6 && s[:5] == "ctrl+" {
		return tea.KeyPressMsg{Code: rune(s[5]), Mod: tea.ModCtrl}
	}
	if len(s) == 5 && s[:4] == "alt+" {
		return tea.KeyPressMsg{Code: rune(s[4]), Mod: tea.ModAlt}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// Press sends each key to s in order and returns the last command.
func Press(s screen.Screen, keys ...string) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		s, cmd = s.Update(Key(k))
	}
	return s, cmd
}

// Type sends text to s one character at a time.
func Type(s screen.Screen, text string) screen.Screen {
	for _, r := range text {
		s, _ = s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return s
}

// Msg runs cmd and returns its message, or nil when cmd is nil.
func Msg(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}
