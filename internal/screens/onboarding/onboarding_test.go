package onboarding

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rivalgoals/internal/router"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/screen/screentest"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "dashboard" }
func (s *stubScreen) Title() string                           { return "Dashboard" }

func TestBlankNameIsRejected(t *testing.T) {
	e, repo := screentest.NewEngine(t, false)
	s := New(e, func() screen.Screen { return &stubScreen{} })

	saves := repo.Saves
	sc := screentest.Type(s, "   ")
	_, cmd := sc.Update(screentest.Key("enter"))

	assert.Nil(t, cmd)
	assert.False(t, e.Snapshot().OnboardingCompleted)
	assert.Equal(t, saves, repo.Saves)
}

func TestSubmitCompletesOnboarding(t *testing.T) {
	e, _ := screentest.NewEngine(t, false)
	s := New(e, func() screen.Screen { return &stubScreen{} })
	assert.Empty(t, s.input.Value(), "default name should not prefill")

	sc := screentest.Type(s, "  Ada ")
	_, cmd := sc.Update(screentest.Key("enter"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(router.ResetScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &stubScreen{}, msg.Screen)

	snap := e.Snapshot()
	assert.True(t, snap.OnboardingCompleted)
	assert.Equal(t, "Ada", snap.UserSettings.UserName)

	_, again := sc.Update(screentest.Key("enter"))
	assert.Nil(t, again, "second submit should be ignored")
}

func TestCapturesInput(t *testing.T) {
	e, _ := screentest.NewEngine(t, false)
	s := New(e, func() screen.Screen { return &stubScreen{} })
	assert.True(t, s.CapturingInput())
	assert.Contains(t, s.View(80, 24), "What should we call you?")
}
