package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rivalgoals/internal/router"
	"github.com/abhisek/rivalgoals/internal/screen/screentest"
)

func TestPrefilledFromState(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	s := New(e)

	us, err := s.Settings()
	require.NoError(t, err)
	assert.Equal(t, e.Snapshot().UserSettings, us)
}

func TestSaveDispatchesSettings(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	s := New(e)

	s.inputs[fieldName].SetValue("  Ada  ")
	screentest.Press(s, "tab")
	s.inputs[fieldWork].SetValue("")
	screentest.Type(s, "50")

	_, cmd := screentest.Press(s, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())

	us := e.Snapshot().UserSettings
	assert.Equal(t, "Ada", us.UserName)
	assert.Equal(t, 50, us.PomodoroWorkDuration)
	assert.Equal(t, 5, us.PomodoroBreakDuration)
}

func TestNumericFieldsDropLetters(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	s := New(e)

	screentest.Press(s, "up") // wraps to the break field
	s.inputs[fieldBreak].SetValue("")
	screentest.Type(s, "1a0")
	assert.Equal(t, "10", s.inputs[fieldBreak].Value())
}

func TestInvalidSettingsAreNotSaved(t *testing.T) {
	e, repo := screentest.NewEngine(t, true)
	s := New(e)
	saves := repo.Saves

	s.inputs[fieldWork].SetValue("0")
	_, cmd := screentest.Press(s, "enter")
	assert.Nil(t, cmd)
	assert.Contains(t, s.View(100, 30), "PomodoroWorkDuration")

	s.inputs[fieldWork].SetValue("")
	_, cmd = screentest.Press(s, "enter")
	assert.Nil(t, cmd)
	assert.Contains(t, s.errMsg, "work duration")

	assert.Equal(t, saves, repo.Saves)
	assert.Equal(t, 25, e.Snapshot().UserSettings.PomodoroWorkDuration)
}

func TestEscCancels(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	s := New(e)
	_, cmd := screentest.Press(s, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}
