package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/screen/screentest"
	"github.com/abhisek/rivalgoals/internal/state"
)

func TestViewWithoutHistory(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	view := New(e).View(120, 50)

	assert.Contains(t, view, "Last 7 days")
	assert.Contains(t, view, "May 12")
	assert.Contains(t, view, "Finished days show up here")
	for _, r := range []state.Title{state.TitleNovice, state.TitleFocusGrandmaster} {
		assert.Contains(t, view, string(r))
	}
}

func TestArchiveExpands(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	s := New(&archivedStore{Engine: e, history: []state.DailyStat{
		{Date: "2025-05-10", UserXP: 900, RivaXP: 700, TasksCompleted: 6, FocusBlocksCompleted: 2},
		{Date: "2025-05-11", UserXP: 300, RivaXP: 800, TasksCompleted: 2},
	}})

	view := s.View(120, 50)
	assert.Contains(t, view, "Archive (2 days)")
	assert.Contains(t, view, "> Sun May 11  you 300  Riva 800  lost")
	assert.NotContains(t, view, "tasks completed")

	screentest.Press(s, "j", "enter")
	view = s.View(120, 50)
	assert.Contains(t, view, "> Sat May 10  you 900  Riva 700  won")
	assert.Contains(t, view, "6 tasks completed, 2 focus blocks")
}

// archivedStore overlays a fixed history on a live engine snapshot.
type archivedStore struct {
	*engine.Engine
	history []state.DailyStat
}

func (a *archivedStore) Snapshot() state.AppState {
	s := a.Engine.Snapshot()
	s.DailyHistory = a.history
	return s
}
