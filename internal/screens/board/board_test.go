package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/screen/screentest"
	"github.com/abhisek/rivalgoals/internal/state"
)

func TestAddTask(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	b := New(e)

	screentest.Press(b, "a")
	require.True(t, b.CapturingInput())

	screentest.Type(b, "  Write report ")
	screentest.Press(b, "enter")

	assert.False(t, b.CapturingInput())
	tasks := e.Snapshot().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "Write report", tasks[0].Title)
	assert.Equal(t, state.StatusToDo, tasks[0].Status)
}

func TestBlankTitleStaysInAddMode(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	b := New(e)

	screentest.Press(b, "a")
	screentest.Type(b, "   ")
	screentest.Press(b, "enter")

	assert.True(t, b.CapturingInput())
	assert.Empty(t, e.Snapshot().Tasks)

	screentest.Press(b, "esc")
	assert.False(t, b.CapturingInput())
}

func TestMoveTaskAcrossColumns(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	e.Dispatch(engine.AddTask("Ship it"))
	b := New(e)

	screentest.Press(b, "enter")
	task, _ := e.Snapshot().FindTask("id-1")
	assert.Equal(t, state.StatusInProgress, task.Status)

	// The cursor stays on To Do, which is now empty.
	screentest.Press(b, "l", ">")
	task, _ = e.Snapshot().FindTask("id-1")
	assert.Equal(t, state.StatusDone, task.Status)
	assert.Equal(t, state.XPPerTaskCompletion, e.Snapshot().CurrentUserXP)

	// Done is the last column.
	screentest.Press(b, "l", "]")
	task, _ = e.Snapshot().FindTask("id-1")
	assert.Equal(t, state.StatusDone, task.Status)

	screentest.Press(b, "<")
	task, _ = e.Snapshot().FindTask("id-1")
	assert.Equal(t, state.StatusInProgress, task.Status)
	assert.Equal(t, state.XPPerTaskCompletion, e.Snapshot().CurrentUserXP, "XP is never revoked")
}

func TestDeleteSelectedTask(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	e.Dispatch(engine.AddTask("First"))
	e.Dispatch(engine.AddTask("Second"))
	b := New(e)

	screentest.Press(b, "j", "d")
	tasks := e.Snapshot().Tasks
	require.Len(t, tasks, 1)
	assert.Equal(t, "First", tasks[0].Title)

	screentest.Press(b, "x")
	assert.Empty(t, e.Snapshot().Tasks)

	// Nothing left to delete.
	screentest.Press(b, "d")
	assert.Empty(t, e.Snapshot().Tasks)
}

func TestFocusTriggerOpensInput(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	e.Dispatch(engine.RequestFocusAddTask())
	b := New(e)
	assert.False(t, b.CapturingInput(), "earlier requests are ignored")

	b.Update(screen.StateChangedMsg{State: e.Snapshot()})
	assert.False(t, b.CapturingInput())

	e.Dispatch(engine.RequestFocusAddTask())
	b.Update(screen.StateChangedMsg{State: e.Snapshot()})
	assert.True(t, b.CapturingInput())
}

func TestViewListsColumns(t *testing.T) {
	e, _ := screentest.NewEngine(t, true)
	e.Dispatch(engine.AddTask("Write report"))
	view := New(e).View(120, 30)

	assert.Contains(t, view, "To Do (1)")
	assert.Contains(t, view, "In Progress (0)")
	assert.Contains(t, view, "Done (0)")
	assert.Contains(t, view, "Write report")
}
