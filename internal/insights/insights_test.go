package insights

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rivalgoals/internal/state"
)

var now = time.Date(2025, 5, 12, 15, 0, 0, 0, time.UTC)

func history(n int) []state.DailyStat {
	out := make([]state.DailyStat, n)
	for i := range out {
		out[i] = state.DailyStat{
			Date:   now.AddDate(0, 0, i-n).Format(state.DateLayout),
			UserXP: (i + 1) * 100,
			RivaXP: 900,
		}
	}
	return out
}

func TestProject(t *testing.T) {
	tests := []struct {
		name      string
		history   int
		window    int
		wantLen   int
		wantFirst string
	}{
		{"empty history", 0, 5, 1, "2025-05-12"},
		{"short history", 2, 5, 3, "2025-05-10"},
		{"full window drops oldest", 10, 5, 5, "2025-05-08"},
		{"insights window", 10, 7, 7, "2025-05-06"},
		{"zero window", 3, 0, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := state.Initial(now)
			s.DailyHistory = history(tt.history)
			s.CurrentUserXP = 42

			got := Project(s, now, tt.window)
			require.Len(t, got, tt.wantLen)
			if tt.wantLen == 0 {
				return
			}
			assert.Equal(t, tt.wantFirst, got[0].Date)
			last := got[len(got)-1]
			assert.Equal(t, "2025-05-12", last.Date)
			assert.Equal(t, 42, last.UserXP)
		})
	}
}

func TestProjectOverlaysArchivedToday(t *testing.T) {
	s := state.Initial(now)
	s.DailyHistory = []state.DailyStat{
		{Date: "2025-05-11", UserXP: 10, RivaXP: 20},
		{Date: "2025-05-12", UserXP: 1, RivaXP: 2, FocusBlocksCompleted: 3},
	}
	s.CurrentUserXP = 500
	s.CurrentRivaXP = 250

	got := Project(s, now, 5)

	require.Len(t, got, 2)
	assert.Equal(t, state.DailyStat{Date: "2025-05-12", UserXP: 500, RivaXP: 250, FocusBlocksCompleted: 3}, got[1])
}

func TestProjectDoesNotTouchState(t *testing.T) {
	s := state.Initial(now)
	s.DailyHistory = history(3)
	before := fmt.Sprint(s.DailyHistory)

	_ = Project(s, now, 2)

	assert.Equal(t, before, fmt.Sprint(s.DailyHistory))
}

func TestBuildDashboard(t *testing.T) {
	s := state.Initial(now)
	s.CurrentUserXP = 450
	s.CurrentRivaXP = 225
	for i := 0; i < 7; i++ {
		s.Tasks = append(s.Tasks, state.Task{ID: fmt.Sprint(i), Status: state.StatusToDo, CreatedAt: now})
	}
	s.Tasks = append(s.Tasks, state.Task{ID: "done", Status: state.StatusDone, CreatedAt: now})

	d := BuildDashboard(s, now)

	assert.Equal(t, 7, d.ActiveTasks)
	assert.Equal(t, 1, d.CompletedToday)
	assert.Len(t, d.Todo, TopTasks)
	assert.InDelta(t, 0.5, d.UserProgress, 1e-9)
	assert.InDelta(t, 0.25, d.RivalProgress, 1e-9)
	assert.Len(t, d.Chart, 1)
}

func TestBuildDashboardZeroTarget(t *testing.T) {
	s := state.Initial(now)
	s.RivaTargetToday = 0
	s.CurrentUserXP = 10

	d := BuildDashboard(s, now)

	assert.Equal(t, 1.0, d.UserProgress)
	assert.Equal(t, 0.0, d.RivalProgress)
}

func TestBuildSummary(t *testing.T) {
	s := state.Initial(now)
	s.DailyHistory = []state.DailyStat{
		{Date: "2025-05-10", UserXP: 1000, RivaXP: 900},
		{Date: "2025-05-11", UserXP: 200, RivaXP: 900},
	}
	s.CurrentUserXP = 600
	s.CurrentRivaXP = 300
	s.TotalFocusBlocksCompleted = 12

	sum := BuildSummary(s, now)

	assert.Len(t, sum.Chart, 3)
	assert.Equal(t, 2, sum.DaysWon)
	assert.InDelta(t, 600, sum.UserAverage, 1e-9)
	assert.InDelta(t, 700, sum.RivalAverage, 1e-9)
	assert.Equal(t, 12, sum.TotalFocusBlocks)
	assert.Equal(t, 1000, MaxXP(sum.Chart))
}
