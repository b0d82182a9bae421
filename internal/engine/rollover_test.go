package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/rivalgoals/internal/state"
)

func TestRollover_FirstDayArithmetic(t *testing.T) {
	s := baseState()
	s.LastLoginDate = "2025-05-11"
	s.RivaTargetToday = 1200
	s.CurrentRivaXP = 350
	s.CurrentStreak = 5

	next := Rollover(s, testStart)

	require.Len(t, next.DailyHistory, 1)
	assert.Equal(t, state.DailyStat{Date: "2025-05-11", UserXP: 0, RivaXP: 1200}, next.DailyHistory[0])
	assert.Equal(t, 900, next.RivaTargetToday)
	assert.Equal(t, 0, next.CurrentStreak)
	assert.Equal(t, 0, next.CurrentUserXP)
	assert.Equal(t, 0, next.CurrentRivaXP)
	assert.Equal(t, "2025-05-12", next.LastLoginDate)
	require.NotNil(t, next.LastRivaActivityMessage)
	assert.Equal(t, state.StrategizingMessage, *next.LastRivaActivityMessage)
}

func TestRollover_ArchivesTasksCompletedOnDepartingDay(t *testing.T) {
	s := baseState()
	s.LastLoginDate = "2025-05-11"
	s.CurrentUserXP = 300
	departing := time.Date(2025, 5, 11, 14, 0, 0, 0, time.UTC)
	s.Tasks = []state.Task{
		{ID: "a", Status: state.StatusDone, CreatedAt: departing, XP: 150},
		{ID: "b", Status: state.StatusDone, CreatedAt: departing, XP: 150},
		{ID: "c", Status: state.StatusToDo, CreatedAt: departing, XP: 150},
		{ID: "d", Status: state.StatusDone, CreatedAt: departing.AddDate(0, 0, -1), XP: 150},
	}
	s.CurrentStreak = 2

	next := Rollover(s, testStart)

	assert.Equal(t, 2, next.DailyHistory[0].TasksCompleted)
	assert.Equal(t, 300, next.DailyHistory[0].UserXP)
	assert.Equal(t, 3, next.CurrentStreak)
	assert.Equal(t, state.TitleStreakStarter, next.CurrentTitle)
	assert.Len(t, next.Tasks, 4, "tasks survive the rollover")
}

func TestRollover_StrongDayRaisesTarget(t *testing.T) {
	s := baseState()
	s.LastLoginDate = "2025-05-11"
	s.CurrentUserXP = 3000

	next := Rollover(s, testStart)

	// 3000 against a padded rival average of 1100 clamps the modifier at 1.5.
	assert.Equal(t, 1800, next.RivaTargetToday)
	assert.Equal(t, 1, next.CurrentStreak)
}

func TestRollover_HistoryCapKeepsNewest(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)}
	s := baseState()
	s.LastLoginDate = state.DateOf(clock.now)

	for i := 0; i < 40; i++ {
		clock.advanceDays(1)
		s = Rollover(s, clock.Now())
	}

	require.Len(t, s.DailyHistory, state.HistoryCap)
	assert.Equal(t, "2025-01-11", s.DailyHistory[0].Date, "first entry is the 11th rollover's departing day")
	assert.Equal(t, "2025-02-09", s.DailyHistory[state.HistoryCap-1].Date)
	assert.Equal(t, "2025-02-10", s.LastLoginDate)
}

func TestRollover_TitleTakesHighestRank(t *testing.T) {
	s := baseState()
	s.LastLoginDate = "2025-05-11"
	s.CurrentStreak = 29
	s.CurrentUserXP = 150

	next := Rollover(s, testStart)

	assert.Equal(t, 30, next.CurrentStreak)
	assert.Equal(t, state.TitleUnstoppableForce, next.CurrentTitle)
}

func TestRollover_DoesNotMutateInput(t *testing.T) {
	s := baseState()
	s.LastLoginDate = "2025-05-11"
	s.DailyHistory = make([]state.DailyStat, 0, 64)

	_ = Rollover(s, testStart)

	assert.Empty(t, s.DailyHistory)
	assert.Equal(t, "2025-05-11", s.LastLoginDate)
}
