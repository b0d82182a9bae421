package engine

import (
	"time"

	"github.com/abhisek/rivalgoals/internal/progression"
	"github.com/abhisek/rivalgoals/internal/state"
)

// Rollover archives the departing day (the stored lastLoginDate), retargets
// the rival from the rolling averages and resets the daily counters.
//
// The archived rival XP is the day's target, not what the rival actually
// reached: the rival is assumed to always finish its day.
func Rollover(s state.AppState, now time.Time) state.AppState {
	next := s.Clone()

	departing := state.DailyStat{
		Date:           s.LastLoginDate,
		UserXP:         s.CurrentUserXP,
		RivaXP:         s.RivaTargetToday,
		TasksCompleted: s.CompletedOn(s.LastLoginDate),
	}

	history := append(next.DailyHistory, departing)
	if len(history) > state.HistoryCap {
		history = history[len(history)-state.HistoryCap:]
	}
	next.DailyHistory = history

	next.RivaTargetToday = progression.NextRivalTarget(history)
	next.CurrentStreak = progression.NextStreak(s.CurrentStreak, departing)

	next.CurrentUserXP = 0
	next.CurrentRivaXP = 0
	next.LastLoginDate = state.DateOf(now)
	msg := state.StrategizingMessage
	next.LastRivaActivityMessage = &msg
	next.CurrentTitle = progression.DetermineTitle(next)
	return next
}
