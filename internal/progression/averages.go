package progression

import (
	"math"

	"github.com/abhisek/rivalgoals/internal/state"
)

// lastN returns the trailing window of at most n entries.
func lastN(history []state.DailyStat, n int) []state.DailyStat {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// UserAverage is the mean user XP over the last three archived days, or 0
// when there is no history.
func UserAverage(history []state.DailyStat) float64 {
	window := lastN(history, state.AverageWindow)
	if len(window) == 0 {
		return 0
	}
	sum := 0
	for _, d := range window {
		sum += d.UserXP
	}
	return float64(sum) / float64(len(window))
}

// RivalAverage is the mean rival XP over the last three archived days. Missing
// days are padded with the rival's baseline so a new user faces a full-strength
// rival average.
func RivalAverage(history []state.DailyStat) float64 {
	window := lastN(history, state.AverageWindow)
	sum := 0
	for _, d := range window {
		sum += d.RivaXP
	}
	if missing := state.AverageWindow - len(window); missing > 0 {
		sum += missing * state.RivaBaselineXPPerDay
		return float64(sum) / state.AverageWindow
	}
	return float64(sum) / float64(len(window))
}

// PerformanceModifier scales the rival's next target by how the user kept up,
// clamped to the configured band.
func PerformanceModifier(userAvg, rivalAvg float64) float64 {
	m := 1.0
	if rivalAvg > 0 {
		m = userAvg / rivalAvg
	}
	return math.Max(state.RivaPerformanceModifierMin, math.Min(state.RivaPerformanceModifierMax, m))
}

// NextRivalTarget computes tomorrow's rival target from the updated history.
func NextRivalTarget(history []state.DailyStat) int {
	m := PerformanceModifier(UserAverage(history), RivalAverage(history))
	return int(math.Round(state.RivaBaselineXPPerDay * m))
}

// NextStreak continues the streak when the departing day saw any activity.
func NextStreak(previous int, departing state.DailyStat) int {
	if departing.UserXP > 0 || departing.TasksCompleted > 0 {
		return previous + 1
	}
	return 0
}
