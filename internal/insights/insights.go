// Package insights derives read-only views of AppState for the dashboard and
// insights screens. Nothing here is persisted: archival happens only at day
// rollover in the engine.
package insights

import (
	"time"

	"github.com/abhisek/rivalgoals/internal/state"
)

const (
	// DashboardDays is the number of chart bars on the dashboard, today included.
	DashboardDays = 5
	// InsightsDays is the number of chart bars on the insights screen.
	InsightsDays = 7
	// TopTasks is how many To Do tasks the dashboard lists.
	TopTasks = 5
)

// Project returns the trailing window of archived days with a live entry for
// today. If today's date is already archived that entry is overlaid with the
// live counters; otherwise today is appended and the oldest day dropped to
// keep the window size.
func Project(s state.AppState, now time.Time, window int) []state.DailyStat {
	if window <= 0 {
		return nil
	}
	today := state.DateOf(now)
	hist := s.DailyHistory
	if len(hist) > window {
		hist = hist[len(hist)-window:]
	}
	out := append([]state.DailyStat(nil), hist...)

	live := state.DailyStat{
		Date:           today,
		UserXP:         s.CurrentUserXP,
		RivaXP:         s.CurrentRivaXP,
		TasksCompleted: s.CompletedOn(today),
	}
	for i := range out {
		if out[i].Date == today {
			live.FocusBlocksCompleted = out[i].FocusBlocksCompleted
			out[i] = live
			return out
		}
	}

	out = append(out, live)
	if len(out) > window {
		out = out[len(out)-window:]
	}
	return out
}

// Dashboard is everything the dashboard screen shows.
type Dashboard struct {
	ActiveTasks    int
	CompletedToday int

	UserXP, RivalXP, Target int
	UserProgress            float64 // fraction of Target, may exceed 1
	RivalProgress           float64

	Streak  int
	Title   state.Title
	Message string

	Todo  []state.Task
	Chart []state.DailyStat
}

// BuildDashboard projects s for the dashboard at now.
func BuildDashboard(s state.AppState, now time.Time) Dashboard {
	todo := s.TasksByStatus(state.StatusToDo)
	if len(todo) > TopTasks {
		todo = todo[:TopTasks]
	}
	return Dashboard{
		ActiveTasks:    s.ActiveTaskCount(),
		CompletedToday: s.CompletedOn(state.DateOf(now)),
		UserXP:         s.CurrentUserXP,
		RivalXP:        s.CurrentRivaXP,
		Target:         s.RivaTargetToday,
		UserProgress:   userProgress(s),
		RivalProgress:  ratio(s.CurrentRivaXP, s.RivaTargetToday),
		Streak:         s.CurrentStreak,
		Title:          s.CurrentTitle,
		Message:        s.RivalMessage(),
		Todo:           todo,
		Chart:          Project(s, now, DashboardDays),
	}
}

// Summary is the insights screen's data.
type Summary struct {
	TotalFocusBlocks int
	Streak           int
	Title            state.Title
	UserAverage      float64
	RivalAverage     float64
	DaysWon          int
	Chart            []state.DailyStat
}

// BuildSummary projects s for the insights screen at now.
func BuildSummary(s state.AppState, now time.Time) Summary {
	chart := Project(s, now, InsightsDays)
	sum := Summary{
		TotalFocusBlocks: s.TotalFocusBlocksCompleted,
		Streak:           s.CurrentStreak,
		Title:            s.CurrentTitle,
		Chart:            chart,
	}
	if len(chart) == 0 {
		return sum
	}
	var user, rival int
	for _, d := range chart {
		user += d.UserXP
		rival += d.RivaXP
		if d.UserXP > d.RivaXP {
			sum.DaysWon++
		}
	}
	sum.UserAverage = float64(user) / float64(len(chart))
	sum.RivalAverage = float64(rival) / float64(len(chart))
	return sum
}

// MaxXP returns the largest XP value in days, used to scale charts.
func MaxXP(days []state.DailyStat) int {
	m := 0
	for _, d := range days {
		m = max(m, d.UserXP, d.RivaXP)
	}
	return m
}

func userProgress(s state.AppState) float64 {
	if s.RivaTargetToday <= 0 {
		if s.CurrentUserXP > 0 {
			return 1
		}
		return 0
	}
	return ratio(s.CurrentUserXP, s.RivaTargetToday)
}

func ratio(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / float64(d)
}
