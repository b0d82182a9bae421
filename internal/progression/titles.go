package progression

import "github.com/abhisek/rivalgoals/internal/state"

// Requirement reports whether a state qualifies for a title.
type Requirement func(s state.AppState) bool

// TitleRule pairs a title with its rank and eligibility predicate.
type TitleRule struct {
	Title       state.Title
	Rank        int
	Description string
	Eligible    Requirement
}

// Rules returns the title table ordered from highest to lowest rank.
func Rules() []TitleRule {
	return []TitleRule{
		{state.TitleFocusGrandmaster, 6, "Complete 100 focus blocks", focusBlocksAtLeast(100)},
		{state.TitleUnstoppableForce, 5, "Keep a 30 day streak", streakAtLeast(30)},
		{state.TitleDeepWorker, 4, "Complete 20 focus blocks", focusBlocksAtLeast(20)},
		{state.TitleRivalsBane, 3, "Beat Riva by 500 XP in a day", beatRival},
		{state.TitleConsistentCompetitor, 2, "Keep a 7 day streak", streakAtLeast(7)},
		{state.TitleStreakStarter, 1, "Keep a 3 day streak", streakAtLeast(3)},
		{state.TitleNovice, 0, "Start competing", func(state.AppState) bool { return true }},
	}
}

// DetermineTitle returns the highest-ranked title the state qualifies for.
func DetermineTitle(s state.AppState) state.Title {
	for _, r := range Rules() {
		if r.Eligible(s) {
			return r.Title
		}
	}
	return state.TitleNovice
}

func streakAtLeast(n int) Requirement {
	return func(s state.AppState) bool { return s.CurrentStreak >= n }
}

func focusBlocksAtLeast(n int) Requirement {
	return func(s state.AppState) bool { return s.TotalFocusBlocksCompleted >= n }
}

func beatRival(s state.AppState) bool {
	for _, d := range s.DailyHistory {
		if d.UserXP > d.RivaXP+state.RivalsBaneMargin {
			return true
		}
	}
	return s.CurrentUserXP > s.RivaTargetToday+state.RivalsBaneMargin
}
