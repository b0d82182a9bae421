package progression

import (
	"testing"

	"github.com/abhisek/rivalgoals/internal/state"
)

func TestDetermineTitle(t *testing.T) {
	tests := []struct {
		name string
		s    state.AppState
		want state.Title
	}{
		{"fresh", state.AppState{RivaTargetToday: 900}, state.TitleNovice},
		{"streak 3", state.AppState{CurrentStreak: 3, RivaTargetToday: 900}, state.TitleStreakStarter},
		{"streak 7", state.AppState{CurrentStreak: 7, RivaTargetToday: 900}, state.TitleConsistentCompetitor},
		{"streak 30 beats streak 3", state.AppState{CurrentStreak: 30, RivaTargetToday: 900}, state.TitleUnstoppableForce},
		{"20 focus blocks", state.AppState{TotalFocusBlocksCompleted: 20, RivaTargetToday: 900}, state.TitleDeepWorker},
		{"100 focus blocks", state.AppState{TotalFocusBlocksCompleted: 100, CurrentStreak: 30, RivaTargetToday: 900}, state.TitleFocusGrandmaster},
		{
			"history dominance",
			state.AppState{
				CurrentStreak:   4,
				RivaTargetToday: 900,
				DailyHistory:    []state.DailyStat{{UserXP: 1501, RivaXP: 1000}},
			},
			state.TitleRivalsBane,
		},
		{
			"history margin not exceeded",
			state.AppState{
				RivaTargetToday: 900,
				DailyHistory:    []state.DailyStat{{UserXP: 1500, RivaXP: 1000}},
			},
			state.TitleNovice,
		},
		{"current day dominance", state.AppState{CurrentUserXP: 1401, RivaTargetToday: 900}, state.TitleRivalsBane},
	}
	for _, tt := range tests {
		got := DetermineTitle(tt.s)
		if got != tt.want {
			t.Errorf("%s: DetermineTitle = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestRules_OrderedByRank(t *testing.T) {
	rules := Rules()
	if len(rules) != len(state.AllTitles()) {
		t.Fatalf("got %d rules, want %d", len(rules), len(state.AllTitles()))
	}
	for i, r := range rules {
		if r.Title.Rank() != r.Rank {
			t.Errorf("rule %q rank %d, title rank %d", r.Title, r.Rank, r.Title.Rank())
		}
		if i > 0 && rules[i-1].Rank <= r.Rank {
			t.Errorf("rules not descending at %d: %d then %d", i, rules[i-1].Rank, r.Rank)
		}
	}
	if last := rules[len(rules)-1]; last.Title != state.TitleNovice || !last.Eligible(state.AppState{}) {
		t.Error("Novice must be the always-eligible fallback")
	}
}
