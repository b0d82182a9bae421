package layout

import (
	"strings"
	"testing"

	"github.com/abhisek/rivalgoals/internal/state"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.w, tt.h); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 24 {
		t.Errorf("ContentHeight(30) = %d, want 24", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeaderShowsScoreboard(t *testing.T) {
	s := state.AppState{CurrentUserXP: 450, CurrentRivaXP: 300, RivaTargetToday: 900, CurrentStreak: 3, CurrentTitle: state.TitleStreakStarter}

	out := RenderHeader("Dashboard", StatsFrom(s), 120)

	for _, want := range []string{"RivalGoals", "Dashboard", "You 450", "Riva 300/900", "3 day", "Streak Starter"} {
		if !strings.Contains(out, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooterStatus(t *testing.T) {
	out := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, "Focus 25:00", 80)
	if !strings.Contains(out, "Quit") || !strings.Contains(out, "Focus 25:00") {
		t.Errorf("footer missing hint or status: %q", out)
	}
}
