package progression

import (
	"math"
	"testing"

	"github.com/abhisek/rivalgoals/internal/state"
)

func days(pairs ...[2]int) []state.DailyStat {
	out := make([]state.DailyStat, len(pairs))
	for i, p := range pairs {
		out[i] = state.DailyStat{Date: "2025-01-01", UserXP: p[0], RivaXP: p[1]}
	}
	return out
}

func TestUserAverage(t *testing.T) {
	tests := []struct {
		name    string
		history []state.DailyStat
		want    float64
	}{
		{"empty", nil, 0},
		{"one day", days([2]int{300, 900}), 300},
		{"two days", days([2]int{300, 900}, [2]int{600, 900}), 450},
		{"uses last three", days([2]int{9000, 0}, [2]int{100, 0}, [2]int{200, 0}, [2]int{300, 0}), 200},
	}
	for _, tt := range tests {
		got := UserAverage(tt.history)
		if got != tt.want {
			t.Errorf("%s: UserAverage = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRivalAverage(t *testing.T) {
	tests := []struct {
		name    string
		history []state.DailyStat
		want    float64
	}{
		{"empty pads with baseline", nil, 1200},
		{"one day padded", days([2]int{0, 900}), (900 + 2400) / 3.0},
		{"two days padded", days([2]int{0, 900}, [2]int{0, 600}), (900 + 600 + 1200) / 3.0},
		{"full window", days([2]int{0, 900}, [2]int{0, 600}, [2]int{0, 300}), 600},
		{"uses last three", days([2]int{0, 5000}, [2]int{0, 900}, [2]int{0, 600}, [2]int{0, 300}), 600},
	}
	for _, tt := range tests {
		got := RivalAverage(tt.history)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: RivalAverage = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPerformanceModifier(t *testing.T) {
	tests := []struct {
		user, rival float64
		want        float64
	}{
		{0, 1200, 0.75},
		{1200, 1200, 1},
		{5000, 1200, 1.5},
		{900, 1000, 0.9},
		{100, 0, 1},
	}
	for _, tt := range tests {
		got := PerformanceModifier(tt.user, tt.rival)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PerformanceModifier(%v, %v) = %v, want %v", tt.user, tt.rival, got, tt.want)
		}
	}
}

func TestNextRivalTarget(t *testing.T) {
	tests := []struct {
		name    string
		history []state.DailyStat
		want    int
	}{
		{"idle first day floors", days([2]int{0, 1200}), 900},
		{"matching rival keeps baseline", days([2]int{900, 900}, [2]int{900, 900}, [2]int{900, 900}), 1200},
		{"dominating caps", days([2]int{4000, 900}, [2]int{4000, 900}, [2]int{4000, 900}), 1800},
		{"rounds", days([2]int{1000, 1200}, [2]int{1000, 1200}, [2]int{1000, 1200}), 1000},
	}
	for _, tt := range tests {
		got := NextRivalTarget(tt.history)
		if got != tt.want {
			t.Errorf("%s: NextRivalTarget = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		prev int
		day  state.DailyStat
		want int
	}{
		{0, state.DailyStat{}, 0},
		{5, state.DailyStat{}, 0},
		{5, state.DailyStat{UserXP: 10}, 6},
		{2, state.DailyStat{TasksCompleted: 1}, 3},
	}
	for _, tt := range tests {
		got := NextStreak(tt.prev, tt.day)
		if got != tt.want {
			t.Errorf("NextStreak(%d, %+v) = %d, want %d", tt.prev, tt.day, got, tt.want)
		}
	}
}
