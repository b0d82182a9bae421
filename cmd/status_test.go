package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abhisek/rivalgoals/internal/state"
)

func TestRenderStatus(t *testing.T) {
	now := time.Date(2025, 5, 12, 9, 30, 0, 0, time.UTC)
	msg := "Riva just wrapped up a deep work session."
	s := state.AppState{
		Initialized:         true,
		OnboardingCompleted: true,
		Theme:               state.ThemeDark,
		UserSettings: state.UserSettings{
			UserName:              "Ada",
			PomodoroWorkDuration:  25,
			PomodoroBreakDuration: 5,
		},
		Tasks: []state.Task{
			{ID: "t1", Title: "Write report", Status: state.StatusToDo, CreatedAt: now, XP: 150},
			{ID: "t2", Title: "Review PR", Status: state.StatusInProgress, CreatedAt: now, XP: 150},
			{ID: "t3", Title: "Inbox zero", Status: state.StatusDone, CreatedAt: now, XP: 150},
		},
		DailyHistory: []state.DailyStat{
			{Date: "2025-05-10", UserXP: 800, RivaXP: 1000},
			{Date: "2025-05-11", UserXP: 1500, RivaXP: 1100},
		},
		CurrentUserXP:             1350,
		CurrentRivaXP:             900,
		RivaTargetToday:           1200,
		CurrentStreak:             3,
		TotalFocusBlocksCompleted: 12,
		CurrentTitle:              state.TitleStreakStarter,
		LastLoginDate:             "2025-05-12",
		LastRivaActivityMessage:   &msg,
	}

	var out bytes.Buffer
	renderStatus(&out, s, now)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "status", out.Bytes())
}

func TestPlural(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0 days"},
		{1, "1 day"},
		{7, "7 days"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, plural(tt.n, "day"))
	}
}
