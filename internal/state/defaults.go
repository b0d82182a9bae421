package state

import "time"

// Scoring and rival tuning.
const (
	XPPerTaskCompletion = 150
	XPPerPomodoroMinute = 5

	RivaBaselineXPPerDay       = 1200
	RivaPerformanceModifierMin = 0.75
	RivaPerformanceModifierMax = 1.5

	HistoryCap    = 30
	AverageWindow = 3

	// RivalsBaneMargin is how far the user must beat the rival in a day.
	RivalsBaneMargin = 500
)

// InitialRivaTarget is the rival's first-day target.
var InitialRivaTarget = int(RivaBaselineXPPerDay * RivaPerformanceModifierMin)

// StrategizingMessage is shown right after a day rollover.
const StrategizingMessage = "Riva is strategizing for the day ahead..."

// DefaultUserSettings returns the settings used when nothing is stored.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		UserName:              "Rival",
		PomodoroWorkDuration:  25,
		PomodoroBreakDuration: 5,
	}
}

// Initial returns the pre-bootstrap default state for the given moment.
func Initial(now time.Time) AppState {
	return AppState{
		Initialized:         false,
		OnboardingCompleted: false,
		Theme:               ThemeDark,
		Tasks:               []Task{},
		UserSettings:        DefaultUserSettings(),
		DailyHistory:        []DailyStat{},
		RivaTargetToday:     InitialRivaTarget,
		CurrentTitle:        TitleNovice,
		LastLoginDate:       DateOf(now),
		SavedNotes:          []ScrapNote{},
	}
}
