// Package migrate turns previously stored state of any age into a
// well-formed current-schema state.
package migrate

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/abhisek/rivalgoals/internal/state"
)

// MigratedNoteTitle is the title given to the note converted from the old
// single scratch-pad field.
const MigratedNoteTitle = "My First Note (Migrated)"

// deprecatedScrapPaperField held a single free-text note before the notes
// library existed.
const deprecatedScrapPaperField = "scrapPaperContent"

// ErrNotObject is returned when the stored blob is valid JSON but not an object.
var ErrNotObject = errors.New("stored state is not a JSON object")

// Env carries everything migration reads from the outside world.
type Env struct {
	// Now is the current moment; used for migrated-note timestamps and the
	// default login date.
	Now time.Time

	// PrefersDark is the host color-scheme preference, nil when unknown.
	PrefersDark *bool

	// NewID generates note identifiers.
	NewID func() string
}

// Fresh returns the first-run state: defaults, theme from the environment,
// marked initialized.
func Fresh(env Env) state.AppState {
	s := state.Initial(env.Now)
	s.Theme = EnvironmentTheme(env.PrefersDark)
	s.Initialized = true
	return s
}

// EnvironmentTheme maps the host preference to a theme, dark when unknown.
func EnvironmentTheme(prefersDark *bool) state.Theme {
	if prefersDark != nil && !*prefersDark {
		return state.ThemeLight
	}
	return state.ThemeDark
}

// Migrate decodes a stored blob and converts it to the current schema. Every
// field is read explicitly; a field that is missing or has the wrong shape
// takes its default. An error is returned only when the blob is not a JSON
// object at all.
func Migrate(raw []byte, env Env) (state.AppState, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return state.AppState{}, fmt.Errorf("decode stored state: %w", err)
	}
	if obj == nil {
		return state.AppState{}, ErrNotObject
	}

	s := state.Initial(env.Now)

	// Notes first, so the deprecated scratch pad can seed an empty library.
	s.SavedNotes = decodeNotes(obj["savedNotes"])
	if content, ok := stringField(obj, deprecatedScrapPaperField); ok && content != "" && arrayLen(obj["savedNotes"]) == 0 {
		s.SavedNotes = []state.ScrapNote{{
			ID:        env.NewID(),
			Title:     MigratedNoteTitle,
			Content:   content,
			CreatedAt: env.Now,
			UpdatedAt: env.Now,
		}}
	}

	s.UserSettings = decodeSettings(obj["userSettings"])

	if msg, ok := stringField(obj, "lastRivaActivityMessage"); ok && msg != "" {
		s.LastRivaActivityMessage = &msg
	}

	if b, ok := boolField(obj, "onboardingCompleted"); ok {
		s.OnboardingCompleted = b
	}
	if n, ok := intField(obj, "focusAddTaskTrigger"); ok {
		s.FocusAddTaskTrigger = n
	}

	s.Theme = EnvironmentTheme(env.PrefersDark)
	if t, ok := stringField(obj, "theme"); ok && state.Theme(t).Valid() {
		s.Theme = state.Theme(t)
	}

	overlayRemaining(&s, obj)
	s.Initialized = true
	return s, nil
}

// overlayRemaining fills every other top-level field, keeping the default when
// the stored value is unusable.
func overlayRemaining(s *state.AppState, obj map[string]json.RawMessage) {
	s.Tasks = decodeTasks(obj["tasks"])
	s.DailyHistory = decodeHistory(obj["dailyHistory"])

	if n, ok := nonNegativeInt(obj, "currentUserXP"); ok {
		s.CurrentUserXP = n
	}
	if n, ok := nonNegativeInt(obj, "rivaTargetToday"); ok {
		s.RivaTargetToday = n
	}
	if n, ok := nonNegativeInt(obj, "currentRivaXP"); ok {
		s.CurrentRivaXP = min(n, s.RivaTargetToday)
	}
	if n, ok := nonNegativeInt(obj, "currentStreak"); ok {
		s.CurrentStreak = n
	}
	if n, ok := nonNegativeInt(obj, "totalFocusBlocksCompleted"); ok {
		s.TotalFocusBlocksCompleted = n
	}
	if t, ok := stringField(obj, "currentTitle"); ok {
		s.CurrentTitle, _ = state.ParseTitle(t)
	}
	if d, ok := stringField(obj, "lastLoginDate"); ok {
		if _, err := time.Parse(state.DateLayout, d); err == nil {
			s.LastLoginDate = d
		}
	}
}

func decodeSettings(raw json.RawMessage) state.UserSettings {
	out := state.DefaultUserSettings()
	var obj map[string]json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &obj) != nil || obj == nil {
		return out
	}
	if name, ok := stringField(obj, "userName"); ok {
		out.UserName = name
	}
	if n, ok := intField(obj, "pomodoroWorkDuration"); ok && n > 0 {
		out.PomodoroWorkDuration = n
	}
	if n, ok := intField(obj, "pomodoroBreakDuration"); ok && n > 0 {
		out.PomodoroBreakDuration = n
	}
	return out
}

// decodeArray decodes each element independently, dropping the ones that do
// not fit T. A value that is not an array yields an empty slice.
func decodeArray[T any](raw json.RawMessage, keep func(*T) bool) []T {
	out := []T{}
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return out
	}
	for _, item := range items {
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		if keep(&v) {
			out = append(out, v)
		}
	}
	return out
}

// arrayLen counts the stored elements before any are dropped. A missing or
// non-array value counts as empty.
func arrayLen(raw json.RawMessage) int {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return 0
	}
	return len(items)
}

func decodeNotes(raw json.RawMessage) []state.ScrapNote {
	return decodeArray(raw, func(n *state.ScrapNote) bool {
		if n.ID == "" {
			return false
		}
		if n.UpdatedAt.IsZero() {
			n.UpdatedAt = n.CreatedAt
		}
		return true
	})
}

func decodeTasks(raw json.RawMessage) []state.Task {
	return decodeArray(raw, func(t *state.Task) bool {
		if t.ID == "" {
			return false
		}
		if !t.Status.Valid() {
			t.Status = state.StatusToDo
		}
		if t.XP <= 0 {
			t.XP = state.XPPerTaskCompletion
		}
		return true
	})
}

func decodeHistory(raw json.RawMessage) []state.DailyStat {
	h := decodeArray(raw, func(d *state.DailyStat) bool { return d.Date != "" })
	if len(h) > state.HistoryCap {
		h = h[len(h)-state.HistoryCap:]
	}
	return h
}

func stringField(obj map[string]json.RawMessage, key string) (string, bool) {
	var s string
	raw, ok := obj[key]
	if !ok || json.Unmarshal(raw, &s) != nil || isNull(raw) {
		return "", false
	}
	return s, true
}

func boolField(obj map[string]json.RawMessage, key string) (bool, bool) {
	var b bool
	raw, ok := obj[key]
	if !ok || json.Unmarshal(raw, &b) != nil || isNull(raw) {
		return false, false
	}
	return b, true
}

// intField accepts any finite JSON number and truncates it to an int.
func intField(obj map[string]json.RawMessage, key string) (int, bool) {
	var f float64
	raw, ok := obj[key]
	if !ok || json.Unmarshal(raw, &f) != nil || isNull(raw) {
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}

func nonNegativeInt(obj map[string]json.RawMessage, key string) (int, bool) {
	n, ok := intField(obj, key)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// isNull reports a literal JSON null, which json.Unmarshal silently accepts
// into scalar types.
func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
