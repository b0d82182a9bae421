package state

import "time"

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggled returns the opposite theme. Anything that is not dark flips to dark.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// KanbanStatus is the board column a task sits in.
type KanbanStatus string

const (
	StatusToDo       KanbanStatus = "To Do"
	StatusInProgress KanbanStatus = "In Progress"
	StatusDone       KanbanStatus = "Done"
)

// KanbanColumns returns the board columns in display order.
func KanbanColumns() []KanbanStatus {
	return []KanbanStatus{StatusToDo, StatusInProgress, StatusDone}
}

// Valid reports whether s is a known board column.
func (s KanbanStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a single card on the board. XP is fixed at creation.
type Task struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Status    KanbanStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	XP        int          `json:"xp"`
}

// UserSettings holds the user-editable preferences.
type UserSettings struct {
	UserName              string `json:"userName" validate:"max=40"`
	PomodoroWorkDuration  int    `json:"pomodoroWorkDuration" validate:"min=1,max=180"`
	PomodoroBreakDuration int    `json:"pomodoroBreakDuration" validate:"min=1,max=180"`
}

// DailyStat is the archived record of one finished day.
type DailyStat struct {
	Date                 string `json:"date"`
	UserXP               int    `json:"userXP"`
	RivaXP               int    `json:"rivaXP"`
	TasksCompleted       int    `json:"tasksCompleted"`
	FocusBlocksCompleted int    `json:"focusBlocksCompleted"`
}

// ScrapNote is an entry in the notes library.
type ScrapNote struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppState is the single persisted aggregate.
type AppState struct {
	Initialized         bool         `json:"initialized"`
	OnboardingCompleted bool         `json:"onboardingCompleted"`
	Theme               Theme        `json:"theme"`
	Tasks               []Task       `json:"tasks"`
	UserSettings        UserSettings `json:"userSettings"`
	DailyHistory        []DailyStat  `json:"dailyHistory"`

	CurrentUserXP   int `json:"currentUserXP"`
	CurrentRivaXP   int `json:"currentRivaXP"`
	RivaTargetToday int `json:"rivaTargetToday"`

	CurrentStreak             int   `json:"currentStreak"`
	TotalFocusBlocksCompleted int   `json:"totalFocusBlocksCompleted"`
	CurrentTitle              Title `json:"currentTitle"`

	LastLoginDate           string      `json:"lastLoginDate"`
	SavedNotes              []ScrapNote `json:"savedNotes"`
	LastRivaActivityMessage *string     `json:"lastRivaActivityMessage"`
	FocusAddTaskTrigger     int         `json:"focusAddTaskTrigger"`
}

// Clone returns a deep copy so callers can never alias engine-owned slices.
func (s AppState) Clone() AppState {
	cp := s
	cp.Tasks = append([]Task(nil), s.Tasks...)
	cp.DailyHistory = append([]DailyStat(nil), s.DailyHistory...)
	cp.SavedNotes = append([]ScrapNote(nil), s.SavedNotes...)
	if cp.Tasks == nil {
		cp.Tasks = []Task{}
	}
	if cp.DailyHistory == nil {
		cp.DailyHistory = []DailyStat{}
	}
	if cp.SavedNotes == nil {
		cp.SavedNotes = []ScrapNote{}
	}
	if s.LastRivaActivityMessage != nil {
		msg := *s.LastRivaActivityMessage
		cp.LastRivaActivityMessage = &msg
	}
	return cp
}

// FindTask returns the task with the given id.
func (s AppState) FindTask(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// FindNote returns the note with the given id.
func (s AppState) FindNote(id string) (ScrapNote, bool) {
	for _, n := range s.SavedNotes {
		if n.ID == id {
			return n, true
		}
	}
	return ScrapNote{}, false
}

// TasksByStatus returns the tasks in column order for one status.
func (s AppState) TasksByStatus(status KanbanStatus) []Task {
	var out []Task
	for _, t := range s.Tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// CompletedOn counts Done tasks whose creation date is the given day.
func (s AppState) CompletedOn(date string) int {
	n := 0
	for _, t := range s.Tasks {
		if t.Status == StatusDone && DateOf(t.CreatedAt) == date {
			n++
		}
	}
	return n
}

// ActiveTaskCount counts tasks that are not Done.
func (s AppState) ActiveTaskCount() int {
	n := 0
	for _, t := range s.Tasks {
		if t.Status != StatusDone {
			n++
		}
	}
	return n
}

// RivalMessage returns the last rival activity message or "".
func (s AppState) RivalMessage() string {
	if s.LastRivaActivityMessage == nil {
		return ""
	}
	return *s.LastRivaActivityMessage
}

// DateOf returns the UTC calendar date of t as YYYY-MM-DD.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DateLayout is the calendar date format used for history and login dates.
const DateLayout = "2006-01-02"
