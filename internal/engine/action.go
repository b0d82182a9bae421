package engine

import "github.com/abhisek/rivalgoals/internal/state"

// ActionType tags an Action.
type ActionType string

const (
	ActionInitialize          ActionType = "INITIALIZE_STATE"
	ActionHandleNewDay        ActionType = "HANDLE_NEW_DAY"
	ActionToggleTheme         ActionType = "TOGGLE_THEME"
	ActionCompleteOnboarding  ActionType = "COMPLETE_ONBOARDING"
	ActionSetUsername         ActionType = "SET_USERNAME"
	ActionAddTask             ActionType = "ADD_TASK"
	ActionUpdateTaskStatus    ActionType = "UPDATE_TASK_STATUS"
	ActionDeleteTask          ActionType = "DELETE_TASK"
	ActionCompletePomodoro    ActionType = "COMPLETE_POMODORO_SESSION"
	ActionUpdateSettings      ActionType = "UPDATE_SETTINGS"
	ActionAddNote             ActionType = "ADD_NOTE"
	ActionUpdateNote          ActionType = "UPDATE_NOTE"
	ActionDeleteNote          ActionType = "DELETE_NOTE"
	ActionSetRivalXP          ActionType = "UPDATE_RIVA_XP"
	ActionAttemptRivalGain    ActionType = "ATTEMPT_RIVA_XP_GAIN"
	ActionRequestFocusAddTask ActionType = "REQUEST_FOCUS_ADD_TASK"
)

// Action is a tagged request to change state. Payload holds one of the
// payload structs below, or nil for actions that carry none.
type Action struct {
	Type    ActionType
	Payload any
}

type (
	SetUsernamePayload struct{ Name string }

	AddTaskPayload struct{ Title string }

	UpdateTaskStatusPayload struct {
		TaskID string
		Status state.KanbanStatus
	}

	DeleteTaskPayload struct{ TaskID string }

	CompletePomodoroPayload struct{ Minutes int }

	// SettingsPatch is a partial overlay; nil fields are left alone.
	SettingsPatch struct {
		UserName              *string
		PomodoroWorkDuration  *int
		PomodoroBreakDuration *int
	}

	AddNotePayload struct {
		Title   string
		Content string
	}

	UpdateNotePayload struct{ Note state.ScrapNote }

	DeleteNotePayload struct{ NoteID string }

	SetRivalXPPayload struct{ XP int }
)

func Initialize() Action          { return Action{Type: ActionInitialize} }
func HandleNewDay() Action        { return Action{Type: ActionHandleNewDay} }
func ToggleTheme() Action         { return Action{Type: ActionToggleTheme} }
func CompleteOnboarding() Action  { return Action{Type: ActionCompleteOnboarding} }
func AttemptRivalGain() Action    { return Action{Type: ActionAttemptRivalGain} }
func RequestFocusAddTask() Action { return Action{Type: ActionRequestFocusAddTask} }

func SetUsername(name string) Action {
	return Action{Type: ActionSetUsername, Payload: SetUsernamePayload{Name: name}}
}

func AddTask(title string) Action {
	return Action{Type: ActionAddTask, Payload: AddTaskPayload{Title: title}}
}

func UpdateTaskStatus(taskID string, status state.KanbanStatus) Action {
	return Action{Type: ActionUpdateTaskStatus, Payload: UpdateTaskStatusPayload{TaskID: taskID, Status: status}}
}

func DeleteTask(taskID string) Action {
	return Action{Type: ActionDeleteTask, Payload: DeleteTaskPayload{TaskID: taskID}}
}

func CompletePomodoro(minutes int) Action {
	return Action{Type: ActionCompletePomodoro, Payload: CompletePomodoroPayload{Minutes: minutes}}
}

func UpdateSettings(patch SettingsPatch) Action {
	return Action{Type: ActionUpdateSettings, Payload: patch}
}

func AddNote(title, content string) Action {
	return Action{Type: ActionAddNote, Payload: AddNotePayload{Title: title, Content: content}}
}

func UpdateNote(note state.ScrapNote) Action {
	return Action{Type: ActionUpdateNote, Payload: UpdateNotePayload{Note: note}}
}

func DeleteNote(noteID string) Action {
	return Action{Type: ActionDeleteNote, Payload: DeleteNotePayload{NoteID: noteID}}
}

func SetRivalXP(xp int) Action {
	return Action{Type: ActionSetRivalXP, Payload: SetRivalXPPayload{XP: xp}}
}
