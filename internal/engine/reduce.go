package engine

import (
	"github.com/abhisek/rivalgoals/internal/progression"
	"github.com/abhisek/rivalgoals/internal/state"
)

// Reduce applies one action to s and returns the next state. It never mutates
// s. persist is false only when the transition was a no-op that must not
// cause a write (a rival gain attempt against a met target).
//
// ActionInitialize needs the persistence adapter and is handled by
// Engine.Dispatch; Reduce treats it, like any unknown action, as a no-op.
func Reduce(s state.AppState, a Action, deps Deps) (next state.AppState, persist bool) {
	deps = deps.withDefaults()

	switch a.Type {
	case ActionHandleNewDay:
		return Rollover(s, deps.Clock.Now()), true

	case ActionAttemptRivalGain:
		return attemptRivalGain(s, deps.Rand)
	}

	next = s.Clone()

	switch a.Type {
	case ActionToggleTheme:
		next.Theme = s.Theme.Toggled()

	case ActionCompleteOnboarding:
		next.OnboardingCompleted = true

	case ActionSetUsername:
		if p, ok := a.Payload.(SetUsernamePayload); ok {
			next.UserSettings.UserName = p.Name
		}

	case ActionAddTask:
		if p, ok := a.Payload.(AddTaskPayload); ok {
			next.Tasks = append(next.Tasks, state.Task{
				ID:        deps.IDs.New(),
				Title:     p.Title,
				Status:    state.StatusToDo,
				CreatedAt: deps.Clock.Now(),
				XP:        state.XPPerTaskCompletion,
			})
		}

	case ActionUpdateTaskStatus:
		if p, ok := a.Payload.(UpdateTaskStatusPayload); ok && p.Status.Valid() {
			for i, t := range next.Tasks {
				if t.ID != p.TaskID {
					continue
				}
				if t.Status != state.StatusDone && p.Status == state.StatusDone {
					next.CurrentUserXP += t.XP
				}
				next.Tasks[i].Status = p.Status
			}
			next.CurrentTitle = progression.DetermineTitle(next)
		}

	case ActionDeleteTask:
		if p, ok := a.Payload.(DeleteTaskPayload); ok {
			next.Tasks = filter(next.Tasks, func(t state.Task) bool { return t.ID != p.TaskID })
		}

	case ActionCompletePomodoro:
		if p, ok := a.Payload.(CompletePomodoroPayload); ok {
			next.CurrentUserXP += max(p.Minutes, 0) * state.XPPerPomodoroMinute
			next.TotalFocusBlocksCompleted++
			next.CurrentTitle = progression.DetermineTitle(next)
		}

	case ActionUpdateSettings:
		if p, ok := a.Payload.(SettingsPatch); ok {
			next.UserSettings = p.Apply(next.UserSettings)
		}

	case ActionAddNote:
		if p, ok := a.Payload.(AddNotePayload); ok {
			now := deps.Clock.Now()
			note := state.ScrapNote{
				ID:        deps.IDs.New(),
				Title:     p.Title,
				Content:   p.Content,
				CreatedAt: now,
				UpdatedAt: now,
			}
			next.SavedNotes = append([]state.ScrapNote{note}, next.SavedNotes...)
		}

	case ActionUpdateNote:
		if p, ok := a.Payload.(UpdateNotePayload); ok {
			for i, n := range next.SavedNotes {
				if n.ID != p.Note.ID {
					continue
				}
				updated := p.Note
				if updated.CreatedAt.IsZero() {
					updated.CreatedAt = n.CreatedAt
				}
				updated.UpdatedAt = deps.Clock.Now()
				next.SavedNotes[i] = updated
			}
		}

	case ActionDeleteNote:
		if p, ok := a.Payload.(DeleteNotePayload); ok {
			next.SavedNotes = filter(next.SavedNotes, func(n state.ScrapNote) bool { return n.ID != p.NoteID })
		}

	case ActionSetRivalXP:
		if p, ok := a.Payload.(SetRivalXPPayload); ok {
			next.CurrentRivaXP = max(min(p.XP, next.RivaTargetToday), 0)
		}

	case ActionRequestFocusAddTask:
		next.FocusAddTaskTrigger++

	default:
		return s, true
	}

	return next, true
}

// Apply overlays the non-nil fields of p onto s.
func (p SettingsPatch) Apply(s state.UserSettings) state.UserSettings {
	if p.UserName != nil {
		s.UserName = *p.UserName
	}
	if p.PomodoroWorkDuration != nil {
		s.PomodoroWorkDuration = *p.PomodoroWorkDuration
	}
	if p.PomodoroBreakDuration != nil {
		s.PomodoroBreakDuration = *p.PomodoroBreakDuration
	}
	return s
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
