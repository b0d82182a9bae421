// Package pomodoro implements the focus timer: a work countdown followed by a
// break countdown, re-armed automatically until paused.
package pomodoro

import "fmt"

// Mode is the phase the timer is counting down.
type Mode string

const (
	ModeWork  Mode = "work"
	ModeBreak Mode = "break"
)

// Label returns the display name of the phase.
func (m Mode) Label() string {
	if m == ModeBreak {
		return "Break Time"
	}
	return "Focus Session"
}

// Timer is a second-resolution countdown driven by Tick. It is not safe for
// concurrent use; the TUI owns it on the update goroutine.
type Timer struct {
	mode      Mode
	length    int // seconds, fixed when the phase is armed
	remaining int
	active    bool
	counted   int // whole work minutes elapsed this phase

	workMinutes  int
	breakMinutes int
}

// New returns a paused timer armed for a work phase.
func New(workMinutes, breakMinutes int) *Timer {
	t := &Timer{mode: ModeWork, workMinutes: workMinutes, breakMinutes: breakMinutes}
	t.arm()
	return t
}

func (t *Timer) Mode() Mode            { return t.mode }
func (t *Timer) Active() bool          { return t.active }
func (t *Timer) RemainingSeconds() int { return t.remaining }

// Toggle starts or pauses the countdown.
func (t *Timer) Toggle() {
	t.active = !t.active
}

// Reset pauses the timer and re-arms the current phase.
func (t *Timer) Reset() {
	t.Switch(t.mode)
}

// Switch pauses the timer and re-arms it for mode.
func (t *Timer) Switch(mode Mode) {
	t.active = false
	t.mode = mode
	t.arm()
}

// Start switches to mode and starts counting immediately.
func (t *Timer) Start(mode Mode) {
	t.Switch(mode)
	t.active = true
}

// SetDurations updates the phase lengths. A paused timer is re-armed with the
// new length; a running one keeps its countdown. Unchanged lengths are a no-op.
func (t *Timer) SetDurations(workMinutes, breakMinutes int) {
	if workMinutes == t.workMinutes && breakMinutes == t.breakMinutes {
		return
	}
	t.workMinutes = workMinutes
	t.breakMinutes = breakMinutes
	if !t.active {
		t.arm()
	}
}

// Tick advances the countdown by one second. When a work phase reaches zero
// it reports the minutes to credit; the timer then flips to the other phase
// and keeps running.
func (t *Timer) Tick() (minutes int, completed bool) {
	if !t.active {
		return 0, false
	}
	if t.remaining > 0 {
		t.remaining--
		if t.mode == ModeWork {
			if elapsed := t.length - t.remaining; elapsed > 0 && elapsed%60 == 0 {
				t.counted++
			}
		}
	}
	if t.remaining > 0 {
		return 0, false
	}

	if t.mode == ModeWork && t.counted > 0 {
		minutes = max(t.counted, t.workMinutes)
		completed = true
	}
	next := ModeBreak
	if t.mode == ModeBreak {
		next = ModeWork
	}
	t.Start(next)
	return minutes, completed
}

// Progress returns the elapsed fraction of the current phase in [0, 1].
func (t *Timer) Progress() float64 {
	if t.length == 0 {
		return 0
	}
	return float64(t.length-t.remaining) / float64(t.length)
}

// String formats the remaining time as MM:SS.
func (t *Timer) String() string {
	return fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60)
}

func (t *Timer) arm() {
	t.length = t.workMinutes * 60
	if t.mode == ModeBreak {
		t.length = t.breakMinutes * 60
	}
	t.remaining = t.length
	t.counted = 0
}
