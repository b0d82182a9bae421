package pomodoro

import "testing"

func run(t *Timer, seconds int) (credited []int) {
	for i := 0; i < seconds; i++ {
		if m, ok := t.Tick(); ok {
			credited = append(credited, m)
		}
	}
	return credited
}

func TestPausedTimerDoesNotMove(t *testing.T) {
	tm := New(25, 5)
	if _, ok := tm.Tick(); ok {
		t.Fatal("paused timer completed")
	}
	if got := tm.String(); got != "25:00" {
		t.Errorf("String() = %q, want 25:00", got)
	}
}

func TestWorkPhaseCreditsFullDuration(t *testing.T) {
	tm := New(2, 1)
	tm.Toggle()

	credited := run(tm, 119)
	if len(credited) != 0 {
		t.Fatalf("credited early: %v", credited)
	}
	if tm.String() != "00:01" {
		t.Fatalf("String() = %q, want 00:01", tm.String())
	}

	credited = run(tm, 1)
	if len(credited) != 1 || credited[0] != 2 {
		t.Fatalf("credited = %v, want [2]", credited)
	}
	if tm.Mode() != ModeBreak || !tm.Active() {
		t.Errorf("after work: mode=%s active=%v, want running break", tm.Mode(), tm.Active())
	}
	if tm.RemainingSeconds() != 60 {
		t.Errorf("break remaining = %d, want 60", tm.RemainingSeconds())
	}
}

func TestBreakPhaseCreditsNothing(t *testing.T) {
	tm := New(1, 1)
	tm.Start(ModeBreak)

	if credited := run(tm, 60); len(credited) != 0 {
		t.Errorf("break credited %v", credited)
	}
	if tm.Mode() != ModeWork || !tm.Active() {
		t.Errorf("after break: mode=%s active=%v, want running work", tm.Mode(), tm.Active())
	}
}

func TestCyclesRepeat(t *testing.T) {
	tm := New(1, 1)
	tm.Toggle()

	credited := run(tm, 4*60)
	if len(credited) != 2 {
		t.Fatalf("credited = %v, want two work completions", credited)
	}
}

func TestDurationChangeWhileRunning(t *testing.T) {
	tm := New(3, 1)
	tm.Toggle()
	run(tm, 150)

	tm.SetDurations(5, 1)
	if tm.RemainingSeconds() != 30 {
		t.Fatalf("remaining = %d, want 30", tm.RemainingSeconds())
	}

	// The phase ends on its original countdown but credits the current
	// work setting, which is larger than the three minutes counted.
	credited := run(tm, 30)
	if len(credited) != 1 || credited[0] != 5 {
		t.Errorf("credited = %v, want [5]", credited)
	}

	tm.SetDurations(1, 1)
	run(tm, 60)
	credited = run(tm, 60)
	if len(credited) != 1 || credited[0] != 1 {
		t.Errorf("after shortening credited = %v, want [1]", credited)
	}
}

func TestResetAndSetDurations(t *testing.T) {
	tm := New(25, 5)
	tm.Toggle()
	run(tm, 90)
	tm.Reset()

	if tm.Active() {
		t.Error("Reset should pause")
	}
	if tm.String() != "25:00" {
		t.Errorf("after Reset String() = %q", tm.String())
	}

	tm.SetDurations(50, 10)
	if tm.String() != "50:00" {
		t.Errorf("paused SetDurations String() = %q, want 50:00", tm.String())
	}
}

func TestProgress(t *testing.T) {
	tm := New(1, 1)
	if tm.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", tm.Progress())
	}
	tm.Toggle()
	run(tm, 30)
	if tm.Progress() != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", tm.Progress())
	}

	if New(0, 0).Progress() != 0 {
		t.Error("zero-length phase should report 0 progress")
	}
}

func TestZeroLengthWorkDoesNotCredit(t *testing.T) {
	tm := New(0, 1)
	tm.Toggle()
	if m, ok := tm.Tick(); ok {
		t.Errorf("credited %d minutes for a zero-length phase", m)
	}
	if tm.Mode() != ModeBreak {
		t.Errorf("mode = %s, want break", tm.Mode())
	}
}

func TestSetDurationsUnchangedKeepsPausedCountdown(t *testing.T) {
	tm := New(25, 5)
	tm.Toggle()
	run(tm, 90)
	tm.Toggle()

	tm.SetDurations(25, 5)
	if tm.String() != "23:30" {
		t.Errorf("String() = %q, want 23:30", tm.String())
	}
}
