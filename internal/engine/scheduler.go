package engine

import (
	"context"
	"time"

	"github.com/abhisek/rivalgoals/internal/state"
)

// RivalInterval is how often the rival gets a chance to gain XP.
const RivalInterval = 20 * time.Second

// Scheduler drives the engine's ambient transitions from a ticker: a rival
// gain attempt every interval, and a day rollover when the calendar date
// moves past lastLoginDate while the process keeps running.
type Scheduler struct {
	engine   *Engine
	interval time.Duration
}

// NewScheduler creates a Scheduler. A non-positive interval uses RivalInterval.
func NewScheduler(e *Engine, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = RivalInterval
	}
	return &Scheduler{engine: e, interval: interval}
}

// Interval returns the time between ticks.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Run ticks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}

// Tick performs one scheduler step. Nothing happens until onboarding is done.
func (s *Scheduler) Tick() {
	snap := s.engine.Snapshot()
	if !Active(snap) {
		return
	}
	if snap.LastLoginDate != state.DateOf(s.engine.Now()) {
		s.engine.Dispatch(HandleNewDay())
		return
	}
	s.engine.Dispatch(AttemptRivalGain())
}

// Active reports whether ambient rival activity should run for s.
func Active(s state.AppState) bool {
	return s.Initialized && s.OnboardingCompleted
}
