// Package engine owns the application state. Every change goes through
// Dispatch, which reduces the action, persists the result and notifies
// subscribers.
package engine

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/store"
)

// Observer receives engine events, typically for metrics.
type Observer interface {
	ActionDispatched(t ActionType)
	StateSaved(err error)
	RivalGained(xp int)
	DayRolledOver()
}

type nopObserver struct{}

func (nopObserver) ActionDispatched(ActionType) {}
func (nopObserver) StateSaved(error)            {}
func (nopObserver) RivalGained(int)             {}
func (nopObserver) DayRolledOver()              {}

// Engine is the single owner of AppState.
type Engine struct {
	mu     sync.Mutex
	state  state.AppState
	repo   store.StateRepo
	deps   Deps
	logger *slog.Logger
	obs    Observer

	subMu  sync.Mutex
	subs   map[int]func(state.AppState)
	nextID int
}

// Option configures an Engine.
type Option func(*Engine)

// WithDeps overrides the clock, ID generator, random source and environment.
func WithDeps(d Deps) Option {
	return func(e *Engine) { e.deps = d.withDefaults() }
}

// WithLogger sets the logger used for persistence failures and lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithObserver attaches an Observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.obs = o }
}

// New creates an Engine holding the pre-bootstrap state. Dispatch
// Initialize() before use.
func New(repo store.StateRepo, opts ...Option) *Engine {
	e := &Engine{
		repo:   repo,
		deps:   DefaultDeps(),
		logger: slog.Default(),
		obs:    nopObserver{},
		subs:   make(map[int]func(state.AppState)),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = state.Initial(e.deps.Clock.Now())
	return e
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() state.AppState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Now reads the engine's clock.
func (e *Engine) Now() time.Time {
	return e.deps.Clock.Now()
}

// Subscribe registers fn to be called with a snapshot after every transition.
// The returned func removes the subscription.
func (e *Engine) Subscribe(fn func(state.AppState)) (unsubscribe func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()
	id := e.nextID
	e.nextID++
	e.subs[id] = fn
	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		delete(e.subs, id)
	}
}

// Dispatch applies a to the current state. Transitions are serialized, so
// each one observes the complete result of the previous.
func (e *Engine) Dispatch(a Action) {
	e.mu.Lock()
	prev := e.state
	var persist bool
	if a.Type == ActionInitialize {
		e.state = e.bootstrap()
	} else {
		e.state, persist = Reduce(prev, a, e.deps)
		if persist {
			e.save(e.state)
		}
	}
	e.observe(a, prev, e.state)
	snap := e.state.Clone()
	e.mu.Unlock()

	e.obs.ActionDispatched(a.Type)
	e.notify(snap)
}

func (e *Engine) observe(a Action, prev, next state.AppState) {
	switch a.Type {
	case ActionAttemptRivalGain:
		if gained := next.CurrentRivaXP - prev.CurrentRivaXP; gained > 0 {
			e.obs.RivalGained(gained)
		}
	case ActionHandleNewDay:
		e.logRollover(next)
	}
}

func (e *Engine) logRollover(next state.AppState) {
	e.obs.DayRolledOver()
	e.logger.Info("day rolled over",
		"date", next.LastLoginDate,
		"rival_target", next.RivaTargetToday,
		"streak", next.CurrentStreak,
		"title", next.CurrentTitle,
	)
}

func (e *Engine) notify(snap state.AppState) {
	e.subMu.Lock()
	fns := make([]func(state.AppState), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// save persists s. Failures are logged, never returned: the in-memory state
// stays authoritative for the session.
func (e *Engine) save(s state.AppState) {
	blob, err := json.Marshal(s)
	if err == nil {
		err = e.repo.Save(context.Background(), blob)
	}
	e.obs.StateSaved(err)
	if err != nil {
		e.logger.Error("failed to save state", "key", store.StateKey, "error", err)
	}
}
