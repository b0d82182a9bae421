package engine

import (
	"context"

	"github.com/abhisek/rivalgoals/internal/migrate"
	"github.com/abhisek/rivalgoals/internal/state"
)

// bootstrap loads and migrates the stored state. A first run is saved
// immediately; a stale day (with onboarding done) is rolled over and saved;
// otherwise nothing is written.
func (e *Engine) bootstrap() state.AppState {
	now := e.deps.Clock.Now()
	env := migrate.Env{
		Now:         now,
		PrefersDark: e.deps.PrefersDark,
		NewID:       e.deps.IDs.New,
	}

	blob, found, err := e.repo.Load(context.Background())
	if err != nil {
		e.logger.Error("failed to load state, starting fresh for this session", "error", err)
		return migrate.Fresh(env)
	}

	var s state.AppState
	if !found {
		s = migrate.Fresh(env)
	} else if s, err = migrate.Migrate(blob, env); err != nil {
		e.logger.Warn("stored state is malformed, using defaults", "error", err)
		s = migrate.Fresh(env)
	}

	if s.LastLoginDate != state.DateOf(now) && s.OnboardingCompleted {
		next := Rollover(s, now)
		e.save(next)
		e.logRollover(next)
		return next
	}

	if !found {
		e.save(s)
		e.logger.Info("created fresh state")
	}
	return s
}
