package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/rivalgoals/internal/config"
	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/metrics"
	"github.com/abhisek/rivalgoals/internal/migrate"
	"github.com/abhisek/rivalgoals/internal/store"
)

// runtime bundles everything a command needs to read or change state.
type runtime struct {
	cfg     config.Config
	store   *store.Store
	engine  *engine.Engine
	metrics *metrics.Recorder
	logger  *slog.Logger
	logFile *os.File
}

// openRuntime loads config, opens the log file and store, and boots an
// engine on the persisted state.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logPath, err := cfg.ResolveLogFile()
	if err != nil {
		return nil, fmt.Errorf("resolve log file: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: cfg.Level()}))

	dbPath, err := cfg.ResolveDBPath()
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	rec := metrics.New()
	deps := engine.DefaultDeps()
	deps.PrefersDark = cfg.PrefersDark()
	eng := engine.New(st.StateRepo(),
		engine.WithDeps(deps),
		engine.WithLogger(logger),
		engine.WithObserver(rec),
	)
	eng.Dispatch(engine.Initialize())
	logger.Debug("runtime ready", "db", dbPath, "command", cmd.Name())

	return &runtime{
		cfg:     cfg,
		store:   st,
		engine:  eng,
		metrics: rec,
		logger:  logger,
		logFile: logFile,
	}, nil
}

// migrateEnv returns the environment used to migrate imported blobs.
func (r *runtime) migrateEnv() migrate.Env {
	deps := engine.DefaultDeps()
	return migrate.Env{
		Now:         r.engine.Now(),
		PrefersDark: r.cfg.PrefersDark(),
		NewID:       deps.IDs.New,
	}
}

// Close writes the metrics textfile, if configured, and releases the store
// and log file.
func (r *runtime) Close() error {
	r.metrics.Observe(r.engine.Snapshot())
	err := r.metrics.WriteTextfile(r.cfg.MetricsFile)
	if err != nil {
		r.logger.Error("write metrics", "err", err)
	}
	return errors.Join(err, r.store.Close(), r.logFile.Close())
}
