package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/rivalgoals/internal/app"
)

// runApp opens the store, boots the engine, and launches the TUI.
func runApp(cmd *cobra.Command) (err error) {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(); err == nil {
			err = cerr
		}
	}()

	rt.logger.Info("starting tui", "rival_interval", rt.cfg.RivalInterval)
	return app.Run(app.Options{
		Engine:        rt.engine,
		RivalInterval: rt.cfg.RivalInterval,
		Logger:        rt.logger,
	})
}

// withRuntime wraps a command body that needs the engine.
func withRuntime(fn func(cmd *cobra.Command, rt *runtime, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		rt, err := openRuntime(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rt.Close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd, rt, args)
	}
}
