package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/state"
)

var rivalCmd = &cobra.Command{
	Use:   "rival",
	Short: "Drive the rival outside the TUI",
}

var rivalTickCmd = &cobra.Command{
	Use:   "tick",
	Short: "Give the rival one chance to gain XP",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		s := rt.engine.Snapshot()
		if !engine.Active(s) {
			fmt.Fprintln(cmd.OutOrStdout(), "Riva is waiting for you to finish onboarding.")
			return nil
		}
		before := s.CurrentRivaXP
		engine.NewScheduler(rt.engine, rt.cfg.RivalInterval).Tick()
		printRival(cmd, rt.engine.Snapshot(), before)
		return nil
	}),
}

var rivalWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the rival on its interval until interrupted",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
		defer stop()

		unsubscribe := rt.engine.Subscribe(func(s state.AppState) {
			fmt.Fprintf(cmd.OutOrStdout(), "Riva %d / %d XP  %s\n", s.CurrentRivaXP, s.RivaTargetToday, s.RivalMessage())
		})
		defer unsubscribe()

		fmt.Fprintf(cmd.OutOrStdout(), "Watching Riva every %s. Ctrl+C to stop.\n", rt.cfg.RivalInterval)
		engine.NewScheduler(rt.engine, rt.cfg.RivalInterval).Run(ctx)
		return nil
	}),
}

var newDayCmd = &cobra.Command{
	Use:   "newday",
	Short: "Archive today if the date has changed since the last start",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		before := rt.engine.Snapshot().LastLoginDate
		today := state.DateOf(rt.engine.Now())
		if before == today {
			fmt.Fprintf(cmd.OutOrStdout(), "Still %s, nothing to archive.\n", today)
			return nil
		}
		rt.engine.Dispatch(engine.HandleNewDay())
		s := rt.engine.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "Started %s. Riva's target is %d XP.\n", s.LastLoginDate, s.RivaTargetToday)
		return nil
	}),
}

func init() {
	rivalCmd.AddCommand(rivalTickCmd)
	rivalCmd.AddCommand(rivalWatchCmd)
}

func printRival(cmd *cobra.Command, s state.AppState, before int) {
	if s.CurrentRivaXP == before {
		fmt.Fprintf(cmd.OutOrStdout(), "Riva stays at %d XP.\n", s.CurrentRivaXP)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Riva +%d XP (%d / %d). %s\n",
		s.CurrentRivaXP-before, s.CurrentRivaXP, s.RivaTargetToday, s.RivalMessage())
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
