package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/state"
)

var focusCmd = &cobra.Command{
	Use:   "focus [minutes]",
	Short: "Log a completed focus session (defaults to the work duration)",
	Args:  cobra.MaximumNArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		minutes := rt.engine.Snapshot().UserSettings.PomodoroWorkDuration
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("minutes must be a positive whole number, got %q", args[0])
			}
			minutes = n
		}

		rt.engine.Dispatch(engine.CompletePomodoro(minutes))
		s := rt.engine.Snapshot()
		fmt.Fprintf(cmd.OutOrStdout(), "+%d XP for %d focused minutes. Total today: %d XP\n",
			minutes*state.XPPerPomodoroMinute, minutes, s.CurrentUserXP)
		return nil
	}),
}
