package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/state"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change user settings",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		var patch engine.SettingsPatch
		if cmd.Flags().Changed("name") {
			name, _ := cmd.Flags().GetString("name")
			name = strings.TrimSpace(name)
			patch.UserName = &name
		}
		if cmd.Flags().Changed("work") {
			work, _ := cmd.Flags().GetInt("work")
			patch.PomodoroWorkDuration = &work
		}
		if cmd.Flags().Changed("break") {
			brk, _ := cmd.Flags().GetInt("break")
			patch.PomodoroBreakDuration = &brk
		}

		current := rt.engine.Snapshot().UserSettings
		if patch != (engine.SettingsPatch{}) {
			if err := state.ValidateSettings(patch.Apply(current)); err != nil {
				return err
			}
			rt.engine.Dispatch(engine.UpdateSettings(patch))
			current = rt.engine.Snapshot().UserSettings
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%-16s%s\n", "Name", current.UserName)
		fmt.Fprintf(w, "%-16s%d min\n", "Focus session", current.PomodoroWorkDuration)
		fmt.Fprintf(w, "%-16s%d min\n", "Break", current.PomodoroBreakDuration)
		fmt.Fprintf(w, "%-16s%s\n", "Theme", rt.engine.Snapshot().Theme)
		return nil
	}),
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Toggle between the light and dark theme",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		rt.engine.Dispatch(engine.ToggleTheme())
		fmt.Fprintf(cmd.OutOrStdout(), "Theme is now %s\n", rt.engine.Snapshot().Theme)
		return nil
	}),
}

func init() {
	settingsCmd.Flags().String("name", "", "Display name")
	settingsCmd.Flags().Int("work", 0, "Focus session length in minutes")
	settingsCmd.Flags().Int("break", 0, "Break length in minutes")
}
