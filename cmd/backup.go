package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/rivalgoals/internal/backup"
	"github.com/abhisek/rivalgoals/internal/engine"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a JSON backup to a file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		var w io.Writer = cmd.OutOrStdout()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("create backup file: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := backup.Export(cmdContext(cmd), rt.store.StateRepo(), w, rt.engine.Now()); err != nil {
			return err
		}
		if len(args) == 1 && args[0] != "-" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Backup written to %s\n", args[0])
		}
		return nil
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the stored state with a JSON backup",
	Args:  cobra.ExactArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		var r io.Reader = cmd.InOrStdin()
		if args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open backup file: %w", err)
			}
			defer f.Close()
			r = f
		}

		s, err := backup.Import(cmdContext(cmd), rt.store.StateRepo(), r, rt.migrateEnv())
		if err != nil {
			var verr *backup.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("backup rejected, nothing was changed: %w", verr.Err)
			}
			return err
		}
		rt.logger.Info("state imported", "file", args[0], "tasks", len(s.Tasks), "notes", len(s.SavedNotes))
		rt.engine.Dispatch(engine.Initialize())

		fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks, %d notes and %d archived days.\n",
			len(s.Tasks), len(s.SavedNotes), len(s.DailyHistory))
		return nil
	}),
}
