package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/state"
)

var noteCmd = &cobra.Command{
	Use:   "note",
	Short: "Manage scrap pad notes",
}

var noteAddCmd = &cobra.Command{
	Use:   "add [content]",
	Short: "Save a new note (content from args or stdin)",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		content, err := noteContent(cmd, args)
		if err != nil {
			return err
		}
		if state.NoteIsEmpty(title, content) {
			return fmt.Errorf("note is empty")
		}
		rt.engine.Dispatch(engine.AddNote(state.NoteTitle(title, content), content))
		n := rt.engine.Snapshot().SavedNotes[0]
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %s  %s\n", shortID(n.ID), n.Title)
		return nil
	}),
}

var noteListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List notes, newest first",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		s := rt.engine.Snapshot()
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "%-10s  %-17s  %s\n", "ID", "Updated", "Title")
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, n := range s.SavedNotes {
			fmt.Fprintf(w, "%-10s  %-17s  %s\n", shortID(n.ID), n.UpdatedAt.Format("2006-01-02 15:04"), n.Title)
		}
		fmt.Fprintf(w, "\n%d notes\n", len(s.SavedNotes))
		return nil
	}),
}

var noteShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a note",
	Args:  cobra.ExactArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		n, err := findNote(rt.engine.Snapshot(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s\n", n.Title, n.Content)
		return nil
	}),
}

var noteEditCmd = &cobra.Command{
	Use:   "edit <id> [content]",
	Short: "Replace a note's title or content",
	Args:  cobra.MinimumNArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		n, err := findNote(rt.engine.Snapshot(), args[0])
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("title") {
			n.Title, _ = cmd.Flags().GetString("title")
		}
		if len(args) > 1 || cmd.Flags().Changed("stdin") {
			if n.Content, err = noteContent(cmd, args[1:]); err != nil {
				return err
			}
		}
		if state.NoteIsEmpty(n.Title, n.Content) {
			return fmt.Errorf("note would be empty")
		}
		n.Title = state.NoteTitle(n.Title, n.Content)
		rt.engine.Dispatch(engine.UpdateNote(n))
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", shortID(n.ID))
		return nil
	}),
}

var noteRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a note",
	Args:    cobra.ExactArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		n, err := findNote(rt.engine.Snapshot(), args[0])
		if err != nil {
			return err
		}
		rt.engine.Dispatch(engine.DeleteNote(n.ID))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", n.Title)
		return nil
	}),
}

func init() {
	noteAddCmd.Flags().String("title", "", "Note title (defaults to the first line)")
	noteAddCmd.Flags().Bool("stdin", false, "Read content from stdin")
	noteEditCmd.Flags().String("title", "", "New title")
	noteEditCmd.Flags().Bool("stdin", false, "Read new content from stdin")

	noteCmd.AddCommand(noteAddCmd)
	noteCmd.AddCommand(noteListCmd)
	noteCmd.AddCommand(noteShowCmd)
	noteCmd.AddCommand(noteEditCmd)
	noteCmd.AddCommand(noteRemoveCmd)
}

// noteContent joins args, or reads stdin when --stdin is set.
func noteContent(cmd *cobra.Command, args []string) (string, error) {
	if useStdin, _ := cmd.Flags().GetBool("stdin"); useStdin {
		in := cmd.InOrStdin()
		if in == nil {
			in = os.Stdin
		}
		b, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	return strings.Join(args, " "), nil
}

// findNote resolves ref as a full ID or a unique ID prefix.
func findNote(s state.AppState, ref string) (state.ScrapNote, error) {
	if n, ok := s.FindNote(ref); ok {
		return n, nil
	}
	var match []state.ScrapNote
	for _, n := range s.SavedNotes {
		if strings.HasPrefix(n.ID, ref) {
			match = append(match, n)
		}
	}
	switch len(match) {
	case 0:
		return state.ScrapNote{}, fmt.Errorf("no note matches %q", ref)
	case 1:
		return match[0], nil
	default:
		return state.ScrapNote{}, fmt.Errorf("%q matches %d notes, use a longer prefix", ref, len(match))
	}
}
