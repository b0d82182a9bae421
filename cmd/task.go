package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/state"
)

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage board tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task to To Do",
	Args:  cobra.MinimumNArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		title := strings.TrimSpace(strings.Join(args, " "))
		if title == "" {
			return fmt.Errorf("task title is empty")
		}
		rt.engine.Dispatch(engine.AddTask(title))
		s := rt.engine.Snapshot()
		t := s.Tasks[len(s.Tasks)-1]
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s  %s (+%d XP when done)\n", shortID(t.ID), t.Title, t.XP)
		return nil
	}),
}

var taskListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks by column",
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		s := rt.engine.Snapshot()
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "%-10s  %-12s  %5s  %s\n", "ID", "Status", "XP", "Title")
		fmt.Fprintln(w, strings.Repeat("─", 60))
		for _, col := range state.KanbanColumns() {
			for _, t := range s.TasksByStatus(col) {
				fmt.Fprintf(w, "%-10s  %-12s  %5d  %s\n", shortID(t.ID), t.Status, t.XP, t.Title)
			}
		}
		fmt.Fprintf(w, "\n%d tasks, %d active\n", len(s.Tasks), s.ActiveTaskCount())
		return nil
	}),
}

var taskMoveCmd = &cobra.Command{
	Use:   "move <id> <todo|doing|done>",
	Short: "Move a task to another column",
	Args:  cobra.ExactArgs(2),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		t, err := findTask(rt.engine.Snapshot(), args[0])
		if err != nil {
			return err
		}
		status, err := parseStatus(args[1])
		if err != nil {
			return err
		}
		before := rt.engine.Snapshot().CurrentUserXP
		rt.engine.Dispatch(engine.UpdateTaskStatus(t.ID, status))
		after := rt.engine.Snapshot().CurrentUserXP

		fmt.Fprintf(cmd.OutOrStdout(), "Moved %q to %s", t.Title, status)
		if delta := after - before; delta != 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " (%+d XP, now %d)", delta, after)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	}),
}

var taskRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: withRuntime(func(cmd *cobra.Command, rt *runtime, args []string) error {
		t, err := findTask(rt.engine.Snapshot(), args[0])
		if err != nil {
			return err
		}
		rt.engine.Dispatch(engine.DeleteTask(t.ID))
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q\n", t.Title)
		return nil
	}),
}

func init() {
	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskMoveCmd)
	taskCmd.AddCommand(taskRemoveCmd)
}

// shortID is the leading part of an ID shown in listings. Any unique prefix
// is accepted back by the commands.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// findTask resolves ref as a full ID or a unique ID prefix.
func findTask(s state.AppState, ref string) (state.Task, error) {
	if t, ok := s.FindTask(ref); ok {
		return t, nil
	}
	var match []state.Task
	for _, t := range s.Tasks {
		if strings.HasPrefix(t.ID, ref) {
			match = append(match, t)
		}
	}
	switch len(match) {
	case 0:
		return state.Task{}, fmt.Errorf("no task matches %q", ref)
	case 1:
		return match[0], nil
	default:
		return state.Task{}, fmt.Errorf("%q matches %d tasks, use a longer prefix", ref, len(match))
	}
}

// parseStatus accepts a column name or its short form.
func parseStatus(v string) (state.KanbanStatus, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "todo", "to do", "to-do":
		return state.StatusToDo, nil
	case "doing", "inprogress", "in progress", "in-progress":
		return state.StatusInProgress, nil
	case "done":
		return state.StatusDone, nil
	}
	return "", fmt.Errorf("unknown status %q (want todo, doing or done)", v)
}
