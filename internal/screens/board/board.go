package board

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/ui/components"
	"github.com/abhisek/rivalgoals/internal/ui/layout"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

const titleLimit = 120

// BoardScreen is the three-column task board.
type BoardScreen struct {
	store screen.Store

	column int
	rows   [3]int

	adding      bool
	input       components.TextInput
	lastTrigger int
}

var _ screen.Screen = (*BoardScreen)(nil)
var _ screen.KeyHintProvider = (*BoardScreen)(nil)
var _ screen.InputCapturer = (*BoardScreen)(nil)

// New creates a BoardScreen. Focus requests already made before the board
// existed are ignored; later ones open the add-task input.
func New(store screen.Store) *BoardScreen {
	input := components.NewTextInput("Enter task title...", false, titleLimit)
	input.Blur()
	return &BoardScreen{
		store:       store,
		input:       input,
		lastTrigger: store.Snapshot().FocusAddTaskTrigger,
	}
}

func (b *BoardScreen) Init() tea.Cmd {
	return nil
}

func (b *BoardScreen) Title() string {
	return "Task Board"
}

func (b *BoardScreen) CapturingInput() bool {
	return b.adding
}

func (b *BoardScreen) KeyHints() []layout.KeyHint {
	if b.adding {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add task"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→↑↓", Description: "Select"},
		{Key: "a", Description: "Add"},
		{Key: "Enter/>", Description: "Advance"},
		{Key: "<", Description: "Back"},
		{Key: "d", Description: "Delete"},
	}
}

func (b *BoardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.StateChangedMsg:
		if msg.State.FocusAddTaskTrigger > b.lastTrigger {
			b.lastTrigger = msg.State.FocusAddTaskTrigger
			return b, b.startAdding()
		}
		return b, nil

	case tea.KeyMsg:
		if b.adding {
			return b, b.updateAdding(msg)
		}
		return b, b.handleKey(msg.String())
	}

	if b.adding {
		var cmd tea.Cmd
		b.input, cmd = b.input.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b *BoardScreen) handleKey(key string) tea.Cmd {
	switch key {
	case "left", "h":
		b.column = max(b.column-1, 0)
	case "right", "l":
		b.column = min(b.column+1, len(b.rows)-1)
	case "up", "k":
		b.rows[b.column] = max(b.rows[b.column]-1, 0)
	case "down", "j":
		b.rows[b.column]++
		b.clamp(b.store.Snapshot())
	case "a", "n":
		return b.startAdding()
	case "enter", ">", "]":
		b.move(1)
	case "<", "[":
		b.move(-1)
	case "d", "x":
		if t, ok := b.selected(); ok {
			b.store.Dispatch(engine.DeleteTask(t.ID))
			b.clamp(b.store.Snapshot())
		}
	}
	return nil
}

func (b *BoardScreen) startAdding() tea.Cmd {
	b.adding = true
	b.column = 0
	b.input.SetValue("")
	return b.input.Focus()
}

func (b *BoardScreen) stopAdding() {
	b.adding = false
	b.input.SetValue("")
	b.input.Blur()
}

func (b *BoardScreen) updateAdding(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		b.stopAdding()
		return nil
	case "enter":
		title := strings.TrimSpace(b.input.Value())
		if title == "" {
			return nil
		}
		b.store.Dispatch(engine.AddTask(title))
		b.stopAdding()
		return nil
	}
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return cmd
}

// move shifts the selected task one column in dir, staying within the board.
func (b *BoardScreen) move(dir int) {
	t, ok := b.selected()
	if !ok {
		return
	}
	cols := state.KanbanColumns()
	target := b.column + dir
	if target < 0 || target >= len(cols) {
		return
	}
	b.store.Dispatch(engine.UpdateTaskStatus(t.ID, cols[target]))
	b.clamp(b.store.Snapshot())
}

func (b *BoardScreen) selected() (state.Task, bool) {
	snap := b.store.Snapshot()
	b.clamp(snap)
	tasks := snap.TasksByStatus(state.KanbanColumns()[b.column])
	if len(tasks) == 0 {
		return state.Task{}, false
	}
	return tasks[b.rows[b.column]], true
}

func (b *BoardScreen) clamp(s state.AppState) {
	for i, status := range state.KanbanColumns() {
		n := len(s.TasksByStatus(status))
		b.rows[i] = min(max(b.rows[i], 0), max(n-1, 0))
	}
}

func (b *BoardScreen) View(width, height int) string {
	snap := b.store.Snapshot()
	b.clamp(snap)

	colWidth := max((width-4)/3-2, 16)
	var cols []string
	for i, status := range state.KanbanColumns() {
		cols = append(cols, b.renderColumn(snap, i, status, colWidth, height))
	}
	board := lipgloss.JoinHorizontal(lipgloss.Top, cols...)

	var footer string
	if b.adding {
		footer = theme.Subtitle.Render("New task in To Do") + "\n" + b.input.View()
	} else if snap.ActiveTaskCount() == 0 && len(snap.Tasks) == 0 {
		footer = theme.Hint.Render("Your board is empty. Press a to add your first task.")
	}

	content := board
	if footer != "" {
		content += "\n\n" + footer
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (b *BoardScreen) renderColumn(s state.AppState, idx int, status state.KanbanStatus, w, height int) string {
	tasks := s.TasksByStatus(status)
	focused := idx == b.column && !b.adding

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.TextDim)
	if focused {
		headerStyle = headerStyle.Foreground(theme.Primary)
	}

	var lines []string
	lines = append(lines, headerStyle.Render(fmt.Sprintf("%s (%d)", status, len(tasks))))
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", w)))

	if len(tasks) == 0 {
		lines = append(lines, theme.Hint.Render("No tasks here."))
	}

	// Leave room for the header, divider and card border.
	visible := max(height-8, 3)
	start := 0
	if focused && b.rows[idx] >= visible {
		start = b.rows[idx] - visible + 1
	}
	for i := start; i < len(tasks) && i < start+visible; i++ {
		lines = append(lines, renderTask(tasks[i], focused && i == b.rows[idx], w))
	}

	border := theme.Border
	if focused {
		border = theme.Primary
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(w + 4).
		Render(strings.Join(lines, "\n"))
}

func renderTask(t state.Task, selected bool, w int) string {
	mark := "○"
	switch t.Status {
	case state.StatusInProgress:
		mark = "◐"
	case state.StatusDone:
		mark = "✓"
	}

	title := t.Title
	if lipgloss.Width(title) > w-4 {
		title = string([]rune(title)[:max(w-7, 1)]) + "..."
	}
	line := mark + " " + title

	if selected {
		return theme.Selected.Render("▸ " + line)
	}
	style := theme.Unselected
	if t.Status == state.StatusDone {
		style = lipgloss.NewStyle().Foreground(theme.Success)
	}
	return "  " + style.Render(line)
}
