package notes

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/router"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/screens/noteeditor"
	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/ui/layout"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

const dateLayout = "Jan 2, 2006 15:04"

// LibraryScreen lists saved notes, newest first.
type LibraryScreen struct {
	store        screen.Store
	cursor       int
	scrollOffset int
	confirmID    string // note awaiting delete confirmation
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen.
func New(store screen.Store) *LibraryScreen {
	return &LibraryScreen{store: store}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) Title() string {
	return "Notes"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	if s.confirmID != "" {
		return []layout.KeyHint{
			{Key: "y", Description: "Delete"},
			{Key: "any", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "n", Description: "New"},
		{Key: "Enter", Description: "Edit"},
		{Key: "d", Description: "Delete"},
	}
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	notes := s.store.Snapshot().SavedNotes

	if s.confirmID != "" {
		if kmsg.String() == "y" {
			s.store.Dispatch(engine.DeleteNote(s.confirmID))
			s.cursor = min(s.cursor, max(len(notes)-2, 0))
		}
		s.confirmID = ""
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(notes)-1 {
			s.cursor++
		}
	case "n":
		return s, push(noteeditor.New(s.store, nil))
	case "enter", "e":
		if note, ok := s.selected(notes); ok {
			return s, push(noteeditor.New(s.store, &note))
		}
	case "d", "x":
		if note, ok := s.selected(notes); ok {
			s.confirmID = note.ID
		}
	}
	return s, nil
}

func (s *LibraryScreen) selected(notes []state.ScrapNote) (state.ScrapNote, bool) {
	if len(notes) == 0 {
		return state.ScrapNote{}, false
	}
	s.cursor = min(s.cursor, len(notes)-1)
	return notes[s.cursor], true
}

func push(sc screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: sc}
	}
}

func (s *LibraryScreen) View(width, height int) string {
	notes := s.store.Snapshot().SavedNotes
	cw := min(max(width-8, 30), 80)

	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Scrap Pad Library (%d)", len(notes))))
	b.WriteString("\n\n")

	if len(notes) == 0 {
		b.WriteString(theme.Hint.Render("No notes yet. Press n to capture your first idea."))
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(b.String()))
	}

	s.cursor = min(s.cursor, len(notes)-1)

	// Each note takes three lines plus a gap.
	perPage := max((height-4)/4, 1)
	if s.cursor < s.scrollOffset {
		s.scrollOffset = s.cursor
	}
	if s.cursor >= s.scrollOffset+perPage {
		s.scrollOffset = s.cursor - perPage + 1
	}

	for i := s.scrollOffset; i < len(notes) && i < s.scrollOffset+perPage; i++ {
		b.WriteString(s.renderNote(notes[i], i == s.cursor, cw))
		b.WriteString("\n")
	}
	if s.confirmID != "" {
		b.WriteString(theme.ErrorText.Render("Delete this note? This cannot be undone. (y/N)"))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func (s *LibraryScreen) renderNote(n state.ScrapNote, selected bool, cw int) string {
	titleStyle := theme.Unselected
	prefix := "  "
	if selected {
		titleStyle = theme.Selected
		prefix = "▸ "
	}

	preview := strings.Join(strings.Fields(n.Content), " ")
	if r := []rune(preview); len(r) > cw-6 {
		preview = string(r[:max(cw-9, 1)]) + "..."
	}

	lines := []string{
		titleStyle.Render(prefix + n.Title),
		"    " + lipgloss.NewStyle().Foreground(theme.TextDim).Render("updated "+n.UpdatedAt.UTC().Format(dateLayout)),
	}
	if preview != "" {
		lines = append(lines, "    "+lipgloss.NewStyle().Foreground(theme.Text).Render(preview))
	}
	return strings.Join(lines, "\n") + "\n"
}
