package noteeditor

import (
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/engine"
	"github.com/abhisek/rivalgoals/internal/router"
	"github.com/abhisek/rivalgoals/internal/screen"
	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/ui/components"
	"github.com/abhisek/rivalgoals/internal/ui/layout"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

const titleLimit = 80

type field int

const (
	fieldTitle field = iota
	fieldContent
)

// EditorScreen creates a new note or edits an existing one.
type EditorScreen struct {
	store   screen.Store
	editing *state.ScrapNote

	title   components.TextInput
	content textarea.Model
	focus   field
}

var _ screen.Screen = (*EditorScreen)(nil)
var _ screen.KeyHintProvider = (*EditorScreen)(nil)
var _ screen.InputCapturer = (*EditorScreen)(nil)

// New creates an editor. A nil note starts a new one.
func New(store screen.Store, note *state.ScrapNote) *EditorScreen {
	title := components.NewTextInput("Note Title (optional)", false, titleLimit)
	content := textarea.New()
	content.Placeholder = "Jot down your thoughts, ideas, or to-dos..."
	content.ShowLineNumbers = false

	e := &EditorScreen{store: store, title: title, content: content}
	if note != nil {
		cp := *note
		e.editing = &cp
		e.title.SetValue(note.Title)
		e.content.SetValue(note.Content)
		e.focusField(fieldTitle)
	} else {
		e.focusField(fieldContent)
	}
	return e
}

func (e *EditorScreen) Init() tea.Cmd {
	if e.focus == fieldTitle {
		return e.title.Focus()
	}
	return e.content.Focus()
}

func (e *EditorScreen) Title() string {
	if e.editing != nil {
		return "Edit Note"
	}
	return "Create New Note"
}

func (e *EditorScreen) CapturingInput() bool {
	return true
}

func (e *EditorScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Ctrl+L", Description: "Clear"},
		{Key: "Esc", Description: "Discard"},
	}
}

func (e *EditorScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return e, pop
		case "ctrl+s":
			return e, e.save()
		case "ctrl+l":
			e.content.SetValue("")
			return e, nil
		case "tab", "shift+tab":
			if e.focus == fieldTitle {
				return e, e.focusField(fieldContent)
			}
			return e, e.focusField(fieldTitle)
		}
	}

	var cmd tea.Cmd
	if e.focus == fieldTitle {
		// The title is a single line; enter moves on to the body.
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			return e, e.focusField(fieldContent)
		}
		e.title, cmd = e.title.Update(msg)
	} else {
		e.content, cmd = e.content.Update(msg)
	}
	return e, cmd
}

func (e *EditorScreen) focusField(f field) tea.Cmd {
	e.focus = f
	if f == fieldTitle {
		e.content.Blur()
		return e.title.Focus()
	}
	e.title.Blur()
	return e.content.Focus()
}

// CanSave reports whether there is anything to save.
func (e *EditorScreen) CanSave() bool {
	return !state.NoteIsEmpty(e.title.Value(), e.content.Value())
}

func (e *EditorScreen) save() tea.Cmd {
	if !e.CanSave() {
		return nil
	}
	title := state.NoteTitle(e.title.Value(), e.content.Value())
	content := e.content.Value()
	if e.editing == nil {
		e.store.Dispatch(engine.AddNote(title, content))
	} else {
		updated := *e.editing
		updated.Title = title
		updated.Content = content
		e.store.Dispatch(engine.UpdateNote(updated))
	}
	return pop
}

func pop() tea.Msg {
	return router.PopScreenMsg{}
}

func (e *EditorScreen) View(width, height int) string {
	w := min(max(width-8, 30), 90)
	e.content.SetWidth(w)
	e.content.SetHeight(max(height-10, 4))

	label := func(s string, active bool) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if active {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		return style.Render(s)
	}

	status := theme.Hint.Render("ctrl+s to save")
	if !e.CanSave() {
		status = theme.Hint.Render("nothing to save yet")
	}

	body := strings.Join([]string{
		theme.Title.Render(e.Title()),
		"",
		label("Title", e.focus == fieldTitle),
		e.title.View(),
		"",
		label("Content", e.focus == fieldContent),
		e.content.View(),
		"",
		status,
	}, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Width(w+4).Render(body))
}
