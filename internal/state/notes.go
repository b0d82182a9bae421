package state

import "strings"

const (
	UntitledNote = "Untitled Note"

	// noteTitleLimit caps titles derived from note content, in runes.
	noteTitleLimit = 50
)

// NoteTitle returns the title a note is saved under: the trimmed title when
// one was given, otherwise the first line of content.
func NoteTitle(title, content string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if strings.TrimSpace(content) == "" {
		return UntitledNote
	}
	first, _, _ := strings.Cut(content, "\n")
	first = strings.TrimSpace(first)
	if r := []rune(first); len(r) > noteTitleLimit {
		first = string(r[:noteTitleLimit])
	}
	if first == "" {
		return UntitledNote
	}
	return first
}

// NoteIsEmpty reports whether a note has nothing worth saving.
func NoteIsEmpty(title, content string) bool {
	return strings.TrimSpace(title) == "" && strings.TrimSpace(content) == ""
}
