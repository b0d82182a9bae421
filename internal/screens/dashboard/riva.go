package dashboard

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

// Mood selects which Riva art to display.
type Mood int

const (
	MoodIdle     Mood = iota // nobody has scored yet
	MoodLeading              // Riva is ahead
	MoodTrailing             // the user is ahead
)

const rivaIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ RIV │
└─────┘`

const rivaLeading = `┌─────┐
│ ◣ ◢ │ !
│  ▼  │
│ RIV │
└─────┘`

const rivaTrailing = `┌─────┐
│ ◔ ◔ │
│  ︵ │
│ RIV │
└─╥═╥─┘
  ╚═╝`

// MoodFor compares the two scores.
func MoodFor(userXP, rivalXP int) Mood {
	switch {
	case userXP == 0 && rivalXP == 0:
		return MoodIdle
	case rivalXP > userXP:
		return MoodLeading
	case userXP > rivalXP:
		return MoodTrailing
	}
	return MoodIdle
}

// RenderRiva returns Riva's art for the given mood.
func RenderRiva(m Mood) string {
	art, fg := rivaIdle, theme.Rival
	switch m {
	case MoodLeading:
		art, fg = rivaLeading, theme.Accent
	case MoodTrailing:
		art, fg = rivaTrailing, theme.TextDim
	}
	return lipgloss.NewStyle().Foreground(fg).Render(art)
}

func moodLine(m Mood) string {
	switch m {
	case MoodLeading:
		return "Riva is ahead. Time to ship something."
	case MoodTrailing:
		return "You're ahead of Riva. Keep the pressure on."
	}
	return "Riva is watching. Make the first move."
}
