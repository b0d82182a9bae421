package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/state"
)

// Palette is one color scheme.
type Palette struct {
	Primary   color.Color // user
	Rival     color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
	WorkTimer color.Color
	BreakTime color.Color
}

var (
	Dark = Palette{
		Primary:   lipgloss.Color("#3B82F6"), // Blue
		Rival:     lipgloss.Color("#A855F7"), // Purple
		Accent:    lipgloss.Color("#F97316"), // Orange
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#F8FAFC"),
		TextDim:   lipgloss.Color("#94A3B8"),
		Bg:        lipgloss.Color("#0F172A"),
		BgCard:    lipgloss.Color("#1E293B"),
		Border:    lipgloss.Color("#334155"),
		WorkTimer: lipgloss.Color("#3B82F6"),
		BreakTime: lipgloss.Color("#EC4899"), // Pink
	}

	Light = Palette{
		Primary:   lipgloss.Color("#2563EB"),
		Rival:     lipgloss.Color("#9333EA"),
		Accent:    lipgloss.Color("#EA580C"),
		Success:   lipgloss.Color("#16A34A"),
		Error:     lipgloss.Color("#E11D48"),
		Text:      lipgloss.Color("#0F172A"),
		TextDim:   lipgloss.Color("#64748B"),
		Bg:        lipgloss.Color("#F8FAFC"),
		BgCard:    lipgloss.Color("#E2E8F0"),
		Border:    lipgloss.Color("#CBD5E1"),
		WorkTimer: lipgloss.Color("#2563EB"),
		BreakTime: lipgloss.Color("#DB2777"),
	}
)

// Active palette colors. Apply swaps them.
var (
	Primary   color.Color
	Rival     color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
	WorkTimer color.Color
	BreakTime color.Color
)

// Styles derived from the active palette.
var (
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Card       lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	ErrorText  lipgloss.Style
)

var current state.Theme

func init() {
	Apply(state.ThemeDark)
}

// Current returns the theme last passed to Apply.
func Current() state.Theme { return current }

// Apply switches the active palette and rebuilds the derived styles.
func Apply(t state.Theme) {
	p := Dark
	if t == state.ThemeLight {
		p = Light
	}
	current = t

	Primary, Rival, Accent = p.Primary, p.Rival, p.Accent
	Success, Error = p.Success, p.Error
	Text, TextDim = p.Text, p.TextDim
	Bg, BgCard, Border = p.Bg, p.BgCard, p.Border
	WorkTimer, BreakTime = p.WorkTimer, p.BreakTime

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	ErrorText = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
}
