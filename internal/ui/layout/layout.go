package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/state"
	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	HeaderHeight = 3
	FooterHeight = 3

	CompactWidthThreshold = 100
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// HeaderStats is the scoreboard shown on the right of the header.
type HeaderStats struct {
	UserXP  int
	RivalXP int
	Target  int
	Streak  int
	Title   state.Title
}

// StatsFrom extracts the header scoreboard from s.
func StatsFrom(s state.AppState) HeaderStats {
	return HeaderStats{
		UserXP:  s.CurrentUserXP,
		RivalXP: s.CurrentRivaXP,
		Target:  s.RivaTargetToday,
		Streak:  s.CurrentStreak,
		Title:   s.CurrentTitle,
	}
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight returns the available height for screen content.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader renders the application header bar.
func RenderHeader(title string, stats HeaderStats, width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("  RivalGoals")

	center := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(title)

	sep := lipgloss.NewStyle().Foreground(theme.TextDim).Render("   ")
	right := lipgloss.NewStyle().Foreground(theme.Primary).Render(fmt.Sprintf("You %d", stats.UserXP)) +
		sep +
		lipgloss.NewStyle().Foreground(theme.Rival).Render(fmt.Sprintf("Riva %d/%d", stats.RivalXP, stats.Target)) +
		sep +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("★ %d day", stats.Streak))
	if !IsCompactWidth(width) && stats.Title != "" {
		right += sep + lipgloss.NewStyle().Foreground(theme.TextDim).Render(stats.Title.Icon()+" "+string(stats.Title))
	}

	return box(spread(left, center, right, width), width)
}

// RenderFooter renders the footer with key hints on the left and an optional
// status (the focus timer) on the right.
func RenderFooter(hints []KeyHint, status string, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
		parts = append(parts, part)
	}
	left := "  " + strings.Join(parts, "   ")

	if status == "" {
		return box(left, width)
	}
	gap := max(width-4-lipgloss.Width(left)-lipgloss.Width(status), 1)
	return box(left+strings.Repeat(" ", gap)+status, width)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}

// spread places left at the start, center in the middle and right at the end
// of the inner header width.
func spread(left, center, right string, width int) string {
	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := max(width-4, 0) // account for border padding

	leftGap := max((innerWidth-centerLen)/2-leftLen, 1)
	rightGap := max(innerWidth-leftLen-leftGap-centerLen-rightLen, 1)

	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

func box(content string, width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(content)
}
