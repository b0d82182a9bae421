package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rivalgoals/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗██╗   ██╗ █████╗ ██╗
 ██╔══██╗██║██║   ██║██╔══██╗██║
 ██████╔╝██║██║   ██║███████║██║
 ██╔══██╗██║╚██╗ ██╔╝██╔══██║██║
 ██║  ██║██║ ╚████╔╝ ██║  ██║███████╗
 ╚═╝  ╚═╝╚═╝  ╚═══╝  ╚═╝  ╚═╝╚══════╝`

const bannerCompact = "R I V A L G O A L S"

// RenderBanner returns the RIVAL banner styled in the primary color, with a
// compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt) + "\n" + lipgloss.NewStyle().Foreground(theme.Rival).Bold(true).Render("            G O A L S")
}
