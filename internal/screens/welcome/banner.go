package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/modulajar/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ ██████╗ ██████╗ ██╗   ██╗██╗         █████╗      ██╗ █████╗ ██████╗
 ████╗ ████║██╔═══██╗██╔══██╗██║   ██║██║        ██╔══██╗     ██║██╔══██╗██╔══██╗
 ██╔████╔██║██║   ██║██║  ██║██║   ██║██║        ███████║     ██║███████║██████╔╝
 ██║╚██╔╝██║██║   ██║██║  ██║██║   ██║██║        ██╔══██║██   ██║██╔══██║██╔══██╗
 ██║ ╚═╝ ██║╚██████╔╝██████╔╝╚██████╔╝███████╗   ██║  ██║╚█████╔╝██║  ██║██║  ██║
 ╚═╝     ╚═╝ ╚═════╝ ╚═════╝  ╚═════╝ ╚══════╝   ╚═╝  ╚═╝ ╚════╝ ╚═╝  ╚═╝╚═╝  ╚═╝`

const bannerCompact = "M O D U L   A J A R"

// bannerMinWidth is the narrowest terminal the full banner fits in.
const bannerMinWidth = 85

// RenderBanner returns the banner styled in the primary color.
// Uses a compact fallback on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
