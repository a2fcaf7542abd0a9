package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathstar/internal/ui/theme"
)

const bannerArt = `
 ███╗   ███╗ █████╗ ████████╗██╗  ██╗███████╗████████╗ █████╗ ██████╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██╔════╝╚══██╔══╝██╔══██╗██╔══██╗
 ██╔████╔██║███████║   ██║   ███████║███████╗   ██║   ███████║██████╔╝
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║╚════██║   ██║   ██╔══██║██╔══██╗
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║███████║   ██║   ██║  ██║██║  ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝`

// BannerWidth is the column count the full banner needs.
const BannerWidth = 71

const bannerCompact = "M A T H S T A R"

// RenderBanner returns the MATHSTAR banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < BannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
