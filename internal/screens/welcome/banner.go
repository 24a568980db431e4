package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/ecoamazonia/guardioes/internal/ui/theme"
)

const bannerArt = `
 ╔═╗╔═╗╔═╗ ╔═╗╔╦╗╔═╗╔═╗╔═╗╔╗╔╦╔═╗
 ║╣ ║  ║ ║ ╠═╣║║║╠═╣╔═╝║ ║║║║║╠═╣
 ╚═╝╚═╝╚═╝ ╩ ╩╩ ╩╩ ╩╚═╝╚═╝╝╚╝╩╩ ╩`

const bannerCompact = "E C O A M A Z Ô N I A"

// RenderBanner returns the title banner in the primary color, or a
// spaced-out fallback below 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
