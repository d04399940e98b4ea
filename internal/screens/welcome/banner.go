package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/unholyblue/bloom/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗      ██████╗  ██████╗ ███╗   ███╗
 ██╔══██╗██║     ██╔═══██╗██╔═══██╗████╗ ████║
 ██████╔╝██║     ██║   ██║██║   ██║██╔████╔██║
 ██╔══██╗██║     ██║   ██║██║   ██║██║╚██╔╝██║
 ██████╔╝███████╗╚██████╔╝╚██████╔╝██║ ╚═╝ ██║
 ╚═════╝ ╚══════╝ ╚═════╝  ╚═════╝ ╚═╝     ╚═╝`

const bannerCompact = "b l o o m"

// RenderBanner returns the wordmark, or a compact one below 50 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 50 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
