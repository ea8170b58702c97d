package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/composition/internal/ui/theme"
)

const bannerArt = `
 ┏━╸┏━┓┏┳┓┏━┓┏━┓┏━┓╻╺┳╸╻┏━┓┏┓╻
 ┃  ┃ ┃┃┃┃┣━┛┃ ┃┗━┓┃ ┃ ┃┃ ┃┃┗┫
 ┗━╸┗━┛╹ ╹╹  ┗━┛┗━┛╹ ╹ ╹┗━┛╹ ╹`

const bannerCompact = "C O M P O S I T I O N"

// RenderBanner returns the COMPOSITION banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 36 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 36 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
