// Package layout frames every screen with the header and footer bars and
// decides when a screen should switch to its compact rendering.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/composition/internal/ui/theme"
)

// AppName is shown at the left of the header.
const AppName = "Composition"

const (
	MinWidth  = 60
	MinHeight = 20

	HeaderHeight = 3
	FooterHeight = 3

	// Below either threshold screens drop decoration such as the mascot.
	CompactWidthThreshold  = 80
	CompactHeightThreshold = 30
)

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompact reports whether a screen given width columns and a content
// area of contentHeight rows should render compactly.
func IsCompact(width, contentHeight int) bool {
	return width < CompactWidthThreshold ||
		contentHeight+HeaderHeight+FooterHeight < CompactHeightThreshold
}

// IsTooSmall reports whether the terminal is below the playable size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// ContentHeight is the number of rows left for a screen between the bars.
func ContentHeight(totalHeight int) int {
	return max(totalHeight-HeaderHeight-FooterHeight, 0)
}

// RenderMinSizeMessage asks the player to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Terminal too small!\n\nThe game needs %d x %d,\nthis one is %d x %d.",
			MinWidth, MinHeight, width, height))
}

// RenderHeader shows the app name on the left, title in the middle and
// status, usually the time left, on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)
	side := max((inner-lipgloss.Width(center))/2, 0)

	left := lipgloss.NewStyle().
		Width(side).
		Foreground(theme.Primary).
		Bold(true).
		Render(" " + AppName)
	right := lipgloss.NewStyle().
		Width(max(inner-side-lipgloss.Width(center), 0)).
		Align(lipgloss.Right).
		Foreground(theme.Accent).
		Bold(true).
		Render(status + " ")

	return bar(width).Render(left + center + right)
}

// RenderFooter lists key hints.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = key.Render(h.Key) + " " + desc.Render(h.Description)
	}
	return bar(width).Render("  " + strings.Join(parts, "   "))
}

// CenterLine renders s centered across width.
func CenterLine(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

// RenderFrame stacks header, content and footer, padding content so the
// footer sits on the last rows.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).Render(content)
	return header + "\n" + body + "\n" + footer
}

func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}
