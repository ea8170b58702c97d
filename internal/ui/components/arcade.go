package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/composition/internal/ui/theme"
)

// ContentWidth returns the inner width shared by arcade boxes so they align.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	return max(20, min(frameWidth-6, 56))
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ArcadeButton renders a marquee button; the selected one is highlighted.
func ArcadeButton(label string, selected bool, width int) string {
	if selected {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.ArcadeYellow).
			Padding(0, 1).
			Render("▸ " + label)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(label)
}

// ArcadeBanner renders a full-width marquee line, yellow for a win and
// rose otherwise.
func ArcadeBanner(text string, win bool, cw int) string {
	bg := theme.Error
	if win {
		bg = theme.ArcadeYellow
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(bg).
		Padding(0, 1).
		Render(text)
}

// StatLine renders "label  value" with the value in the given color.
func StatLine(label, value string, fg color.Color) string {
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + "  " +
		lipgloss.NewStyle().Foreground(fg).Bold(true).Render(value)
}
