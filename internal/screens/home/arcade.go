package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/session"
	"github.com/abhisek/composition/internal/ui/components"
	"github.com/abhisek/composition/internal/ui/theme"
)

const arcadeTitle = "C · O · M · P · O · S · I · T · I · O · N"

const arcadeTagline = "find the missing number"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the styled title block.
func renderTitle(cw int, compact bool) string {
	title := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(arcadeTitle)
	block := title
	if !compact {
		block += "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render(arcadeTagline)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLevelBar renders the selected level's targets in a double-bordered
// box matching the content width.
func renderLevelBar(s levels.Settings, cw int, compact bool) string {
	sumStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	goalStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			sumStyle.Render(fmt.Sprintf("Σ%d", s.MaxSumValue)),
			goalStyle.Render(fmt.Sprintf("★%d/%d%%", s.MinCountRightAnswers, s.MinPercentOfRightAnswers)),
			timeStyle.Render(fmt.Sprintf("⏱%s", session.FormatTime(s.GameTime()))),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			sumStyle.Render(fmt.Sprintf("Σ UP TO %d", s.MaxSumValue)),
			goalStyle.Render(fmt.Sprintf("★ %d RIGHT @ %d%%", s.MinCountRightAnswers, s.MinPercentOfRightAnswers)),
			timeStyle.Render(fmt.Sprintf("⏱ %s", session.FormatTime(s.GameTime()))),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	buttons := make([]string, 0, len(items))
	for i, label := range items {
		buttons = append(buttons, components.ArcadeButton(label, i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for terminals
// where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderLastResult renders a one-line recap of the previous session.
func renderLastResult(r session.Result, cw int) string {
	verdict := "lost"
	if r.Winner {
		verdict = "won"
	}
	text := fmt.Sprintf("Last round: %s, %d of %d right (%d%%) on %s",
		verdict, r.CountOfRightAnswers, r.CountOfQuestions, r.Percent(), r.Level.DisplayName())
	return lipgloss.NewStyle().
		Foreground(theme.ThresholdColor(r.Winner)).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
