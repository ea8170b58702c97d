package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/composition/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar with an optional
// threshold marker.
type ProgressBar struct {
	Label       string
	Percent     float64 // 0.0-1.0
	Marker      float64 // threshold position 0.0-1.0; negative hides it
	Fill        color.Color
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar without a marker.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		Marker:      -1,
		Fill:        theme.Secondary,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// WithMarker returns a copy with a threshold marker at pos and the fill
// colored by whether the threshold is met.
func (p ProgressBar) WithMarker(pos float64, met bool) ProgressBar {
	p.Marker = pos
	p.Fill = theme.ThresholdColor(met)
	return p
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := clampCells(int(float64(barWidth)*p.Percent), barWidth)
	marker := -1
	if p.Marker >= 0 {
		marker = clampCells(int(float64(barWidth)*p.Marker), barWidth-1)
	}

	fill := p.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	filledStyle := lipgloss.NewStyle().Background(fill)

	var bar strings.Builder
	for i := 0; i < barWidth; i++ {
		style := theme.ProgressEmpty
		if i < filled {
			style = filledStyle
		}
		if i == marker {
			bar.WriteString(style.Inherit(theme.ProgressMarker).Render("│"))
			continue
		}
		bar.WriteString(style.Render(" "))
	}
	result += bar.String()

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}

func clampCells(n, hi int) int {
	if n > hi {
		return hi
	}
	if n < 0 {
		return 0
	}
	return n
}
