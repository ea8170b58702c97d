package session

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/problemgen"
	sess "github.com/abhisek/composition/internal/session"
	"github.com/abhisek/composition/internal/ui/components"
	"github.com/abhisek/composition/internal/ui/layout"
	"github.com/abhisek/composition/internal/ui/theme"
)

// renderQuestionView renders the equation, the answer options and progress.
func (s *SessionScreen) renderQuestionView(width, height int) string {
	if s.question == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing your session...")
	}

	center := func(str string) string { return layout.CenterLine(str, width) }
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	eq := theme.Equation.
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 4).
		Render(formatEquation(*s.question, -1))
	b.WriteString(center(eq))
	b.WriteString("\n\n")

	if s.typing {
		b.WriteString(center("Answer: " + s.input.View()))
		b.WriteString("\n")
		b.WriteString(center(theme.Hint.Render("Enter submits, Tab returns to the options")))
	} else {
		b.WriteString(center(s.choice.View()))
	}
	b.WriteString("\n\n")

	if s.feedback != "" {
		style := theme.Incorrect
		if s.feedbackGood {
			style = theme.Correct
		}
		b.WriteString(center(style.Render(s.feedback)))
	}
	b.WriteString("\n\n")

	b.WriteString(center(s.renderProgress(cw)))
	b.WriteString("\n")
	b.WriteString(center(theme.Hint.Render(goalText(s.ctrl.Settings()))))
	return b.String()
}

// goalText states what the level asks for.
func goalText(st levels.Settings) string {
	return fmt.Sprintf("Goal: %d right answers and %d%% in %s",
		st.MinCountRightAnswers, st.MinPercentOfRightAnswers, sess.FormatTime(st.GameTime()))
}

// renderProgress renders the count line and a percent bar with the
// minimum-percent marker.
func (s *SessionScreen) renderProgress(cw int) string {
	p := s.progress

	count := lipgloss.NewStyle().
		Foreground(theme.ThresholdColor(p.EnoughCount)).
		Bold(true).
		Render(p.Text())

	bar := components.NewProgressBar("", float64(p.Percent)/100, true, cw).
		WithMarker(float64(s.minPercent)/100, p.EnoughPercent)

	pct := theme.Hint.Render(fmt.Sprintf("%d of %d right, need %d%%",
		p.CountOfRightAnswers, p.CountOfQuestions, s.minPercent))

	return lipgloss.JoinVertical(lipgloss.Center, count, bar.View(), pct)
}

// formatEquation renders "sum = visible + ?", or the filled-in equation
// when answer is non-negative.
func formatEquation(q problemgen.Question, answer int) string {
	if answer < 0 {
		return fmt.Sprintf("%d = %d + ?", q.Sum, q.VisibleNumber)
	}
	return fmt.Sprintf("%d = %d + %d", q.Sum, q.VisibleNumber, answer)
}

// renderQuitConfirm renders the quit confirmation dialog with the time
// still on the clock.
func renderQuitConfirm(width int, remaining time.Duration) string {
	line := func(fg color.Color, text string) string {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(fg).
			Render(text)
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(theme.Title.Width(width).Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("The clock keeps running (%s left). Ending now gives no result.",
			sess.FormatTime(remaining))))
	b.WriteString("\n\n")
	b.WriteString(line(theme.Success, "[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(line(theme.Primary, "[N] No, keep going"))
	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
