package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/composition/internal/router"
	"github.com/abhisek/composition/internal/screen"
	"github.com/abhisek/composition/internal/session"
	"github.com/abhisek/composition/internal/ui/components"
	"github.com/abhisek/composition/internal/ui/layout"
	"github.com/abhisek/composition/internal/ui/theme"
)

// SummaryScreen displays the result of a finished session.
type SummaryScreen struct {
	result session.Result
	retry  func() screen.Screen
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.EscapeHandler = (*SummaryScreen)(nil)

// New creates a SummaryScreen. retry builds the screen for another round at
// the same level; nil disables retry.
func New(result session.Result, retry func() screen.Screen) *SummaryScreen {
	return &SummaryScreen{result: result, retry: retry}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) HandlesEscape() bool {
	return true
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "Esc", Description: "Levels"}}
	if s.retry != nil {
		hints = append([]layout.KeyHint{{Key: "Enter", Description: "Play again"}}, hints...)
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			if s.retry == nil {
				return s, nil
			}
			next := s.retry()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "esc":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	cw := components.ContentWidth(width)
	center := func(str string) string { return layout.CenterLine(str, width) }

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(center(theme.Subtitle.Render("Time is up!")))
	b.WriteString("\n\n")

	banner := "YOU LOST"
	if r.Winner {
		banner = "YOU WON!"
	}
	b.WriteString(center(components.ArcadeBanner(banner, r.Winner, cw)))
	b.WriteString("\n\n")

	enoughCount := r.CountOfRightAnswers >= r.Settings.MinCountRightAnswers
	enoughPercent := r.Percent() >= r.Settings.MinPercentOfRightAnswers

	stats := strings.Join([]string{
		components.StatLine("Right answers",
			fmt.Sprintf("%d of %d", r.CountOfRightAnswers, r.CountOfQuestions),
			theme.ThresholdColor(enoughCount)),
		components.StatLine("Needed       ",
			fmt.Sprintf("%d", r.Settings.MinCountRightAnswers), theme.Text),
		components.StatLine("Score        ",
			fmt.Sprintf("%d%%", r.Percent()),
			theme.ThresholdColor(enoughPercent)),
		components.StatLine("Needed       ",
			fmt.Sprintf("%d%%", r.Settings.MinPercentOfRightAnswers), theme.Text),
	}, "\n")
	b.WriteString(center(components.ArcadeCard(stats, cw)))

	return b.String()
}
