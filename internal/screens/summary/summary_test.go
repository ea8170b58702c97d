package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/router"
	"github.com/abhisek/composition/internal/screen"
	"github.com/abhisek/composition/internal/session"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return stubScreen{}, nil }
func (stubScreen) View(int, int) string                    { return "" }
func (stubScreen) Title() string                           { return "retry" }

func testResult(winner bool) session.Result {
	return session.Result{
		Winner:              winner,
		CountOfRightAnswers: 11,
		CountOfQuestions:    14,
		Settings:            levels.MustResolve(levels.LevelEasy),
		Level:               levels.LevelEasy,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult(true), nil)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	tests := []struct {
		name   string
		winner bool
		banner string
	}{
		{"winner", true, "YOU WON!"},
		{"loser", false, "YOU LOST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := New(testResult(tt.winner), nil).View(80, 24)
			for _, want := range []string{tt.banner, "11 of 14", "78%", "70%"} {
				if !strings.Contains(view, want) {
					t.Errorf("expected %q in view", want)
				}
			}
		})
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult(true), func() screen.Screen { return stubScreen{} })
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (retry)")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok || msg.Screen.Title() != "retry" {
		t.Errorf("expected ReplaceScreenMsg with the retry screen, got %#v", msg)
	}
}

func TestSummaryScreen_Navigation_EnterWithoutRetry(t *testing.T) {
	s := New(testResult(true), nil)
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("expected no command without retry")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult(true), nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Error("expected PopToRootMsg")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	if n := len(New(testResult(true), nil).KeyHints()); n != 1 {
		t.Errorf("KeyHints length = %d, want 1", n)
	}
	retry := func() screen.Screen { return stubScreen{} }
	if n := len(New(testResult(true), retry).KeyHints()); n != 2 {
		t.Errorf("KeyHints length = %d, want 2", n)
	}
}
