package session

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/composition/internal/clock"
	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/logging"
	"github.com/abhisek/composition/internal/problemgen"
	"github.com/abhisek/composition/internal/router"
	"github.com/abhisek/composition/internal/screen"
	sess "github.com/abhisek/composition/internal/session"
	"github.com/abhisek/composition/internal/ui/components"
	"github.com/abhisek/composition/internal/ui/layout"
)

// tickInterval is how often the event loop advances the session clock.
const tickInterval = 250 * time.Millisecond

// Deps are the collaborators shared by every session started from the UI.
type Deps struct {
	Generator problemgen.Generator
	Logger    *slog.Logger
	// OnResult, if set, receives each result before the summary is shown.
	OnResult func(sess.Result)
}

// SessionScreen implements screen.Screen for a running session. The
// controller runs on a manual clock that the screen advances from tick
// messages, so every controller call happens on the event loop.
type SessionScreen struct {
	deps  Deps
	level levels.Level
	clock *clock.Manual
	ctrl  *sess.Controller
	now   func() time.Time

	minPercent  int
	timeLeft    string
	question    *problemgen.Question
	// questionSeq counts questions shown; the answer grid is tagged with it.
	questionSeq int
	progress    sess.Progress
	result      *sess.Result

	choice  components.MultiChoice
	input   components.TextInput
	typing  bool
	confirm bool
	// feedback describes the last scored answer.
	feedback     string
	feedbackGood bool
	lastTick     time.Time
	errMsg       string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.EscapeHandler = (*SessionScreen)(nil)
var _ sess.Observer = (*SessionScreen)(nil)

// New creates a SessionScreen for level. The session starts in Init.
func New(deps Deps, level levels.Level) *SessionScreen {
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	s := &SessionScreen{
		deps:  deps,
		level: level,
		clock: clock.NewManual(),
		now:   time.Now,
		input: components.NewTextInput("Type the missing number...", true, 6),
	}
	s.ctrl = sess.New(sess.Options{
		Generator: deps.Generator,
		Clock:     s.clock,
		Observer:  s,
		Logger:    deps.Logger,
	})
	return s
}

func (s *SessionScreen) Init() tea.Cmd {
	if err := s.ctrl.Start(s.level); err != nil {
		s.deps.Logger.Error("start session", "level", s.level, "error", err)
		s.errMsg = err.Error()
		return nil
	}
	s.lastTick = s.now()
	return s.tickCmd()
}

func (s *SessionScreen) Title() string {
	return "Level " + s.level.DisplayName()
}

// Status shows the remaining time in the header.
func (s *SessionScreen) Status() string {
	if s.timeLeft == "" {
		return ""
	}
	return "⏱ " + s.timeLeft
}

// HandlesEscape is true because Esc opens the quit confirmation.
func (s *SessionScreen) HandlesEscape() bool {
	return true
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.typing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Options"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-6", Description: "Answer"},
		{Key: "←→↑↓", Description: "Move"},
		{Key: "Tab", Description: "Type"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *SessionScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.confirm {
		return renderQuitConfirm(width, s.ctrl.Remaining())
	}
	return s.renderQuestionView(width, height)
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case components.ChosenMsg:
		if msg.Tag != s.questionSeq {
			s.deps.Logger.Debug("stale pick dropped", "tag", msg.Tag, "current", s.questionSeq)
			return s, nil
		}
		return s.answer(msg.Value)

	case finishedMsg:
		return s.handleFinished()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	if s.typing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SessionScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.ID != s.ctrl.ID() || s.ctrl.Phase() != sess.PhaseRunning {
		return s, nil
	}
	if elapsed := msg.At.Sub(s.lastTick); elapsed > 0 {
		s.lastTick = msg.At
		s.clock.Advance(elapsed)
	}
	if s.result != nil {
		return s, finishCmd()
	}
	return s, s.tickCmd()
}

func (s *SessionScreen) handleFinished() (screen.Screen, tea.Cmd) {
	if s.result == nil {
		return s, nil
	}
	if s.deps.OnResult != nil {
		s.deps.OnResult(*s.result)
	}
	next := newSummaryScreenAdapter(s.deps, *s.result)
	return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SessionScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.confirm {
		switch key {
		case "y", "Y":
			s.confirm = false
			s.ctrl.Stop()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirm = false
		}
		return s, nil
	}

	if s.ctrl.Phase() != sess.PhaseRunning {
		return s, nil
	}

	switch key {
	case "esc":
		s.confirm = true
		return s, nil
	case "tab":
		s.typing = !s.typing
		s.input.Reset()
		return s, nil
	}

	if s.typing {
		if key == "enter" {
			v, err := s.input.NumericValue()
			if err != nil {
				s.input.Submit(false)
				return s, nil
			}
			s.input.Reset()
			return s.answer(v)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	return s, cmd
}

// answer submits value. The controller reports progress and the next
// question back through the observer methods.
func (s *SessionScreen) answer(value int) (screen.Screen, tea.Cmd) {
	if s.ctrl.Phase() != sess.PhaseRunning || s.question == nil {
		return s, nil
	}
	q := *s.question
	before := s.progress.CountOfRightAnswers
	s.ctrl.ChooseAnswer(value)

	s.feedbackGood = s.progress.CountOfRightAnswers > before
	if s.feedbackGood {
		s.feedback = "Correct!"
	} else {
		s.feedback = "Not quite: " + formatEquation(q, q.RightAnswer)
	}
	return s, nil
}

func (s *SessionScreen) tickCmd() tea.Cmd {
	id := s.ctrl.ID()
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return timerTickMsg{ID: id, At: t}
	})
}

func finishCmd() tea.Cmd {
	return func() tea.Msg { return finishedMsg{} }
}

// Observer methods. They run inside controller calls made from Update.

func (s *SessionScreen) MinPercent(percent int) { s.minPercent = percent }

func (s *SessionScreen) TimeLeft(text string) { s.timeLeft = text }

func (s *SessionScreen) Question(q problemgen.Question) {
	s.question = &q
	s.questionSeq++
	selected := s.choice.Selected
	s.choice = components.NewMultiChoice(q.Options)
	s.choice.Tag = s.questionSeq
	if selected < len(q.Options) {
		s.choice.Selected = selected
	}
}

func (s *SessionScreen) Progress(p sess.Progress) { s.progress = p }

func (s *SessionScreen) Result(r sess.Result) { s.result = &r }
