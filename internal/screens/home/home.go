// Package home implements the level picker shown at the root of the UI.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/router"
	"github.com/abhisek/composition/internal/screen"
	sessionscreen "github.com/abhisek/composition/internal/screens/session"
	"github.com/abhisek/composition/internal/session"
	"github.com/abhisek/composition/internal/ui/components"
	"github.com/abhisek/composition/internal/ui/layout"
)

// HomeScreen lists the levels and starts a session for the chosen one.
type HomeScreen struct {
	deps       sessionscreen.Deps
	levels     []levels.Level
	menu       components.Menu
	menuLabels []string
	lastResult *session.Result
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. Sessions started from it report their result
// back so the screen can show the last round.
func New(deps sessionscreen.Deps) *HomeScreen {
	h := &HomeScreen{levels: levels.All()}

	onResult := deps.OnResult
	deps.OnResult = func(r session.Result) {
		h.lastResult = &r
		if onResult != nil {
			onResult(r)
		}
	}
	h.deps = deps

	items := make([]components.MenuItem, 0, len(h.levels)+1)
	for _, lvl := range h.levels {
		label := strings.ToUpper(lvl.DisplayName())
		h.menuLabels = append(h.menuLabels, label)
		items = append(items, components.MenuItem{
			Label:  label,
			Action: func() tea.Cmd { return h.start(lvl) },
		})
	}
	h.menuLabels = append(h.menuLabels, "EXIT GAME")
	items = append(items, components.MenuItem{
		Label:  "EXIT GAME",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	return h
}

// SessionFor returns a session screen for level wired to this screen, for
// starting a level directly.
func (h *HomeScreen) SessionFor(level levels.Level) screen.Screen {
	return sessionscreen.New(h.deps, level)
}

func (h *HomeScreen) start(level levels.Level) tea.Cmd {
	next := h.SessionFor(level)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) Title() string {
	return "Choose a level"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "1-4", Description: "Quick start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// selectedLevel returns the highlighted level, false on the exit item.
func (h *HomeScreen) selectedLevel() (levels.Level, bool) {
	if h.menu.Selected < 0 || h.menu.Selected >= len(h.levels) {
		return "", false
	}
	return h.levels[h.menu.Selected], true
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}

	if lvl, ok := h.selectedLevel(); ok {
		if settings, err := levels.Resolve(lvl); err == nil {
			sections = append(sections, renderLevelBar(settings, cw, compact))
		}
	}

	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menuLabels, h.menu.Selected, cw))
	}

	if h.lastResult != nil {
		sections = append(sections, renderLastResult(*h.lastResult, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) mascotVariant() MascotVariant {
	switch {
	case h.lastResult == nil:
		return MascotIdle
	case h.lastResult.Winner:
		return MascotCelebrating
	default:
		return MascotSad
	}
}
