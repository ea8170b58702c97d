// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/composition/internal/levels"
	"github.com/abhisek/composition/internal/problemgen"
	"github.com/abhisek/composition/internal/router"
	"github.com/abhisek/composition/internal/screen"
	"github.com/abhisek/composition/internal/screens/home"
	sessionscreen "github.com/abhisek/composition/internal/screens/session"
	"github.com/abhisek/composition/internal/screens/welcome"
	"github.com/abhisek/composition/internal/ui/layout"
)

// Options configures the terminal UI.
type Options struct {
	// Level, when HasLevel is set, skips the splash and level picker.
	Level     levels.Level
	HasLevel  bool
	Generator problemgen.Generator
	Logger    *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	start  tea.Cmd
	width  int
	height int
}

// newAppModel builds the screen stack. The level picker always sits at the
// root so Esc from a session returns to it.
func newAppModel(opts Options) AppModel {
	picker := home.New(sessionscreen.Deps{
		Generator: opts.Generator,
		Logger:    opts.Logger,
	})

	if opts.HasLevel {
		first := picker.SessionFor(opts.Level)
		return AppModel{
			router: router.New(picker),
			start:  func() tea.Msg { return router.PushScreenMsg{Screen: first} },
		}
	}

	splash := welcome.New(func() screen.Screen { return picker })
	return AppModel{
		router: router.New(splash),
		start:  splash.Init(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.start
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if kp, ok := active.(screen.KeyHintProvider); ok {
		return kp.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
