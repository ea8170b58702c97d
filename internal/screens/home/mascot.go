package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/composition/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // no session played yet
	MascotCelebrating                      // last session won
	MascotSad                              // last session lost
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ +?= │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ +?= │
└─╥═╥─┘
  ╚═╝`

const mascotSad = `┌─────┐
│ ◉ ◉ │
│  ︵  │
│ +?= │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotSad:
		art = mascotSad
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
