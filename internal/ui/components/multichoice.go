package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/composition/internal/ui/theme"
)

// DefaultColumns is the number of options per row.
const DefaultColumns = 3

// ChosenMsg reports the option picked in a MultiChoice. Tag is copied
// from the grid that produced it.
type ChosenMsg struct {
	Tag   int
	Index int
	Value int
}

// MultiChoice is a grid of numbered answer options. Digit keys pick an
// option directly; arrows move the selection and Enter picks it.
type MultiChoice struct {
	Options  []int
	Selected int
	Columns  int
	// Tag identifies the grid in the ChosenMsg values it emits, so a pick
	// delivered after the grid was replaced can be told apart.
	Tag int
}

// NewMultiChoice creates a new multiple-choice grid.
func NewMultiChoice(options []int) MultiChoice {
	return MultiChoice{
		Options: options,
		Columns: DefaultColumns,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection. A pick is reported
// through a ChosenMsg command.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(m.Options) == 0 {
		return m, nil
	}

	cols := m.columns()
	key := kmsg.String()
	switch key {
	case "left", "h":
		if m.Selected > 0 {
			m.Selected--
		}
	case "right", "l":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "up", "k":
		if m.Selected-cols >= 0 {
			m.Selected -= cols
		}
	case "down", "j":
		if m.Selected+cols < len(m.Options) {
			m.Selected += cols
		}
	case "enter":
		return m, m.choose(m.Selected)
	default:
		if idx, ok := digitIndex(key); ok && idx < len(m.Options) {
			m.Selected = idx
			return m, m.choose(idx)
		}
	}

	return m, nil
}

func (m MultiChoice) choose(idx int) tea.Cmd {
	chosen := ChosenMsg{Tag: m.Tag, Index: idx, Value: m.Options[idx]}
	return func() tea.Msg { return chosen }
}

func (m MultiChoice) columns() int {
	if m.Columns <= 0 {
		return DefaultColumns
	}
	return m.Columns
}

// View renders the options as rows of boxed cells.
func (m MultiChoice) View() string {
	cols := m.columns()

	cell := lipgloss.NewStyle().
		Width(10).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Text)
	active := cell.
		BorderForeground(theme.Primary).
		Foreground(theme.Primary).
		Bold(true)
	label := lipgloss.NewStyle().Foreground(theme.TextDim)

	var rows []string
	for start := 0; start < len(m.Options); start += cols {
		end := min(start+cols, len(m.Options))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			text := label.Render(fmt.Sprintf("%d)", i+1)) + " " + fmt.Sprint(m.Options[i])
			style := cell
			if i == m.Selected {
				style = active
			}
			cells = append(cells, style.Render(text))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
