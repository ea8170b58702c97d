package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

type actionMsg string

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "a", Disabled: true},
		{Label: "b"},
		{Label: "c", Disabled: true},
		{Label: "d"},
	})
	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Errorf("expected down to skip disabled item, got %d", m.Selected)
	}
	m, _ = m.Update(key("up"))
	if m.Selected != 1 {
		t.Errorf("expected up to skip disabled item, got %d", m.Selected)
	}
}

func TestMenu_DigitActivates(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "one", Action: func() tea.Cmd { return func() tea.Msg { return actionMsg("one") } }},
		{Label: "two", Action: func() tea.Cmd { return func() tea.Msg { return actionMsg("two") } }},
	})
	m, cmd := m.Update(key("2"))
	if m.Selected != 1 {
		t.Errorf("expected selection 1, got %d", m.Selected)
	}
	if cmd == nil || cmd() != actionMsg("two") {
		t.Error("expected digit to activate the second item")
	}

	if _, cmd := m.Update(key("9")); cmd != nil {
		t.Error("expected out-of-range digit to do nothing")
	}
}

func TestMenu_ViewMarksSelection(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Easy", Detail: "max 10"}, {Label: "Hard"}})
	v := m.View()
	if !strings.Contains(v, "▸ Easy") {
		t.Errorf("expected marker on selected item, got %q", v)
	}
	if !strings.Contains(v, "max 10") {
		t.Error("expected detail text")
	}
}

func TestMultiChoice_DigitChooses(t *testing.T) {
	m := NewMultiChoice([]int{4, 8, 15, 16, 23, 42})
	m, cmd := m.Update(key("5"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	got, ok := cmd().(ChosenMsg)
	if !ok || got.Index != 4 || got.Value != 23 {
		t.Errorf("expected option 5 (23), got %+v", got)
	}
	if m.Selected != 4 {
		t.Errorf("expected selection to follow the digit, got %d", m.Selected)
	}
}

func TestMultiChoice_ChosenCarriesTag(t *testing.T) {
	m := NewMultiChoice([]int{4, 8})
	m.Tag = 7
	_, cmd := m.Update(key("enter"))
	if got := cmd().(ChosenMsg); got.Tag != 7 || got.Value != 4 {
		t.Errorf("expected tag 7 and value 4, got %+v", got)
	}
}

func TestMultiChoice_GridNavigation(t *testing.T) {
	m := NewMultiChoice([]int{1, 2, 3, 4, 5, 6})

	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Errorf("expected down to move one row, got %d", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 3 {
		t.Errorf("expected down on last row to stay, got %d", m.Selected)
	}
	m, _ = m.Update(key("right"))
	m, _ = m.Update(key("right"))
	m, _ = m.Update(key("right"))
	if m.Selected != 5 {
		t.Errorf("expected right to stop at the last option, got %d", m.Selected)
	}
	m, _ = m.Update(key("up"))
	if m.Selected != 2 {
		t.Errorf("expected up to move one row, got %d", m.Selected)
	}

	_, cmd := m.Update(key("enter"))
	if got := cmd().(ChosenMsg); got.Value != 3 {
		t.Errorf("expected enter to choose 3, got %d", got.Value)
	}
}

func TestMultiChoice_IgnoresOutOfRangeDigit(t *testing.T) {
	m := NewMultiChoice([]int{1, 2})
	if _, cmd := m.Update(key("3")); cmd != nil {
		t.Error("expected no choice for a missing option")
	}
}

func TestMultiChoice_ViewLabelsOptions(t *testing.T) {
	v := NewMultiChoice([]int{7, 11, 13}).View()
	for _, want := range []string{"1)", "7", "2)", "11", "3)", "13"} {
		if !strings.Contains(v, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestProgressBar_Width(t *testing.T) {
	p := NewProgressBar("Right", 0.5, true, 40).WithMarker(0.7, false)
	if w := lipgloss.Width(p.View()); w != 40 {
		t.Errorf("expected width 40, got %d", w)
	}
	if !strings.Contains(p.View(), "50%") {
		t.Error("expected percent label")
	}
	if !strings.Contains(p.View(), "│") {
		t.Error("expected threshold marker")
	}
}

func TestProgressBar_MarkerClamped(t *testing.T) {
	p := NewProgressBar("", 1, false, 10).WithMarker(1, true)
	if w := lipgloss.Width(p.View()); w != 10 {
		t.Errorf("expected width 10, got %d", w)
	}
}

func TestTextInput_NumericOnly(t *testing.T) {
	ti := NewTextInput("answer", true, 10)
	ti, _ = ti.Update(key("4"))
	ti, _ = ti.Update(key("x"))
	ti, _ = ti.Update(key("2"))

	n, err := ti.NumericValue()
	if err != nil || n != 42 {
		t.Errorf("expected 42, got %d (%v)", n, err)
	}

	ti.Reset()
	if ti.Value() != "" {
		t.Errorf("expected empty value after reset, got %q", ti.Value())
	}
}
