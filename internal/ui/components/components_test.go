package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	}
	return tea.KeyPressMsg{Code: rune(s[0]), Text: s}
}

func TestMenu_Wraps(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b"}, {Label: "c"}})

	m, _ = m.Update(key("up"))
	if m.Selected != 2 {
		t.Errorf("up from top: Selected = %d, want 2", m.Selected)
	}
	m, _ = m.Update(key("down"))
	if m.Selected != 0 {
		t.Errorf("down from bottom: Selected = %d, want 0", m.Selected)
	}
	m, _ = m.Update(key("j"))
	if m.Selected != 1 {
		t.Errorf("j: Selected = %d, want 1", m.Selected)
	}
}

func TestMenu_EnterRunsAction(t *testing.T) {
	type picked struct{}
	m := NewMenu([]MenuItem{
		{Label: "a"},
		{Label: "b", Action: func() tea.Cmd { return func() tea.Msg { return picked{} } }},
	})
	m.Selected = 1

	_, cmd := m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(picked); !ok {
		t.Error("action command did not run")
	}

	m.Selected = 0
	if _, cmd := m.Update(key("enter")); cmd != nil {
		t.Error("item without action returned a command")
	}
}

func TestMenu_EmptyIgnoresKeys(t *testing.T) {
	m := NewMenu(nil)
	m, cmd := m.Update(key("down"))
	if m.Selected != 0 || cmd != nil {
		t.Error("empty menu should ignore navigation")
	}
}

func TestConfidenceBar_Width(t *testing.T) {
	for _, c := range []float64{0, 0.3, 0.6, 1, 1.5} {
		v := NewConfidenceBar("", c, 0.5, 40).View()
		if w := lipgloss.Width(v); w != 40 {
			t.Errorf("confidence %v: width = %d, want 40", c, w)
		}
	}
}

func TestConfidenceBar_Percent(t *testing.T) {
	v := NewConfidenceBar("Confidence", 0.6, 0.5, 50).View()
	if !strings.Contains(v, "60%") {
		t.Errorf("view %q missing 60%%", v)
	}
}

func TestTextInput_Take(t *testing.T) {
	in := NewTextInput("Say something", 40)
	in.Model.SetValue("  hello  ")
	if got := in.Take(); got != "hello" {
		t.Errorf("Take() = %q, want hello", got)
	}
	if in.Value() != "" {
		t.Errorf("input not cleared: %q", in.Value())
	}
}
