// Package library browses the distortion catalog.
package library

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unholyblue/bloom/internal/distortion"
	"github.com/unholyblue/bloom/internal/screen"
	"github.com/unholyblue/bloom/internal/ui/components"
	"github.com/unholyblue/bloom/internal/ui/layout"
	"github.com/unholyblue/bloom/internal/ui/theme"
)

// LibraryScreen lists every thinking pattern in catalog order.
type LibraryScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

func New() *LibraryScreen {
	defs := distortion.All()
	items := make([]components.MenuItem, len(defs))
	for i, d := range defs {
		items[i] = components.MenuItem{
			Label:  d.Name,
			Detail: d.Description,
			Action: func() tea.Cmd { return screen.Push(newDetail(d)) },
		}
	}
	return &LibraryScreen{menu: components.NewMenu(items)}
}

func (s *LibraryScreen) Init() tea.Cmd { return nil }
func (s *LibraryScreen) Title() string { return "Thinking Patterns" }

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return s, screen.Pop
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LibraryScreen) View(width, height int) string {
	intro := theme.Hint.Render(fmt.Sprintf(
		"  %d common thinking patterns. Noticing one is the first step to looking past it.",
		len(s.menu.Items)))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render("\n" + intro + "\n\n" + s.menu.View())
}
