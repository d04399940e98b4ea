// Package welcome is the splash shown before the first chat.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unholyblue/bloom/internal/screen"
	"github.com/unholyblue/bloom/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bloomAt      = 600 * time.Millisecond
	readyAt      = 1200 * time.Millisecond
)

const budArt = `   ,
  (_)
   |
  \|/`

const flowerArt = ` _(_)_
(_)@(_)
 /(_)\
   |
  \|/`

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// WelcomeScreen animates a bud opening, then hands over to next on any key.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string { return "" }
func (w *WelcomeScreen) Init() tea.Cmd { return tick() }

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= readyAt {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// Any key skips the animation.
		return w, w.transition()
	}
	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg { return screen.ReplaceMsg{Screen: next} }
}

func (w *WelcomeScreen) View(width, height int) string {
	art := budArt
	if w.elapsed >= bloomAt {
		art = flowerArt
	}
	sections := []string{lipgloss.NewStyle().Foreground(theme.Primary).Render(art)}

	if w.elapsed >= readyAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			theme.Body.Bold(true).Render("A kinder way to look at your thoughts."),
			"",
			theme.Hint.Render("press any key to start"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
