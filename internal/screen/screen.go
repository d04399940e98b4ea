// Package screen defines the screen contract and the navigation stack the
// app model drives.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/unholyblue/bloom/internal/ui/layout"
)

// Screen is one full-window view between the header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area only.
	View(width, height int) string

	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put a short status in the header.
type StatusProvider interface {
	Status() string
}
