package theme

import (
	"charm.land/lipgloss/v2"
)

// Palette: muted greens and warm neutrals.
var (
	Primary   = lipgloss.Color("#34D399") // Sage
	Secondary = lipgloss.Color("#60A5FA") // Sky
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F5F5F4") // Stone 100
	TextDim   = lipgloss.Color("#A8A29E") // Stone 400
	BgCard    = lipgloss.Color("#1C1917") // Stone 900
	Border    = lipgloss.Color("#44403C") // Stone 700
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Chat transcript
var (
	UserLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	BloomLabel = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Reframe wraps a generated reframe so it stands apart from plain
	// acknowledgements.
	Reframe = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)

	Tag = lipgloss.NewStyle().
		Foreground(Accent)
)

// Selection
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Confidence bar
var (
	BarFilled = lipgloss.NewStyle().
			Background(Secondary)

	BarGate = lipgloss.NewStyle().
		Background(Primary)

	BarEmpty = lipgloss.NewStyle().
			Background(Border)
)
