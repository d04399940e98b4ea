package library

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/unholyblue/bloom/internal/distortion"
	"github.com/unholyblue/bloom/internal/screen"
	"github.com/unholyblue/bloom/internal/ui/layout"
	"github.com/unholyblue/bloom/internal/ui/theme"
)

// DetailScreen shows one catalog entry.
type DetailScreen struct {
	def distortion.Definition
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

func newDetail(def distortion.Definition) *DetailScreen {
	return &DetailScreen{def: def}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.def.Name }

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "q" {
		return d, screen.Pop
	}
	return d, nil
}

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) View(width, height int) string {
	contentWidth := min(width-8, 70)
	para := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		PaddingLeft(2)
	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true)

	var b strings.Builder
	b.WriteString(theme.Title.Render("  " + d.def.Name))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("  " + d.def.Type))
	b.WriteString("\n\n")
	b.WriteString(para.Render(d.def.Description))
	b.WriteString("\n\n")
	b.WriteString(para.Render(d.def.Explanation))
	b.WriteString("\n\n")

	b.WriteString(heading.Render("  Questions to ask yourself"))
	b.WriteString("\n")
	for _, q := range d.def.ReframeQuestions {
		b.WriteString(para.Render("• " + q))
		b.WriteString("\n")
	}

	if len(d.def.Examples) > 0 {
		b.WriteString("\n")
		b.WriteString(heading.Render("  Sounds like"))
		b.WriteString("\n")
		for _, ex := range d.def.Examples {
			b.WriteString(theme.Hint.PaddingLeft(2).Render("“" + ex + "”"))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}
