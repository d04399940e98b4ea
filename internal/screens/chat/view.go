package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/unholyblue/bloom/internal/router"
	"github.com/unholyblue/bloom/internal/ui/components"
	"github.com/unholyblue/bloom/internal/ui/theme"
)

func (s *ChatScreen) View(width, height int) string {
	inner := max(width-4, 10)

	var footer []string
	if s.last != nil {
		footer = append(footer, "  "+components.NewConfidenceBar(
			"Pattern confidence", s.last.Result.Confidence, router.ReframeThreshold, inner).View())
	}
	footer = append(footer, "  "+s.input.View())
	bottom := strings.Join(footer, "\n")

	transcript := s.renderTranscript(inner, max(height-lipgloss.Height(bottom)-1, 0))
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Render(transcript + "\n" + bottom)
}

// renderTranscript renders entries newest-last and keeps only the lines
// that fit.
func (s *ChatScreen) renderTranscript(width, height int) string {
	var lines []string
	for _, e := range s.entries {
		lines = append(lines, strings.Split(renderEntry(e, width), "\n")...)
		lines = append(lines, "")
	}
	if s.pending != 0 {
		lines = append(lines, theme.Hint.Render("  bloom is thinking…"))
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	for len(lines) < height {
		lines = append([]string{""}, lines...)
	}
	return strings.Join(lines, "\n")
}

func renderEntry(e entry, width int) string {
	body := lipgloss.NewStyle().Width(width - 2).PaddingLeft(2)

	if e.from == fromUser {
		return theme.UserLabel.Render("  you") + "\n" + body.Foreground(theme.Text).Render(e.text)
	}

	out := theme.BloomLabel.Render("  bloom")
	if len(e.tags) > 0 {
		out += theme.Tag.Render("  · " + strings.Join(e.tags, ", "))
	}
	out += "\n"
	if e.reframe {
		out += theme.Reframe.Width(width - 2).MarginLeft(2).Render(e.text)
	} else {
		out += body.Foreground(theme.Text).Render(e.text)
	}
	return out
}
