package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/unholyblue/bloom/internal/ui/theme"
)

// ConfidenceBar draws a detection confidence with the reframe threshold
// marked. Bars at or past the threshold use the gate colour.
type ConfidenceBar struct {
	Label      string
	Confidence float64
	Threshold  float64
	Width      int
}

func NewConfidenceBar(label string, confidence, threshold float64, width int) ConfidenceBar {
	return ConfidenceBar{
		Label:      label,
		Confidence: confidence,
		Threshold:  threshold,
		Width:      width,
	}
}

func (p ConfidenceBar) View() string {
	var result string
	if p.Label != "" {
		result += theme.Body.Render(p.Label) + "  "
	}

	const percentWidth = 6 // "  100%"
	barWidth := p.Width - lipgloss.Width(result) - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Confidence)
	filled = max(0, min(filled, barWidth))

	fill := theme.BarFilled
	if p.Confidence >= p.Threshold {
		fill = theme.BarGate
	}

	result += fill.Render(strings.Repeat(" ", filled)) +
		theme.BarEmpty.Render(strings.Repeat(" ", barWidth-filled))
	result += theme.Hint.Render(fmt.Sprintf("  %3d%%", int(p.Confidence*100+0.5)))
	return result
}
