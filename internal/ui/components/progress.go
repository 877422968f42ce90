package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/skyguardian/uavacademy/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View(st theme.Styles) string {
	var result string

	if p.Label != "" {
		result += st.Body.Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // "  100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = min(max(filled, 0), barWidth)
	empty := barWidth - filled

	result += st.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		st.ProgressEmpty.Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += st.Neutral.Render(fmt.Sprintf("  %d%%", int(p.Percent*100+0.5)))
	}

	return result
}
