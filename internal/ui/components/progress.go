package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/michoacana/antojo/internal/ui/theme"
)

// StepBar shows how far through a fixed number of steps the user is.
type StepBar struct {
	Current int // 1-based
	Total   int
	Width   int
}

// NewStepBar creates a step bar.
func NewStepBar(current, total, width int) StepBar {
	return StepBar{Current: current, Total: total, Width: width}
}

// View renders one segment per step, filled up to Current.
func (p StepBar) View() string {
	if p.Total <= 0 {
		return ""
	}
	seg := (p.Width - (p.Total - 1)) / p.Total
	if seg < 2 {
		seg = 2
	}

	filled := lipgloss.NewStyle().Background(theme.Secondary)
	empty := lipgloss.NewStyle().Background(theme.Border)

	parts := make([]string, p.Total)
	for i := range parts {
		style := empty
		if i < p.Current {
			style = filled
		}
		parts[i] = style.Render(strings.Repeat(" ", seg))
	}
	return strings.Join(parts, " ")
}
