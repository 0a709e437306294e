package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rmehra/retain/internal/ui/theme"
)

// MarkerState is the visual state of a checkpoint marker on the timeline.
type MarkerState int

const (
	MarkerPending MarkerState = iota
	MarkerActive
	MarkerCompleted
	MarkerSkipped
)

// Marker is one checkpoint position on the timeline.
type Marker struct {
	Position float64 // seconds
	State    MarkerState
}

// Timeline renders a playback position bar with checkpoint markers
// overlaid at their timestamps.
type Timeline struct {
	Position float64
	Duration float64
	Markers  []Marker
	Width    int
}

// View renders the timeline with a m:ss / m:ss position readout.
func (tl Timeline) View() string {
	readout := fmt.Sprintf(" %s / %s", formatClock(tl.Position), formatClock(tl.Duration))

	barWidth := tl.Width - lipgloss.Width(readout)
	if barWidth < 8 {
		barWidth = 8
	}

	filled := 0
	if tl.Duration > 0 {
		filled = int(float64(barWidth) * tl.Position / tl.Duration)
	}
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}

	cells := make([]string, barWidth)
	for i := 0; i < barWidth; i++ {
		if i < filled {
			cells[i] = lipgloss.NewStyle().Foreground(theme.Secondary).Render("━")
		} else {
			cells[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("─")
		}
	}

	// Markers overwrite the bar cell at their position.
	for _, m := range tl.Markers {
		if tl.Duration <= 0 || m.Position < 0 {
			continue
		}
		idx := int(float64(barWidth) * m.Position / tl.Duration)
		if idx >= barWidth {
			idx = barWidth - 1
		}
		cells[idx] = markerGlyph(m.State)
	}

	return strings.Join(cells, "") +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(readout)
}

func markerGlyph(s MarkerState) string {
	switch s {
	case MarkerActive:
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("◆")
	case MarkerCompleted:
		return lipgloss.NewStyle().Foreground(theme.Success).Render("◆")
	case MarkerSkipped:
		return lipgloss.NewStyle().Foreground(theme.Error).Render("◇")
	default:
		return lipgloss.NewStyle().Foreground(theme.Text).Render("◇")
	}
}

// formatClock renders seconds as m:ss (or h:mm:ss past an hour).
func formatClock(secs float64) string {
	if secs < 0 {
		secs = 0
	}
	total := int(secs)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
