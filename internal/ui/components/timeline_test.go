package components

import (
	"strings"
	"testing"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{605, "10:05"},
		{3661, "1:01:01"},
		{-5, "0:00"},
	}
	for _, tt := range tests {
		if got := formatClock(tt.secs); got != tt.want {
			t.Errorf("formatClock(%v) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestTimeline_View(t *testing.T) {
	tl := Timeline{
		Position: 30,
		Duration: 60,
		Width:    60,
		Markers: []Marker{
			{Position: 10, State: MarkerCompleted},
			{Position: 45, State: MarkerPending},
		},
	}
	view := tl.View()
	if view == "" {
		t.Fatal("expected non-empty timeline")
	}
	if !strings.Contains(view, "0:30 / 1:00") {
		t.Errorf("expected position readout in %q", view)
	}
	if !strings.Contains(view, "◆") || !strings.Contains(view, "◇") {
		t.Error("expected both marker glyphs on the bar")
	}
}

func TestTimeline_ZeroDuration(t *testing.T) {
	tl := Timeline{Position: 0, Duration: 0, Width: 40}
	if tl.View() == "" {
		t.Error("expected timeline to render before duration is known")
	}
}
