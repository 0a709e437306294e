// Package history renders past watch sessions from the event journal.
package history

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screen"
	"github.com/rmehra/retain/internal/store"
	"github.com/rmehra/retain/internal/ui/layout"
	"github.com/rmehra/retain/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionSummaryRecord
	Err      error
}

// HistoryScreen lists recent sessions, newest first.
type HistoryScreen struct {
	eventRepo store.EventRepo
	sessions  []store.SessionSummaryRecord
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{eventRepo: eventRepo}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		sessions, err := s.eventRepo.QuerySessionSummaries(context.Background(), store.QueryOpts{Limit: 50})
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

func (s *HistoryScreen) Title() string { return "History" }

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.sessions = msg.Sessions
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return notice(width, theme.Error, false, fmt.Sprintf("Error: %s", s.errMsg))
	case !s.loaded:
		return notice(width, theme.TextDim, false, "Loading history...")
	case len(s.sessions) == 0:
		return notice(width, theme.TextDim, true, "No sessions yet. Pick a lesson from the library!")
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, sess := range s.sessions {
		line := sessionLine(sess, i == s.selected)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			rowStyle(sess, i == s.selected).Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// sessionLine formats one row: date, watch time, video, checkpoint tally.
func sessionLine(sess store.SessionSummaryRecord, selected bool) string {
	prefix := "  "
	if selected {
		prefix = "> "
	}

	duration := fmt.Sprintf("%d:%02d", sess.DurationSecs/60, sess.DurationSecs%60)

	checkpoints := fmt.Sprintf("%d answered", sess.CheckpointsCompleted)
	if sess.CheckpointsSkipped > 0 {
		checkpoints += fmt.Sprintf(", %d skipped", sess.CheckpointsSkipped)
	}

	suffix := ""
	if sess.ReachedEnd {
		suffix = "  finished"
	}

	return fmt.Sprintf("%s%s  %s  %s  %s%s",
		prefix, sess.Timestamp.Format("Jan 02, 2006"), duration, sess.VideoID, checkpoints, suffix)
}

// rowStyle colors finished sessions green and highlights the cursor row.
func rowStyle(sess store.SessionSummaryRecord, selected bool) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(theme.Text)
	switch {
	case sess.ReachedEnd:
		style = style.Foreground(theme.Success)
	case selected:
		style = style.Foreground(theme.Primary)
	}
	if selected {
		style = style.Bold(true)
	}
	return style
}

func notice(width int, fg color.Color, italic bool, text string) string {
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(fg).Italic(italic).
		Render("\n\n  " + text)
}
