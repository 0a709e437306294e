package watch

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rmehra/retain/internal/playback"
	"github.com/rmehra/retain/internal/ui/components"
	"github.com/rmehra/retain/internal/ui/theme"
)

func (s *WatchScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\nError: " + s.errMsg)
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(s.course.Title))
	b.WriteString("\n\n")

	b.WriteString(s.renderTimeline(width))
	b.WriteString("\n\n")

	switch {
	case s.confirmQuit:
		b.WriteString(s.renderQuitConfirm(width))
	case s.ended:
		b.WriteString(s.renderEndPanel(width))
	case s.modalOpen:
		b.WriteString(s.renderCheckpointModal(width))
	default:
		b.WriteString(s.renderPlaybackStatus(width))
	}

	if s.chatOpen || len(s.exchanges) > 0 || s.tutorWaiting {
		b.WriteString("\n")
		b.WriteString(s.renderChat(width))
	}

	return b.String()
}

func (s *WatchScreen) renderTimeline(width int) string {
	st := s.coord.State()

	var markers []components.Marker
	for _, cp := range s.coord.Scheduler().Checkpoints() {
		m := components.Marker{Position: cp.At}
		switch s.coord.Scheduler().State(cp.ID) {
		case playback.StateFired:
			m.State = components.MarkerActive
		case playback.StateCompleted:
			m.State = components.MarkerCompleted
		case playback.StateSkipped:
			m.State = components.MarkerSkipped
		default:
			m.State = components.MarkerPending
		}
		markers = append(markers, m)
	}

	duration := s.video.Duration
	if d, err := s.pl.Duration(); err == nil && d > 0 {
		duration = d
	}

	tl := components.Timeline{
		Position: st.LastKnownTime,
		Duration: duration,
		Markers:  markers,
		Width:    width - 8,
	}
	return "    " + tl.View()
}

func (s *WatchScreen) renderPlaybackStatus(width int) string {
	status := "▶ Playing"
	if s.paused {
		status = "⏸ Paused"
	}
	if secs, ok := s.lastPersisted(); ok {
		status += fmt.Sprintf("  ·  saved @ %d:%02d", int(secs)/60, int(secs)%60)
	}
	return lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(status)
}

func (s *WatchScreen) renderQuitConfirm(width int) string {
	card := theme.Card.Render("Leave this lesson?\n\nYour position is saved — you can pick up where you left off.\n\n[Y] Leave    [N] Keep watching")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func (s *WatchScreen) renderEndPanel(width int) string {
	st := s.coord.State()
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
		Render("Lesson complete!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Checkpoints: %d answered, %d skipped\n\n",
		len(st.Completed), len(st.Skipped)))

	switch {
	case s.quizWaiting:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Generating quiz..."))
	case s.quizErr != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.quizErr))
		b.WriteString("\n[S] View summary")
	case s.deps.Quiz != nil:
		b.WriteString("[Enter] Take the quiz    [S] Skip to summary")
	default:
		b.WriteString("[S] View summary")
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(b.String()))
}

func (s *WatchScreen) renderCheckpointModal(width int) string {
	cp := s.activeCheckpoint

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render("Checkpoint"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(cp.Question))
	b.WriteString("\n\n")

	if cp.Kind == playback.KindMultipleChoice {
		for i, choice := range cp.Choices {
			prefix := "  "
			style := lipgloss.NewStyle().Foreground(theme.Text)
			if i == s.mcSelected {
				prefix = "▸ "
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			b.WriteString(style.Render(fmt.Sprintf("%s%d)  %s", prefix, i+1, choice)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}

	if s.answerWrong {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).
			Render("Not quite — try again, or Esc to skip."))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(b.String()))
}

func (s *WatchScreen) renderChat(width int) string {
	var b strings.Builder

	// Last few exchanges, newest at the bottom.
	start := 0
	if len(s.exchanges) > 3 {
		start = len(s.exchanges) - 3
	}
	for _, ex := range s.exchanges[start:] {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(ex.Question))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Tutor: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(ex.Reply))
		b.WriteString("\n")
	}

	if s.tutorWaiting {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("You: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(s.pendingQuestion))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
			Render("Tutor is thinking..."))
		b.WriteString("\n")
	}
	if s.tutorErr != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.tutorErr))
		b.WriteString("\n")
	}

	if s.chatOpen {
		b.WriteString(s.chatInput.View())
	}

	boxWidth := width - 8
	if boxWidth < 20 {
		boxWidth = 20
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Width(boxWidth).
		Render(b.String())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}
