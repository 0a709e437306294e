package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rmehra/retain/internal/quiz"
	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screen"
	"github.com/rmehra/retain/internal/ui/components"
	"github.com/rmehra/retain/internal/ui/layout"
	"github.com/rmehra/retain/internal/ui/theme"
)

// Data is everything the summary renders about a finished watch session.
type Data struct {
	VideoTitle           string
	SessionDuration      time.Duration
	FinalPosition        float64
	VideoDuration        float64
	CheckpointsCompleted int
	CheckpointsSkipped   int
	CheckpointsTotal     int
	ReachedEnd           bool
	TutorExchanges       int

	// QuizResults is empty when the learner skipped the quiz.
	QuizResults []quiz.Result
}

// SummaryScreen displays the watch session summary.
type SummaryScreen struct {
	data Data
	back components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(data Data) *SummaryScreen {
	return &SummaryScreen{
		data: data,
		back: components.NewButton("Back to library", true, func() tea.Cmd {
			// Unwind past the watch (and quiz) screens beneath us.
			return func() tea.Msg { return router.PopToRootMsg{} }
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Library"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	}
	var cmd tea.Cmd
	s.back, cmd = s.back.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	d := s.data
	var b strings.Builder

	headline := "Session complete!"
	if !d.ReachedEnd {
		headline = "Session saved"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Bold(true).
		Render(headline))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(d.VideoTitle))
	b.WriteString("\n\n")

	mins := int(d.SessionDuration.Minutes())
	secs := int(d.SessionDuration.Seconds()) % 60
	watched := fmt.Sprintf("Watched for %d:%02d", mins, secs)
	if !d.ReachedEnd && d.VideoDuration > 0 {
		watched += fmt.Sprintf("  ·  stopped at %s of %s",
			formatPosition(d.FinalPosition), formatPosition(d.VideoDuration))
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(watched))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Checkpoints: %d answered    %d skipped    %d total",
		d.CheckpointsCompleted, d.CheckpointsSkipped, d.CheckpointsTotal)
	if d.TutorExchanges > 0 {
		statsLine += fmt.Sprintf("    Tutor questions: %d", d.TutorExchanges)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	if len(d.QuizResults) > 0 {
		b.WriteString(s.renderQuizResults(width))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.back.View()))
	b.WriteString("\n")

	return b.String()
}

func (s *SummaryScreen) renderQuizResults(width int) string {
	var b strings.Builder

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Quiz")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	correct := 0
	for _, r := range s.data.QuizResults {
		if r.Correct {
			correct++
		}
	}
	score := fmt.Sprintf("%d/%d correct", correct, len(s.data.QuizResults))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(score)))
	b.WriteString("\n\n")

	for _, r := range s.data.QuizResults {
		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !r.Correct {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
		line := fmt.Sprintf("%s %s", mark,
			lipgloss.NewStyle().Foreground(theme.Text).Render(truncateLine(r.Question.Text, width-12)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

func formatPosition(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func truncateLine(s string, max int) string {
	if max < 8 {
		max = 8
	}
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
