// Package quiz is the post-video quiz screen: one multiple-choice
// question at a time, graded locally, with each answer journaled.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	quizsvc "github.com/rmehra/retain/internal/quiz"
	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screen"
	"github.com/rmehra/retain/internal/screens/summary"
	"github.com/rmehra/retain/internal/store"
	"github.com/rmehra/retain/internal/ui/components"
	"github.com/rmehra/retain/internal/ui/layout"
	"github.com/rmehra/retain/internal/ui/theme"
)

// QuizScreen runs a generated quiz and hands its results to the summary.
type QuizScreen struct {
	quiz      *quizsvc.Quiz
	events    store.EventRepo
	sessionID string
	data      summary.Data

	idx     int
	mc      components.MultiChoice
	results []quizsvc.Result
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a quiz screen for an already-generated quiz.
func New(q *quizsvc.Quiz, events store.EventRepo, sessionID string, data summary.Data) *QuizScreen {
	s := &QuizScreen{
		quiz:      q,
		events:    events,
		sessionID: sessionID,
		data:      data,
	}
	s.mc = multiChoiceFor(q.Questions[0])
	return s
}

func multiChoiceFor(q quizsvc.Question) components.MultiChoice {
	correct := 0
	for i, c := range q.Choices {
		if c == q.Answer {
			correct = i
		}
	}
	return components.NewMultiChoice(q.Text, q.Choices, correct)
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.mc.Submitted {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Finish early"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	// Feedback is showing: any key advances.
	if s.mc.Submitted {
		s.idx++
		if s.idx >= len(s.quiz.Questions) {
			return s, s.finish()
		}
		s.mc = multiChoiceFor(s.quiz.Questions[s.idx])
		return s, nil
	}

	if kmsg.String() == "esc" {
		return s, s.finish()
	}

	var cmd tea.Cmd
	s.mc, cmd = s.mc.Update(msg)
	if s.mc.Submitted {
		s.recordAnswer()
	}
	return s, cmd
}

// recordAnswer grades the just-submitted choice and journals it.
func (s *QuizScreen) recordAnswer() {
	q := s.quiz.Questions[s.idx]
	learnerAnswer := q.Choices[s.mc.ChosenIndex]
	result := quizsvc.Grade(q, learnerAnswer)
	s.results = append(s.results, result)

	_ = s.events.AppendQuizEvent(context.Background(), store.QuizEventData{
		SessionID:     s.sessionID,
		VideoID:       s.quiz.VideoID,
		QuestionText:  q.Text,
		CorrectAnswer: q.Answer,
		LearnerAnswer: learnerAnswer,
		Correct:       result.Correct,
	})
}

func (s *QuizScreen) finish() tea.Cmd {
	data := s.data
	data.QuizResults = s.results
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: summary.New(data)}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.idx >= len(s.quiz.Questions) {
		return ""
	}
	q := s.quiz.Questions[s.idx]

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", s.idx+1, len(s.quiz.Questions))))
	b.WriteString("\n\n")
	b.WriteString(s.mc.View())

	if s.mc.Submitted && q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(q.Explanation))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(b.String()))
}
