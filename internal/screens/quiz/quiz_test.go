package quiz

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	quizsvc "github.com/rmehra/retain/internal/quiz"
	"github.com/rmehra/retain/internal/router"
	"github.com/rmehra/retain/internal/screen"
	"github.com/rmehra/retain/internal/screens/summary"
	"github.com/rmehra/retain/internal/store"
)

// mockEventRepo implements store.EventRepo, recording quiz events.
type mockEventRepo struct {
	quizEvents []store.QuizEventData
}

func (m *mockEventRepo) AppendSessionEvent(_ context.Context, _ store.SessionEventData) error {
	return nil
}
func (m *mockEventRepo) AppendCheckpointEvent(_ context.Context, _ store.CheckpointEventData) error {
	return nil
}
func (m *mockEventRepo) AppendQuizEvent(_ context.Context, data store.QuizEventData) error {
	m.quizEvents = append(m.quizEvents, data)
	return nil
}
func (m *mockEventRepo) AppendTutorEvent(_ context.Context, _ store.TutorEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}
func (m *mockEventRepo) QuerySessionSummaries(_ context.Context, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QuizAccuracy(_ context.Context, _ string) (float64, int, error) {
	return 0, 0, nil
}

func testQuiz() *quizsvc.Quiz {
	return &quizsvc.Quiz{
		VideoID: "vid-1",
		Questions: []quizsvc.Question{
			{Text: "Q1", Choices: []string{"a", "b", "c"}, Answer: "b"},
			{Text: "Q2", Choices: []string{"x", "y", "z"}, Answer: "x", Explanation: "because x"},
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestQuizScreen_AnswerFlow(t *testing.T) {
	events := &mockEventRepo{}
	s := New(testQuiz(), events, "sess-1", summary.Data{VideoTitle: "vid"})

	// Move to choice "b" and submit.
	s.Update(keyPress('j'))
	s.Update(enter())

	if len(events.quizEvents) != 1 {
		t.Fatalf("quiz events = %d, want 1", len(events.quizEvents))
	}
	e := events.quizEvents[0]
	if !e.Correct || e.LearnerAnswer != "b" || e.VideoID != "vid-1" {
		t.Errorf("quiz event = %+v", e)
	}

	// Any key advances to question 2.
	s.Update(keyPress(' '))
	if s.idx != 1 {
		t.Fatalf("idx = %d, want 1", s.idx)
	}

	// Answer question 2 wrong ("z" instead of "x").
	s.Update(keyPress('j'))
	s.Update(keyPress('j'))
	s.Update(enter())
	if events.quizEvents[1].Correct {
		t.Error("expected wrong answer recorded for z")
	}

	// Advancing past the last question pushes the summary with results.
	var scr screen.Screen = s
	_, cmd := scr.Update(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected navigation command at quiz end")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*summary.SummaryScreen); !ok {
		t.Fatalf("expected summary screen, got %T", msg.Screen)
	}
	if len(s.results) != 2 || !s.results[0].Correct || s.results[1].Correct {
		t.Errorf("results = %+v", s.results)
	}
}

func TestQuizScreen_EscFinishesEarly(t *testing.T) {
	events := &mockEventRepo{}
	s := New(testQuiz(), events, "sess-1", summary.Data{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected navigation command on esc")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
	if len(events.quizEvents) != 0 {
		t.Errorf("expected no quiz events, got %d", len(events.quizEvents))
	}
}

func TestQuizScreen_View(t *testing.T) {
	s := New(testQuiz(), &mockEventRepo{}, "sess-1", summary.Data{})
	if s.View(100, 30) == "" {
		t.Error("expected non-empty view")
	}
	s.Update(enter())
	if s.View(100, 30) == "" {
		t.Error("expected non-empty feedback view")
	}
}
