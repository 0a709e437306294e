package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/rmehra/retain/internal/quiz"
	"github.com/rmehra/retain/internal/router"
)

func testData() Data {
	return Data{
		VideoTitle:           "Signals and Slots",
		SessionDuration:      12 * time.Minute,
		FinalPosition:        420,
		VideoDuration:        600,
		CheckpointsCompleted: 3,
		CheckpointsSkipped:   1,
		CheckpointsTotal:     4,
		ReachedEnd:           true,
		TutorExchanges:       2,
		QuizResults: []quiz.Result{
			{Question: quiz.Question{Text: "Q1"}, LearnerAnswer: "a", Correct: true},
			{Question: quiz.Question{Text: "Q2"}, LearnerAnswer: "b", Correct: false},
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testData())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testData())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Session complete!") {
		t.Error("expected completion headline for a finished video")
	}
	if !strings.Contains(view, "1/2 correct") {
		t.Error("expected quiz score line")
	}
}

func TestSummaryScreen_PartialSession(t *testing.T) {
	d := testData()
	d.ReachedEnd = false
	d.QuizResults = nil
	view := New(d).View(80, 24)
	if !strings.Contains(view, "Session saved") {
		t.Error("expected saved headline for an early exit")
	}
	if !strings.Contains(view, "7:00") {
		t.Error("expected stopped-at position in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testData())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testData())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopToRootMsg); !ok {
		t.Errorf("expected PopToRootMsg, got %T", cmd())
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testData())
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}
