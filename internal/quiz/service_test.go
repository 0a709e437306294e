package quiz

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rmehra/retain/internal/llm"
)

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{
				"text": "Which layer does TCP live at?",
				"choices": ["Application", "Transport", "Network", "Link"],
				"answer": "Transport",
				"explanation": "TCP is a transport-layer protocol."
			},
			{
				"text": "How many steps in the TCP handshake?",
				"choices": ["1", "2", "3", "4"],
				"answer": "3",
				"explanation": "SYN, SYN-ACK, ACK."
			}
		]
	}`)
}

func awaitQuiz(t *testing.T, svc *Service) (*Quiz, error) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		q, err := svc.Consume()
		if q != nil || err != nil {
			return q, err
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for quiz")
	return nil, nil
}

func TestService_GeneratesQuiz(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validQuizJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{
		CourseTitle:         "Networking Fundamentals",
		VideoTitle:          "TCP Basics",
		VideoID:             "tcp-basics",
		CheckpointQuestions: []string{"What layer is TCP?"},
	})

	quiz, err := awaitQuiz(t, svc)
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if quiz.VideoID != "tcp-basics" || len(quiz.Questions) != 2 {
		t.Fatalf("quiz = %+v", quiz)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != QuizSchema {
		t.Error("request did not carry the quiz schema")
	}
	if !strings.Contains(req.Messages[0].Content, "What layer is TCP?") {
		t.Error("prompt missing checkpoint question context")
	}
}

func TestService_DropsMalformedQuestions(t *testing.T) {
	// Answer not among choices and a missing text: both dropped, the one
	// good question survives.
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"questions": [
			{"text": "Good?", "choices": ["yes", "no", "maybe", "never"], "answer": "yes", "explanation": "e"},
			{"text": "Bad answer", "choices": ["a", "b", "c", "d"], "answer": "z", "explanation": "e"},
			{"text": "", "choices": ["a", "b", "c", "d"], "answer": "a", "explanation": "e"}
		]
	}`)})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{VideoID: "v"})
	quiz, err := awaitQuiz(t, svc)
	if err != nil {
		t.Fatalf("Consume() error = %v", err)
	}
	if len(quiz.Questions) != 1 || quiz.Questions[0].Text != "Good?" {
		t.Errorf("questions = %+v", quiz.Questions)
	}
}

func TestService_AllMalformedFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions": []}`)})
	svc := NewService(mock, DefaultConfig())

	svc.Request(t.Context(), Input{VideoID: "v"})

	quiz, err := awaitQuiz(t, svc)
	if err == nil {
		t.Fatalf("expected an error, got quiz %+v", quiz)
	}
}

func TestGrade(t *testing.T) {
	q := Question{
		Text:    "How many steps in the TCP handshake?",
		Choices: []string{"1", "2", "3", "4"},
		Answer:  "3",
	}

	tests := []struct {
		answer string
		want   bool
	}{
		{"3", true},   // by text (and index 3 happens to be "3")
		{"2", false},  // "2" as text is wrong; as index it picks "2", also wrong
		{" 3 ", true}, // whitespace tolerated
		{"", false},
	}

	for _, tt := range tests {
		res := Grade(q, tt.answer)
		if res.Correct != tt.want {
			t.Errorf("Grade(%q).Correct = %v, want %v", tt.answer, res.Correct, tt.want)
		}
	}
}
