package tutor

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rmehra/retain/internal/llm"
)

func awaitReply(t *testing.T, svc *Service) (*Exchange, error) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		ex, err := svc.ConsumeReply()
		if ex != nil || err != nil {
			return ex, err
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for tutor reply")
	return nil, nil
}

func TestService_GeneratesReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"A TCP handshake has three steps: SYN, SYN-ACK, ACK."`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Ask(t.Context(), Input{
		CourseTitle:  "Networking Fundamentals",
		VideoTitle:   "TCP Basics",
		PositionSecs: 135,
		Question:     "What are the handshake steps?",
	})

	ex, err := awaitReply(t, svc)
	if err != nil {
		t.Fatalf("ConsumeReply() error = %v", err)
	}
	if !strings.Contains(ex.Reply, "SYN") {
		t.Errorf("reply = %q", ex.Reply)
	}
	if ex.Question != "What are the handshake steps?" || ex.PositionSecs != 135 {
		t.Errorf("exchange = %+v", ex)
	}

	// Consumed: the slot is cleared.
	if ex, err := svc.ConsumeReply(); ex != nil || err != nil {
		t.Error("reply consumed twice")
	}
}

func TestService_PromptCarriesLessonContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"Think about which step acknowledges the server."`),
	})
	svc := NewService(mock, DefaultConfig())

	svc.Ask(t.Context(), Input{
		CourseTitle:        "Networking Fundamentals",
		VideoTitle:         "TCP Basics",
		PositionSecs:       90,
		CheckpointQuestion: "Handshake steps?",
		History: []Exchange{
			{Question: "What is a port?", Reply: "A numbered endpoint."},
		},
		Question: "I'm stuck on this checkpoint.",
	})

	if _, err := awaitReply(t, svc); err != nil {
		t.Fatalf("ConsumeReply() error = %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"TCP Basics", "1:30", "Handshake steps?", "What is a port?"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != nil {
		t.Error("tutor replies are free text, no schema expected")
	}
}

func TestService_ErrorSurfacesOnConsume(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue → provider unavailable
	svc := NewService(mock, DefaultConfig())

	svc.Ask(t.Context(), Input{Question: "anyone there?"})

	ex, err := awaitReply(t, svc)
	if err == nil {
		t.Fatalf("expected an error, got exchange %+v", ex)
	}
	if ex != nil {
		t.Errorf("failed generation returned exchange %+v", ex)
	}
}
