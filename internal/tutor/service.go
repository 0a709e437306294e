package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/rmehra/retain/internal/llm"
)

// Service generates tutor replies asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Exchange
	err     error
	ready   bool
}

// NewService creates a tutor service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Ask starts async reply generation. Only one request is in-flight at a
// time — a new question replaces a pending one.
func (s *Service) Ask(ctx context.Context, input Input) {
	go func() {
		ex, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = ex
		s.err = err
		s.ready = true
	}()
}

// ConsumeReply returns the pending exchange, or the generation error.
// Returns (nil, nil) while generation is still in flight.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeReply() (*Exchange, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, nil
	}
	ex, err := s.pending, s.err
	s.pending = nil
	s.ready = false
	s.err = nil
	return ex, err
}

func (s *Service) generate(ctx context.Context, input Input) (*Exchange, error) {
	ctx = llm.WithPurpose(ctx, "tutor")

	req := llm.Request{
		System: tutorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTutorUserMessage(input)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("tutor reply: %w", err)
	}

	// With no schema the provider wraps the raw text as a JSON string.
	var reply string
	if err := json.Unmarshal(resp.Content, &reply); err != nil {
		reply = string(resp.Content)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return nil, fmt.Errorf("tutor reply: empty response")
	}

	return &Exchange{
		Question:     input.Question,
		Reply:        reply,
		PositionSecs: input.PositionSecs,
	}, nil
}
