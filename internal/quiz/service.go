package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rmehra/retain/internal/llm"
	"github.com/rmehra/retain/internal/playback"
)

// Service generates quizzes asynchronously and grades answers.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Quiz
	err     error
	ready   bool
}

// NewService creates a quiz service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Request starts async quiz generation. Only one quiz is in-flight at a
// time — new requests replace pending ones.
func (s *Service) Request(ctx context.Context, input Input) {
	go func() {
		quiz, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = quiz
		s.err = err
		s.ready = true
	}()
}

// Consume returns the pending quiz, or the generation error.
// Returns (nil, nil) while generation is still in flight.
// After consumption, the pending slot is cleared.
func (s *Service) Consume() (*Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, nil
	}
	quiz, err := s.pending, s.err
	s.pending = nil
	s.ready = false
	s.err = nil
	return quiz, err
}

// Grade checks a learner's answer against a quiz question, accepting the
// choice index or text like a checkpoint would.
func Grade(q Question, learnerAnswer string) Result {
	cp := playback.Checkpoint{
		Kind:    playback.KindMultipleChoice,
		Choices: q.Choices,
		Answer:  q.Answer,
	}
	return Result{
		Question:      q,
		LearnerAnswer: learnerAnswer,
		Correct:       playback.CheckAnswer(learnerAnswer, cp),
	}
}

type quizOutput struct {
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	Text        string   `json:"text"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

func (s *Service) generate(ctx context.Context, input Input) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz")

	if input.NumQuestions <= 0 {
		input.NumQuestions = s.cfg.NumQuestions
	}

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildQuizUserMessage(input)},
		},
		Schema:      QuizSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("quiz generation: %w", err)
	}

	var out quizOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse quiz response: %w", err)
	}

	quiz := &Quiz{VideoID: input.VideoID}
	for _, q := range out.Questions {
		if q.Text == "" || len(q.Choices) < 2 || !containsChoice(q.Choices, q.Answer) {
			continue // drop malformed questions rather than failing the quiz
		}
		quiz.Questions = append(quiz.Questions, Question{
			Text:        q.Text,
			Choices:     q.Choices,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}
	if len(quiz.Questions) == 0 {
		return nil, fmt.Errorf("quiz generation: no usable questions")
	}
	return quiz, nil
}

func containsChoice(choices []string, answer string) bool {
	for _, c := range choices {
		if c == answer {
			return true
		}
	}
	return false
}
