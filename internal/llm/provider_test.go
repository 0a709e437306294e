package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_DrainsQueueInOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{"reply":"first"}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
		MockResponse{Content: json.RawMessage(`{"reply":"second"}`)},
	)

	ask := func(content string) *Response {
		t.Helper()
		resp, err := mock.Generate(context.Background(), Request{
			Messages: []Message{{Role: RoleUser, Content: content}},
		})
		if err != nil {
			t.Fatalf("Generate(%q): %v", content, err)
		}
		return resp
	}

	first := ask("one")
	if string(first.Content) != `{"reply":"first"}` {
		t.Errorf("first response = %s", first.Content)
	}
	if first.Usage.InputTokens != 10 || first.Usage.TotalTokens != 15 {
		t.Errorf("usage not carried through: %+v", first.Usage)
	}
	if first.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", first.StopReason)
	}

	if second := ask("two"); string(second.Content) != `{"reply":"second"}` {
		t.Errorf("second response = %s", second.Content)
	}
}

func TestMockProvider_EmptyQueueReturnsError(t *testing.T) {
	mock := NewMockProvider()

	_, err := mock.Generate(context.Background(), Request{})

	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("empty queue: got %T (%v), want ErrProviderUnavailable", err, err)
	}
}

func TestMockProvider_RecordsCalls(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})

	_, _ = mock.Generate(context.Background(), Request{
		System:   "You are a patient tutor for a video lesson.",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("CallCount() = %d, want 1", mock.CallCount())
	}
	if got := mock.Calls[0].System; got != "You are a patient tutor for a video lesson." {
		t.Errorf("recorded system prompt = %q", got)
	}
}

func TestMockProvider_ReturnsConfiguredError(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{RetryAfter: 0}})

	_, err := mock.Generate(context.Background(), Request{})

	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("got %T (%v), want ErrRateLimit", err, err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	if got := NewMockProvider().ModelID(); got != "mock" {
		t.Fatalf("ModelID() = %q, want mock", got)
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("bare context purpose = %q, want unknown", p)
	}
	if p := PurposeFrom(WithPurpose(ctx, "tutor")); p != "tutor" {
		t.Fatalf("purpose = %q, want tutor", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := []Config{
		{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
		{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}},
		{Provider: "mock"},
	}
	for _, cfg := range valid {
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate(%s) = %v, want nil", cfg.Provider, err)
		}
	}

	invalid := []Config{
		{Provider: "anthropic"},
		{Provider: "openai"},
		{Provider: "unknown"},
	}
	for _, cfg := range invalid {
		if err := cfg.Validate(); err == nil {
			t.Errorf("Validate(%s) = nil, want error", cfg.Provider)
		}
	}
}
