package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// openaiStub serves a fixed chat completions response and returns a
// provider pointed at it.
func openaiStub(t *testing.T, status int, body map[string]any) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
		}
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return &OpenAIProvider{
		client: openai.NewClientWithConfig(config),
		model:  "gpt-4o-mini",
	}
}

func completionBody(content, finishReason string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": finishReason,
			},
		},
		"usage": map[string]any{
			"prompt_tokens":     40,
			"completion_tokens": 25,
			"total_tokens":      65,
		},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	p := openaiStub(t, http.StatusOK,
		completionBody(`{"question":"Which call emits the signal?","answer":"emit"}`, "stop"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a patient tutor for a video lesson.",
		Messages:  []Message{{Role: RoleUser, Content: "Generate a quiz question."}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := resp.Usage; got.InputTokens != 40 || got.OutputTokens != 25 || got.TotalTokens != 65 {
		t.Errorf("usage = %+v, want 40/25/65", got)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestOpenAIProvider_ErrorMapping(t *testing.T) {
	apiError := func(kind, msg string) map[string]any {
		return map[string]any{
			"error": map[string]any{"type": kind, "message": msg},
		}
	}

	t.Run("429 becomes rate limit", func(t *testing.T) {
		p := openaiStub(t, http.StatusTooManyRequests,
			apiError("tokens", "Rate limit exceeded"))

		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "hello"}},
			MaxTokens: 100,
		})

		var rl *ErrRateLimit
		if !errors.As(err, &rl) {
			t.Fatalf("got %T (%v), want ErrRateLimit", err, err)
		}
	})

	t.Run("500 becomes provider unavailable", func(t *testing.T) {
		p := openaiStub(t, http.StatusInternalServerError,
			apiError("server_error", "Internal server error"))

		_, err := p.Generate(context.Background(), Request{
			Messages:  []Message{{Role: RoleUser, Content: "hello"}},
			MaxTokens: 100,
		})

		var unavail *ErrProviderUnavailable
		if !errors.As(err, &unavail) {
			t.Fatalf("got %T (%v), want ErrProviderUnavailable", err, err)
		}
	})
}

func TestOpenAIProvider_ModelID(t *testing.T) {
	p := &OpenAIProvider{model: "gpt-4o-mini"}
	if got := p.ModelID(); got != "gpt-4o-mini" {
		t.Fatalf("ModelID() = %q", got)
	}
}

func TestOpenAIProvider_BaseURLOverride(t *testing.T) {
	p, err := NewOpenAIProvider(OpenAIConfig{
		APIKey:  "test-key",
		Model:   "gpt-4o",
		BaseURL: "https://openrouter.ai/api/v1",
	})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	if got := p.ModelID(); got != "gpt-4o" {
		t.Fatalf("ModelID() = %q, want gpt-4o", got)
	}
}
