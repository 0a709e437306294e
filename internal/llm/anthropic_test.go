package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicStub serves a fixed Messages API response and returns a
// provider pointed at it.
func anthropicStub(t *testing.T, status int, body map[string]any) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
		}
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-sonnet-4-20250514"}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	p := anthropicStub(t, http.StatusOK, map[string]any{
		"id":   "msg_test",
		"type": "message",
		"role": "assistant",
		"content": []map[string]any{
			{"type": "text", "text": `{"reply":"A signal is emitted when the property changes."}`},
		},
		"model":       "claude-sonnet-4-20250514",
		"stop_reason": "end_turn",
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	})

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a patient tutor for a video lesson.",
		Messages:  []Message{{Role: RoleUser, Content: "When is the signal emitted?"}},
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := resp.Usage; got.InputTokens != 50 || got.OutputTokens != 30 {
		t.Errorf("usage = %+v, want 50 in / 30 out", got)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
}

func TestAnthropicProvider_ErrorMapping(t *testing.T) {
	apiError := func(kind, msg string) map[string]any {
		return map[string]any{
			"type":  "error",
			"error": map[string]any{"type": kind, "message": msg},
		}
	}

	t.Run("429 becomes rate limit", func(t *testing.T) {
		p := anthropicStub(t, http.StatusTooManyRequests,
			apiError("rate_limit_error", "Rate limit exceeded"))

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
		p := anthropicStub(t, http.StatusInternalServerError,
			apiError("api_error", "Internal server error"))

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

func TestAnthropicProvider_ModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if got := p.ModelID(); got != "claude-sonnet-4-20250514" {
		t.Fatalf("ModelID() = %q", got)
	}
}

func TestAliasModel(t *testing.T) {
	cases := map[string]string{
		"claude-sonnet":            "claude-sonnet-4-20250514",
		"claude-haiku":             "claude-haiku-4-5-20251001",
		"claude-sonnet-4-20250514": "claude-sonnet-4-20250514", // literal IDs pass through
	}
	for in, want := range cases {
		if got := aliasModel(anthropicAliases, in); got != want {
			t.Errorf("aliasModel(%q) = %q, want %q", in, got, want)
		}
	}
}
