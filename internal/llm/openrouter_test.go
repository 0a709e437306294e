package llm

import "testing"

func TestOpenRouter_RequiresAPIKey(t *testing.T) {
	if _, err := NewOpenRouterProvider(OpenRouterConfig{Model: "google/gemini-2.0-flash-exp"}); err == nil {
		t.Fatal("expected error for empty API key")
	}
}

func TestOpenRouter_ModelPathsBypassAliases(t *testing.T) {
	// OpenRouter model paths are vendor-prefixed and must reach the wire
	// untouched, even when a path segment collides with an OpenAI alias.
	models := []string{
		"google/gemini-2.0-flash-exp",
		"anthropic/claude-3-haiku",
		"meta-llama/llama-3-8b",
	}

	for _, model := range models {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey: "sk-or-test",
			Model:  model,
		})
		if err != nil {
			t.Fatalf("NewOpenRouterProvider(%q): %v", model, err)
		}
		if got := p.ModelID(); got != model {
			t.Errorf("ModelID() = %q, want %q", got, model)
		}
	}
}

func TestOpenRouter_BaseURLOverride(t *testing.T) {
	for _, baseURL := range []string{"", "https://custom.openrouter.example/v1"} {
		p, err := NewOpenRouterProvider(OpenRouterConfig{
			APIKey:  "sk-or-test",
			Model:   "google/gemini-2.0-flash-exp",
			BaseURL: baseURL,
		})
		if err != nil {
			t.Fatalf("base URL %q: %v", baseURL, err)
		}
		if p == nil {
			t.Fatalf("base URL %q: nil provider", baseURL)
		}
	}
}
