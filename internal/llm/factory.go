package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/rmehra/retain/internal/store"
)

// NewProvider builds the configured provider and wraps it with the
// standard middleware chain: caller → retry → logging → vendor client.
// The mock provider is returned bare so tests see every call.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	switch cfg.Provider {
	case "mock":
		return NewMockProvider(), nil
	case "anthropic", "openai", "gemini", "openrouter":
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}

	base, err := newBaseProvider(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}
	p := WithRetry(WithLogging(base, eventRepo), cfg.Retry)
	return &timeoutProvider{inner: p, timeout: cfg.Timeout}, nil
}

// timeoutProvider bounds a whole Generate call, retries included.
type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

func (p *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.inner.Generate(ctx, req)
}

func (p *timeoutProvider) ModelID() string { return p.inner.ModelID() }

func newBaseProvider(ctx context.Context, cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		return NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		return NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		return NewOpenRouterProvider(cfg.OpenRouter)
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}

// NewProviderFromEnv builds a Provider from environment configuration.
// RETAIN_* variables take priority; when they do not name a usable
// provider, the vendors' standard API key variables are probed.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, eventRepo)
}
