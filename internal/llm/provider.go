package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the tutor and quiz services talk
// to. Implementations wrap one vendor SDK each; decorators add retry
// and event logging.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema
	// the response Content is JSON validated against it; otherwise
	// Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a provider-neutral prompt.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Tutor chat sends the full
	// exchange; quiz generation sends a single user message.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mode and the response is validated against it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure a structured request
// expects back.
type Schema struct {
	// Name is kebab-case, e.g. "quiz-questions". Doubles as the tool or
	// schema name on providers that want one.
	Name string

	// Description guides the model; sent with the schema.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is a provider-neutral completion result.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token spend of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
