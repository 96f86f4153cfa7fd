package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the rubric evaluators talk to. Every
// concrete backend (Anthropic, OpenAI, Gemini, OpenRouter, mock) sits
// behind it, and the retry and logging decorators wrap it transparently.
type Provider interface {
	// Generate runs one completion. When req.Schema is set the provider
	// asks for native structured output and validates the reply against
	// the schema before returning it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single prompt. Rubric scoring is single-turn: one system
// prompt establishing the examiner role, one user message carrying the
// transcript, and a schema pinning the reply shape.
type Request struct {
	System   string
	Messages []Message

	// Schema, when non-nil, is the JSON Schema the reply must satisfy.
	Schema *Schema

	MaxTokens int

	// Temperature in [0,1]; zero means deterministic.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure a reply must take. Name is
// kebab-case ("clinical-decision-rubric") and doubles as the cache key for
// the compiled form.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is one completed generation.
type Response struct {
	// Content is the reply. Schema-validated JSON when the request carried
	// a schema, raw text otherwise.
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the call, which can differ
	// from the configured ID behind gateways.
	Model string

	// StopReason is normalized across providers: "end" or "max_tokens".
	StopReason string
}

// Usage is the token bill for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
