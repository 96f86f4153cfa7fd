package eval

import (
	"context"

	"oscesim/internal/llm"
)

// Config holds generation settings shared by the rubric evaluators.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for rubric scoring.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// scoreRubric sends one rubric prompt to the scoring collaborator and
// normalizes the response. Any failure — transport error, unparseable
// content — degrades to the mid-score technical-error record; it is never
// propagated to the caller.
func scoreRubric(ctx context.Context, p llm.Provider, cfg Config, f Facet,
	schema *llm.Schema, system, userMsg string) Result {

	if p == nil {
		return errorResult(f)
	}

	ctx = llm.WithPurpose(ctx, "rubric-"+string(f))

	resp, err := p.Generate(ctx, llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      schema,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return errorResult(f)
	}

	r, ok := resultFromRaw(f, resp.Content)
	if !ok {
		return errorResult(f)
	}
	return r
}
