package eval

import (
	"context"

	"oscesim/internal/cases"
	"oscesim/internal/llm"
	"oscesim/internal/session"
)

// InteractionEvaluator scores the student's communication with the virtual
// patient.
type InteractionEvaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewInteractionEvaluator creates the interaction rubric evaluator.
func NewInteractionEvaluator(provider llm.Provider, cfg Config) *InteractionEvaluator {
	return &InteractionEvaluator{provider: provider, cfg: cfg}
}

// Evaluate scores the interview transcript. An empty transcript returns the
// zero-score record without calling the scoring collaborator.
func (e *InteractionEvaluator) Evaluate(ctx context.Context, c *cases.Case, interactions []session.Interaction) Result {
	if len(interactions) == 0 {
		return zeroResult(FacetInteraction)
	}

	userMsg, err := buildInteractionMessage(c, interactions)
	if err != nil {
		return errorResult(FacetInteraction)
	}

	return scoreRubric(ctx, e.provider, e.cfg, FacetInteraction,
		interactionSchema, interactionSystemPrompt, userMsg)
}
