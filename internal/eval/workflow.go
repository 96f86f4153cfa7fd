package eval

import (
	"context"

	"oscesim/internal/cases"
	"oscesim/internal/llm"
)

// WorkflowEvaluator scores timing and efficiency from the activity timeline
// and derived metrics, weighted by the case's urgency classification.
type WorkflowEvaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewWorkflowEvaluator creates the workflow rubric evaluator.
func NewWorkflowEvaluator(provider llm.Provider, cfg Config) *WorkflowEvaluator {
	return &WorkflowEvaluator{provider: provider, cfg: cfg}
}

// Evaluate scores workflow timing. Missing timeline or metrics returns the
// zero-score record without calling the scoring collaborator.
func (e *WorkflowEvaluator) Evaluate(ctx context.Context, c *cases.Case, data TimestampData) Result {
	if !data.Present() {
		return zeroResult(FacetWorkflow)
	}

	userMsg, err := buildWorkflowMessage(c, data)
	if err != nil {
		return errorResult(FacetWorkflow)
	}

	return scoreRubric(ctx, e.provider, e.cfg, FacetWorkflow,
		workflowSchema, workflowSystemPrompt, userMsg)
}
