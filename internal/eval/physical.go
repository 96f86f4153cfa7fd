package eval

import (
	"context"

	"oscesim/internal/cases"
	"oscesim/internal/llm"
	"oscesim/internal/session"
)

// PhysicalExamEvaluator scores exams performed and verified procedures.
type PhysicalExamEvaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewPhysicalExamEvaluator creates the physical-exam rubric evaluator.
func NewPhysicalExamEvaluator(provider llm.Provider, cfg Config) *PhysicalExamEvaluator {
	return &PhysicalExamEvaluator{provider: provider, cfg: cfg}
}

// Evaluate scores the examinations. With neither exams nor verified
// procedures recorded, the zero-score record is returned and the scoring
// collaborator is not invoked.
func (e *PhysicalExamEvaluator) Evaluate(ctx context.Context, c *cases.Case,
	exams []session.PhysicalExam, procs []session.VerifiedProcedure) Result {

	if len(exams) == 0 && len(procs) == 0 {
		return zeroResult(FacetPhysicalExam)
	}

	userMsg, err := buildPhysicalExamMessage(c, exams, procs)
	if err != nil {
		return errorResult(FacetPhysicalExam)
	}

	return scoreRubric(ctx, e.provider, e.cfg, FacetPhysicalExam,
		physicalExamSchema, physicalExamSystemPrompt, userMsg)
}
