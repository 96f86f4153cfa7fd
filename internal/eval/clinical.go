package eval

import (
	"context"
	"strings"

	"oscesim/internal/cases"
	"oscesim/internal/llm"
	"oscesim/internal/session"
)

// ClinicalDecisionEvaluator scores diagnostic decision-making: the submitted
// diagnosis plus the tests, imaging and exams that led to it.
type ClinicalDecisionEvaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewClinicalDecisionEvaluator creates the clinical-decision rubric
// evaluator.
func NewClinicalDecisionEvaluator(provider llm.Provider, cfg Config) *ClinicalDecisionEvaluator {
	return &ClinicalDecisionEvaluator{provider: provider, cfg: cfg}
}

// Evaluate scores the clinical decisions. An empty diagnosis returns the
// zero-score record without calling the scoring collaborator. When the
// collaborator marks the diagnosis wrong, a string-similarity fallback
// (substring containment, else Jaccard over word sets) overrides it above
// the similarity threshold.
func (e *ClinicalDecisionEvaluator) Evaluate(ctx context.Context, c *cases.Case,
	diagnosis string, tests, imaging []string, exams []session.PhysicalExam) Result {

	if strings.TrimSpace(diagnosis) == "" {
		return zeroResult(FacetClinical)
	}

	userMsg, err := buildClinicalMessage(c, diagnosis, tests, imaging, exams)
	if err != nil {
		return errorResult(FacetClinical)
	}

	r := scoreRubric(ctx, e.provider, e.cfg, FacetClinical,
		clinicalSchema, clinicalSystemPrompt, userMsg)

	if !r.DiagnosisCorrect {
		if diagnosisSimilarity(diagnosis, cases.ResolveDiagnosis(c)) > similarityThreshold {
			r.DiagnosisCorrect = true
			r.Feedback = "Note: the submitted diagnosis was accepted as equivalent to the expected diagnosis. " + r.Feedback
		}
	}

	return r
}
