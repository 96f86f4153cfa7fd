package eval

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"oscesim/internal/cases"
	"oscesim/internal/llm"
	"oscesim/internal/logger"
)

// Aggregator combines the five rubric evaluators into one report. It is a
// two-state machine per submission: idle until Evaluate is called, then the
// returned report is terminal — a new submission produces a fresh report,
// never a mutation of a prior one.
type Aggregator struct {
	interaction *InteractionEvaluator
	physical    *PhysicalExamEvaluator
	clinical    *ClinicalDecisionEvaluator
	notes       *NotesEvaluator
	workflow    *WorkflowEvaluator
	log         *logger.Logger
}

// NewAggregator wires the five evaluators against one provider.
func NewAggregator(provider llm.Provider, cfg Config, log *logger.Logger) *Aggregator {
	if log == nil {
		log = logger.Nop()
	}
	return &Aggregator{
		interaction: NewInteractionEvaluator(provider, cfg),
		physical:    NewPhysicalExamEvaluator(provider, cfg),
		clinical:    NewClinicalDecisionEvaluator(provider, cfg),
		notes:       NewNotesEvaluator(provider, cfg),
		workflow:    NewWorkflowEvaluator(provider, cfg),
		log:         log,
	}
}

const caseErrorFeedback = "The evaluation could not be completed because the case data was missing or malformed. Please restart the case and try again."

// Evaluate runs all five rubric evaluators against the submission and
// assembles the combined report. The evaluators run concurrently and the
// assembly waits for all of them — a join, not a pipeline. Given identical
// inputs and identical evaluator outputs, the result is deterministic
// except for the audit timestamp and report id.
func (a *Aggregator) Evaluate(ctx context.Context, kase *cases.Case, in Input) *Report {
	if !kase.Valid() {
		a.log.Warn("evaluation aborted", "reason", "invalid case data")
		return errorReport()
	}

	actual := cases.ResolveDiagnosis(kase)

	// Absent collections are treated as empty, not as errors; the
	// evaluators' degenerate-input guards take over from there.
	var (
		interactionRes Result
		physicalRes    Result
		clinicalRes    Result
		notesRes       Result
		workflowRes    Result
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		interactionRes = a.interaction.Evaluate(gctx, kase, in.Interactions)
		return nil
	})
	g.Go(func() error {
		physicalRes = a.physical.Evaluate(gctx, kase, in.PhysicalExams, in.VerifiedProcedures)
		return nil
	})
	g.Go(func() error {
		clinicalRes = a.clinical.Evaluate(gctx, kase, in.Diagnosis, in.OrderedTests, in.OrderedImaging, in.PhysicalExams)
		return nil
	})
	g.Go(func() error {
		notesRes = a.notes.Evaluate(gctx, kase, in.Notes)
		return nil
	})
	g.Go(func() error {
		workflowRes = a.workflow.Evaluate(gctx, kase, in.Timestamps)
		return nil
	})
	// Evaluators never return errors; they degrade to default records.
	_ = g.Wait()

	results := map[Facet]Result{
		FacetInteraction:  interactionRes,
		FacetPhysicalExam: physicalRes,
		FacetClinical:     clinicalRes,
		FacetNotes:        notesRes,
		FacetWorkflow:     workflowRes,
	}

	// Second, independent correctness fallback on top of the one inside
	// the clinical evaluator.
	correct := clinicalRes.DiagnosisCorrect
	if !correct && diagnosesMatch(in.Diagnosis, actual) {
		correct = true
	}

	report := &Report{
		ID:                  uuid.NewString(),
		CreatedAt:           time.Now(),
		Correct:             correct,
		StudentDiagnosis:    in.Diagnosis,
		ActualDiagnosis:     actual,
		Scores:              make(map[string]int, 22),
		CategoryScores:      make(map[Facet]int, len(facetOrder)),
		Strengths:           make(map[Facet][]string, len(facetOrder)),
		Improvements:        make(map[Facet][]string, len(facetOrder)),
		CategoryFeedback:    make(map[Facet]string, len(facetOrder)),
		MissedCriticalTests: clinicalRes.MissedCriticalTests,
		UnnecessaryTests:    clinicalRes.UnnecessaryTests,
		MissedKeyExams:      physicalRes.MissedKeyExams,
		UnnecessaryExams:    physicalRes.UnnecessaryExams,
		Timeline:            in.Timestamps.Timeline,
		Metrics:             in.Timestamps.Metrics,
	}

	for _, f := range facetOrder {
		r := results[f]
		for k, v := range r.Scores {
			report.Scores[k] = v
		}
		report.CategoryScores[f] = r.Overall
		report.Strengths[f] = r.Strengths
		report.Improvements[f] = r.Improvements
		report.CategoryFeedback[f] = r.Feedback
	}

	report.Feedback = synthesizeFeedback(results, report)

	a.log.Info("evaluation complete",
		"report_id", report.ID,
		"correct", report.Correct,
		"clinical_score", report.CategoryScores[FacetClinical])

	return report
}

// errorReport is the short-circuit result for missing or malformed case
// data. Fatal for this call; nothing is retried.
func errorReport() *Report {
	return &Report{
		ID:                  uuid.NewString(),
		CreatedAt:           time.Now(),
		Correct:             false,
		ActualDiagnosis:     "Unknown - Case data error",
		Feedback:            caseErrorFeedback,
		Error:               "case data missing or malformed",
		Scores:              map[string]int{},
		CategoryScores:      map[Facet]int{},
		Strengths:           map[Facet][]string{},
		Improvements:        map[Facet][]string{},
		CategoryFeedback:    map[Facet]string{},
		MissedCriticalTests: []string{},
		UnnecessaryTests:    []string{},
		MissedKeyExams:      []string{},
		UnnecessaryExams:    []string{},
	}
}
