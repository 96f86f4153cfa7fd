package eval

import (
	"time"

	"oscesim/internal/session"
)

// Facet names one scored dimension of student performance.
type Facet string

const (
	FacetInteraction  Facet = "interaction"
	FacetPhysicalExam Facet = "physical_exam"
	FacetClinical     Facet = "clinical_decision"
	FacetNotes        Facet = "notes"
	FacetWorkflow     Facet = "workflow"
)

// facetOrder is the fixed facet ordering used for report assembly and
// feedback synthesis.
var facetOrder = []Facet{
	FacetInteraction, FacetPhysicalExam, FacetClinical, FacetNotes, FacetWorkflow,
}

// facetScoreKeys lists the named sub-scores every facet must produce.
// The union across facets is the 22-key combined score map.
var facetScoreKeys = map[Facet][]string{
	FacetInteraction: {
		"communication_clarity_score",
		"empathy_score",
		"question_quality_score",
		"active_listening_score",
		"professionalism_score",
	},
	FacetPhysicalExam: {
		"exam_selection_score",
		"exam_thoroughness_score",
		"exam_sequencing_score",
		"technique_score",
	},
	FacetClinical: {
		"diagnostic_accuracy_score",
		"test_selection_score",
		"test_interpretation_score",
		"differential_reasoning_score",
		"decision_timing_score",
	},
	FacetNotes: {
		"documentation_completeness_score",
		"soap_structure_score",
		"documented_reasoning_score",
		"conciseness_score",
	},
	FacetWorkflow: {
		"efficiency_score",
		"prioritization_score",
		"time_management_score",
		"critical_action_timing_score",
	},
}

// overallKey returns the name of a facet's category score.
func overallKey(f Facet) string {
	switch f {
	case FacetInteraction:
		return "overall_interaction_score"
	case FacetPhysicalExam:
		return "overall_exam_score"
	case FacetClinical:
		return "overall_clinical_score"
	case FacetNotes:
		return "overall_notes_score"
	case FacetWorkflow:
		return "overall_workflow_score"
	}
	return "overall_score"
}

// facetListKeys lists the facet-specific list fields beyond strengths and
// areas_for_improvement.
var facetListKeys = map[Facet][]string{
	FacetPhysicalExam: {"missed_key_exams", "unnecessary_exams"},
	FacetClinical:     {"missed_critical_tests", "unnecessary_tests"},
}

// Result is the complete, normalized output of one rubric evaluator. Every
// field is always populated regardless of collaborator behavior, so
// downstream consumers never see a partial record.
type Result struct {
	Facet        Facet          `json:"facet"`
	Scores       map[string]int `json:"scores"`
	Overall      int            `json:"overall_score"`
	Strengths    []string       `json:"strengths"`
	Improvements []string       `json:"areas_for_improvement"`
	Feedback     string         `json:"feedback"`

	// Clinical decision only.
	DiagnosisCorrect    bool     `json:"diagnosis_correct,omitempty"`
	MissedCriticalTests []string `json:"missed_critical_tests,omitempty"`
	UnnecessaryTests    []string `json:"unnecessary_tests,omitempty"`

	// Physical exam only.
	MissedKeyExams   []string `json:"missed_key_exams,omitempty"`
	UnnecessaryExams []string `json:"unnecessary_exams,omitempty"`
}

// TimestampData carries the workflow evaluator's input slice.
type TimestampData struct {
	Timeline []session.ActivityEvent
	Metrics  *session.EfficiencyMetrics
}

// Present reports whether there is enough timing data to score workflow.
func (t TimestampData) Present() bool {
	return len(t.Timeline) > 0 && t.Metrics != nil
}

// Input is everything the aggregator evaluates on diagnosis submission.
type Input struct {
	Diagnosis          string
	OrderedTests       []string
	OrderedImaging     []string
	Interactions       []session.Interaction
	PhysicalExams      []session.PhysicalExam
	VerifiedProcedures []session.VerifiedProcedure
	Notes              map[string]string
	Timestamps         TimestampData
}

// Report is the immutable evaluation produced once per diagnosis
// submission. A new submission creates a new report.
type Report struct {
	ID               string         `json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	Correct          bool           `json:"correct"`
	StudentDiagnosis string         `json:"student_diagnosis"`
	ActualDiagnosis  string         `json:"actual_diagnosis"`
	Scores           map[string]int `json:"scores"`
	CategoryScores   map[Facet]int  `json:"category_scores"`

	Strengths    map[Facet][]string `json:"strengths"`
	Improvements map[Facet][]string `json:"areas_for_improvement"`

	MissedCriticalTests []string `json:"missed_critical_tests"`
	UnnecessaryTests    []string `json:"unnecessary_tests"`
	MissedKeyExams      []string `json:"missed_key_exams"`
	UnnecessaryExams    []string `json:"unnecessary_exams"`

	CategoryFeedback map[Facet]string `json:"category_feedback"`
	Feedback         string           `json:"feedback"`

	Timeline []session.ActivityEvent    `json:"timeline,omitempty"`
	Metrics  *session.EfficiencyMetrics `json:"efficiency_metrics,omitempty"`

	// Error is set only on case-data error reports.
	Error string `json:"error,omitempty"`
}
