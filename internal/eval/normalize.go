package eval

import (
	"encoding/json"
	"math"
)

// Default values applied by the field-completion rule.
const (
	defaultScore    = 5
	defaultFeedback = "No evaluation available."
)

// Canned text for the degenerate-input policy, per facet.
var emptyInputText = map[Facet]struct {
	improvement string
	feedback    string
}{
	FacetInteraction: {
		improvement: "Interview the patient to gather a history before concluding the case.",
		feedback:    "No patient interactions were recorded, so communication could not be assessed.",
	},
	FacetPhysicalExam: {
		improvement: "Perform a physical examination relevant to the presenting complaint.",
		feedback:    "No physical examinations were recorded, so examination skills could not be assessed.",
	},
	FacetClinical: {
		improvement: "Order appropriate tests and submit a diagnosis to be evaluated.",
		feedback:    "No clinical decisions were recorded, so decision-making could not be assessed.",
	},
	FacetNotes: {
		improvement: "Document your findings in SOAP format.",
		feedback:    "No clinical notes were recorded, so documentation could not be assessed.",
	},
	FacetWorkflow: {
		improvement: "Complete the case so that workflow timing can be measured.",
		feedback:    "No timing data was recorded, so workflow efficiency could not be assessed.",
	},
}

const technicalErrorFeedback = "Evaluation could not be completed due to a technical error. Default scores were assigned."

// zeroResult is the deterministic record for an empty input slice: all
// sub-scores 0, no strengths, one canned improvement and feedback line.
// The scoring collaborator is never invoked for these.
func zeroResult(f Facet) Result {
	r := Result{
		Facet:        f,
		Scores:       make(map[string]int, len(facetScoreKeys[f])),
		Overall:      0,
		Strengths:    []string{},
		Improvements: []string{emptyInputText[f].improvement},
		Feedback:     emptyInputText[f].feedback,
	}
	for _, k := range facetScoreKeys[f] {
		r.Scores[k] = 0
	}
	completeLists(&r)
	return r
}

// errorResult is the deterministic record for a collaborator failure: all
// sub-scores defaulted to 5 and a canned technical-error feedback line.
// Distinct from zeroResult so "nothing submitted" and "evaluation broke"
// stay distinguishable downstream.
func errorResult(f Facet) Result {
	r := Result{
		Facet:        f,
		Scores:       make(map[string]int, len(facetScoreKeys[f])),
		Overall:      defaultScore,
		Strengths:    []string{},
		Improvements: []string{},
		Feedback:     technicalErrorFeedback,
	}
	for _, k := range facetScoreKeys[f] {
		r.Scores[k] = defaultScore
	}
	completeLists(&r)
	return r
}

// resultFromRaw normalizes whatever the scoring collaborator returned into a
// complete Result. Missing *_score fields become 5, missing lists become
// empty, missing text becomes the default feedback string; scores are
// clamped to 0–10.
func resultFromRaw(f Facet, raw json.RawMessage) (Result, bool) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Result{}, false
	}

	r := Result{
		Facet:        f,
		Scores:       make(map[string]int, len(facetScoreKeys[f])),
		Overall:      intField(fields, overallKey(f), defaultScore),
		Strengths:    listField(fields, "strengths"),
		Improvements: listField(fields, "areas_for_improvement"),
		Feedback:     textField(fields, "feedback"),
	}
	for _, k := range facetScoreKeys[f] {
		r.Scores[k] = intField(fields, k, defaultScore)
	}

	switch f {
	case FacetClinical:
		r.DiagnosisCorrect = boolField(fields, "diagnosis_correct")
		r.MissedCriticalTests = listField(fields, "missed_critical_tests")
		r.UnnecessaryTests = listField(fields, "unnecessary_tests")
	case FacetPhysicalExam:
		r.MissedKeyExams = listField(fields, "missed_key_exams")
		r.UnnecessaryExams = listField(fields, "unnecessary_exams")
	}
	completeLists(&r)
	return r, true
}

// completeLists guarantees the facet-specific list fields are non-nil.
func completeLists(r *Result) {
	switch r.Facet {
	case FacetClinical:
		if r.MissedCriticalTests == nil {
			r.MissedCriticalTests = []string{}
		}
		if r.UnnecessaryTests == nil {
			r.UnnecessaryTests = []string{}
		}
	case FacetPhysicalExam:
		if r.MissedKeyExams == nil {
			r.MissedKeyExams = []string{}
		}
		if r.UnnecessaryExams == nil {
			r.UnnecessaryExams = []string{}
		}
	}
}

func intField(fields map[string]any, key string, def int) int {
	v, ok := fields[key]
	if !ok {
		return def
	}
	f, ok := v.(float64)
	if !ok {
		return def
	}
	n := int(math.Round(f))
	if n < 0 {
		n = 0
	}
	if n > 10 {
		n = 10
	}
	return n
}

func listField(fields map[string]any, key string) []string {
	out := []string{}
	v, ok := fields[key]
	if !ok {
		return out
	}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func textField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok && s != "" {
		return s
	}
	return defaultFeedback
}

func boolField(fields map[string]any, key string) bool {
	b, _ := fields[key].(bool)
	return b
}
