package eval

import (
	"strings"
	"testing"
)

func resultsWithOverall(scores map[Facet]int) map[Facet]Result {
	out := make(map[Facet]Result, len(facetOrder))
	for _, f := range facetOrder {
		out[f] = Result{Facet: f, Overall: scores[f]}
	}
	return out
}

func emptyReport() *Report {
	return &Report{
		MissedCriticalTests: []string{},
		MissedKeyExams:      []string{},
	}
}

func TestLeadSentenceBands(t *testing.T) {
	tests := []struct {
		overall int
		want    string
	}{
		{10, "excellent"},
		{8, "excellent"},
		{7, "adequate"},
		{6, "adequate"},
		{5, "needs improvement"},
		{1, "needs improvement"},
	}
	for _, tt := range tests {
		got := leadSentence(FacetClinical, tt.overall)
		if !strings.Contains(got, tt.want) {
			t.Errorf("leadSentence(%d) = %q, want to contain %q", tt.overall, got, tt.want)
		}
	}

	if got := leadSentence(FacetInteraction, 0); got != "The patient was not interviewed." {
		t.Errorf("zero-score interaction sentence = %q", got)
	}
}

func TestSynthesizeFeedbackFacetOrder(t *testing.T) {
	results := resultsWithOverall(map[Facet]int{
		FacetInteraction:  9,
		FacetPhysicalExam: 7,
		FacetClinical:     3,
		FacetNotes:        0,
		FacetWorkflow:     6,
	})

	fb := synthesizeFeedback(results, emptyReport())

	// One sentence per facet, in fixed order.
	iComm := strings.Index(fb, "Patient communication")
	iExam := strings.Index(fb, "Physical examination")
	iClin := strings.Index(fb, "Clinical decision-making")
	iNotes := strings.Index(fb, "No notes were documented")
	iWork := strings.Index(fb, "Workflow")
	if !(iComm >= 0 && iComm < iExam && iExam < iClin && iClin < iNotes && iNotes < iWork) {
		t.Errorf("facet sentences out of order in %q", fb)
	}
	if strings.Contains(fb, "Key observations") {
		t.Error("no observations expected with empty lists")
	}
}

func TestSynthesizeFeedbackObservationsCapped(t *testing.T) {
	results := resultsWithOverall(map[Facet]int{FacetInteraction: 7})
	r := results[FacetInteraction]
	r.Strengths = []string{"a", "b", "c", "d", "e"}
	results[FacetInteraction] = r

	fb := synthesizeFeedback(results, emptyReport())

	if !strings.Contains(fb, "Key observations:") {
		t.Fatalf("expected observations section in %q", fb)
	}
	count := strings.Count(fb, "Patient communication strength: ")
	if count != maxObservationsPerList {
		t.Errorf("strength observations = %d, want %d", count, maxObservationsPerList)
	}
}

func TestSynthesizeFeedbackIncludesMissedItems(t *testing.T) {
	results := resultsWithOverall(map[Facet]int{FacetClinical: 4})
	rep := &Report{
		MissedCriticalTests: []string{"Troponin"},
		MissedKeyExams:      []string{"respiratory"},
	}

	fb := synthesizeFeedback(results, rep)

	if !strings.Contains(fb, "Missed critical test: Troponin") {
		t.Errorf("missing critical-test observation in %q", fb)
	}
	if !strings.Contains(fb, "Missed key exam: respiratory") {
		t.Errorf("missing key-exam observation in %q", fb)
	}
}
