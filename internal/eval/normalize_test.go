package eval

import (
	"encoding/json"
	"testing"
)

func TestZeroResultAllScoresZero(t *testing.T) {
	for _, f := range facetOrder {
		r := zeroResult(f)
		if r.Overall != 0 {
			t.Errorf("%s: overall = %d, want 0", f, r.Overall)
		}
		if len(r.Scores) != len(facetScoreKeys[f]) {
			t.Errorf("%s: scores = %d keys, want %d", f, len(r.Scores), len(facetScoreKeys[f]))
		}
		for k, v := range r.Scores {
			if v != 0 {
				t.Errorf("%s: %s = %d, want 0", f, k, v)
			}
		}
		if len(r.Strengths) != 0 {
			t.Errorf("%s: strengths should be empty", f)
		}
		if len(r.Improvements) != 1 {
			t.Errorf("%s: improvements = %d, want exactly 1 canned line", f, len(r.Improvements))
		}
		if r.Feedback == "" || r.Feedback == technicalErrorFeedback {
			t.Errorf("%s: feedback = %q", f, r.Feedback)
		}
	}
}

func TestErrorResultAllScoresDefault(t *testing.T) {
	for _, f := range facetOrder {
		r := errorResult(f)
		if r.Overall != defaultScore {
			t.Errorf("%s: overall = %d, want %d", f, r.Overall, defaultScore)
		}
		for k, v := range r.Scores {
			if v != defaultScore {
				t.Errorf("%s: %s = %d, want %d", f, k, v, defaultScore)
			}
		}
		if r.Feedback != technicalErrorFeedback {
			t.Errorf("%s: feedback = %q", f, r.Feedback)
		}
	}
}

// The zero record and the error record must stay distinguishable: a student
// who submitted nothing scores 0, a broken evaluation scores 5.
func TestZeroAndErrorRecordsDiffer(t *testing.T) {
	z := zeroResult(FacetInteraction)
	e := errorResult(FacetInteraction)
	if z.Overall == e.Overall {
		t.Error("zero and error records should have different overall scores")
	}
	if z.Feedback == e.Feedback {
		t.Error("zero and error records should have different feedback")
	}
}

func TestResultFromRawCompletesMissingFields(t *testing.T) {
	raw := json.RawMessage(`{
		"communication_clarity_score": 8,
		"overall_interaction_score": 7,
		"strengths": ["Introduced themselves", "Open questions"]
	}`)

	r, ok := resultFromRaw(FacetInteraction, raw)
	if !ok {
		t.Fatal("expected parse success")
	}
	if r.Scores["communication_clarity_score"] != 8 {
		t.Errorf("present score = %d, want 8", r.Scores["communication_clarity_score"])
	}
	if r.Scores["empathy_score"] != defaultScore {
		t.Errorf("missing score = %d, want %d", r.Scores["empathy_score"], defaultScore)
	}
	if r.Overall != 7 {
		t.Errorf("overall = %d, want 7", r.Overall)
	}
	if len(r.Strengths) != 2 {
		t.Errorf("strengths = %v", r.Strengths)
	}
	if r.Improvements == nil || len(r.Improvements) != 0 {
		t.Errorf("missing list should become empty, got %v", r.Improvements)
	}
	if r.Feedback != defaultFeedback {
		t.Errorf("missing feedback = %q, want %q", r.Feedback, defaultFeedback)
	}
}

func TestResultFromRawClampsScores(t *testing.T) {
	raw := json.RawMessage(`{
		"empathy_score": 15,
		"question_quality_score": -3,
		"active_listening_score": 6.6
	}`)

	r, ok := resultFromRaw(FacetInteraction, raw)
	if !ok {
		t.Fatal("expected parse success")
	}
	if r.Scores["empathy_score"] != 10 {
		t.Errorf("over-range = %d, want 10", r.Scores["empathy_score"])
	}
	if r.Scores["question_quality_score"] != 0 {
		t.Errorf("under-range = %d, want 0", r.Scores["question_quality_score"])
	}
	if r.Scores["active_listening_score"] != 7 {
		t.Errorf("fractional = %d, want rounded 7", r.Scores["active_listening_score"])
	}
}

func TestResultFromRawRejectsBadJSON(t *testing.T) {
	if _, ok := resultFromRaw(FacetNotes, json.RawMessage(`not json`)); ok {
		t.Error("expected failure on malformed JSON")
	}
	if _, ok := resultFromRaw(FacetNotes, json.RawMessage(`[1,2,3]`)); ok {
		t.Error("expected failure on non-object JSON")
	}
}

func TestResultFromRawFacetExtras(t *testing.T) {
	raw := json.RawMessage(`{
		"diagnosis_correct": true,
		"missed_critical_tests": ["Troponin"],
		"unnecessary_tests": []
	}`)

	r, ok := resultFromRaw(FacetClinical, raw)
	if !ok {
		t.Fatal("expected parse success")
	}
	if !r.DiagnosisCorrect {
		t.Error("diagnosis_correct not carried through")
	}
	if len(r.MissedCriticalTests) != 1 || r.MissedCriticalTests[0] != "Troponin" {
		t.Errorf("missed critical tests = %v", r.MissedCriticalTests)
	}
	if r.UnnecessaryTests == nil {
		t.Error("unnecessary tests should be non-nil")
	}
}

func TestResultFromRawListsDropNonStrings(t *testing.T) {
	raw := json.RawMessage(`{"strengths": ["good", 42, "", "rapport"]}`)

	r, ok := resultFromRaw(FacetInteraction, raw)
	if !ok {
		t.Fatal("expected parse success")
	}
	if len(r.Strengths) != 2 {
		t.Errorf("strengths = %v, want the two non-empty strings", r.Strengths)
	}
}
