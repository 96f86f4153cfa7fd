package eval

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"oscesim/internal/cases"
	"oscesim/internal/session"
)

func fullInput() Input {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	ttd := 5 * time.Minute
	return Input{
		Diagnosis:      "Myocardial infarction",
		OrderedTests:   []string{"ECG", "Troponin"},
		OrderedImaging: []string{"Chest X-ray"},
		Interactions:   sampleInteractions(),
		PhysicalExams: []session.PhysicalExam{
			{System: "cardiovascular", Findings: "regular rhythm", Timestamp: now},
		},
		Notes: map[string]string{"assessment": "likely MI"},
		Timestamps: TimestampData{
			Timeline: []session.ActivityEvent{
				{Timestamp: now, Type: session.ActivitySessionStart, Description: "start"},
				{Timestamp: now.Add(ttd), Type: session.ActivityDiagnosisSubmission, Description: "dx"},
			},
			Metrics: &session.EfficiencyMetrics{
				SessionDuration: ttd,
				TimeToDiagnosis: &ttd,
			},
		},
	}
}

func TestAggregatorProducesAllScoreKeys(t *testing.T) {
	p := &routedProvider{responses: allRubricResponses(8)}
	agg := NewAggregator(p, DefaultConfig(), nil)

	rep := agg.Evaluate(context.Background(), evalCase(), fullInput())

	if len(rep.Scores) != 22 {
		t.Errorf("combined score keys = %d, want 22", len(rep.Scores))
	}
	for _, f := range facetOrder {
		for _, k := range facetScoreKeys[f] {
			if _, ok := rep.Scores[k]; !ok {
				t.Errorf("missing score key %s", k)
			}
		}
		if _, ok := rep.CategoryScores[f]; !ok {
			t.Errorf("missing category score for %s", f)
		}
		if rep.CategoryFeedback[f] == "" {
			t.Errorf("missing category feedback for %s", f)
		}
	}
	if p.callCount() != 5 {
		t.Errorf("provider calls = %d, want 5", p.callCount())
	}
	if !rep.Correct {
		t.Error("expected correct diagnosis")
	}
	if rep.Feedback == "" {
		t.Error("expected synthesized feedback")
	}
	if rep.ID == "" || rep.CreatedAt.IsZero() {
		t.Error("report should carry id and timestamp")
	}
}

func TestAggregatorScoreKeysCompleteDespiteFailures(t *testing.T) {
	// Provider fails every call: all facets degrade to mid-score records,
	// but the combined map still carries all 22 keys.
	p := &routedProvider{responses: map[string]json.RawMessage{}}
	agg := NewAggregator(p, DefaultConfig(), nil)

	rep := agg.Evaluate(context.Background(), evalCase(), fullInput())

	if len(rep.Scores) != 22 {
		t.Errorf("combined score keys = %d, want 22", len(rep.Scores))
	}
	for k, v := range rep.Scores {
		if v != defaultScore {
			t.Errorf("%s = %d, want %d", k, v, defaultScore)
		}
	}
}

func TestAggregatorEmptySubmission(t *testing.T) {
	p := &routedProvider{responses: allRubricResponses(8)}
	agg := NewAggregator(p, DefaultConfig(), nil)

	rep := agg.Evaluate(context.Background(), evalCase(), Input{})

	if p.callCount() != 0 {
		t.Errorf("provider calls = %d, want 0 for an entirely empty submission", p.callCount())
	}
	for f, score := range rep.CategoryScores {
		if score != 0 {
			t.Errorf("%s category = %d, want 0", f, score)
		}
	}
	if rep.Correct {
		t.Error("empty submission cannot be correct")
	}
	if len(rep.Scores) != 22 {
		t.Errorf("combined score keys = %d, want 22 even for empty input", len(rep.Scores))
	}
}

func TestAggregatorInvalidCase(t *testing.T) {
	p := &routedProvider{responses: allRubricResponses(8)}
	agg := NewAggregator(p, DefaultConfig(), nil)

	rep := agg.Evaluate(context.Background(), &cases.Case{}, fullInput())

	if rep.Error == "" {
		t.Error("expected error marker on the report")
	}
	if rep.ActualDiagnosis != "Unknown - Case data error" {
		t.Errorf("actual diagnosis = %q", rep.ActualDiagnosis)
	}
	if rep.Correct {
		t.Error("error report cannot be correct")
	}
	if p.callCount() != 0 {
		t.Errorf("provider calls = %d, want 0", p.callCount())
	}
	if rep.Scores == nil || rep.CategoryScores == nil || rep.Strengths == nil {
		t.Error("error report maps must be non-nil")
	}
}

func TestAggregatorSecondCorrectnessFallback(t *testing.T) {
	// The clinical scorer marks the diagnosis wrong; the string fallbacks
	// still rescue a case-insensitive match end to end.
	responses := allRubricResponses(7)
	responses["clinical-decision-rubric"] = rubricResponse(FacetClinical, 7, map[string]any{
		"diagnosis_correct": false,
	})
	p := &routedProvider{responses: responses}
	agg := NewAggregator(p, DefaultConfig(), nil)

	in := fullInput()
	in.Diagnosis = "MYOCARDIAL INFARCTION"
	rep := agg.Evaluate(context.Background(), evalCase(), in)

	if !rep.Correct {
		t.Error("aggregator fallback should accept a case-insensitive match")
	}
}

func TestAggregatorResolvesDiagnosisChain(t *testing.T) {
	p := &routedProvider{responses: allRubricResponses(7)}
	agg := NewAggregator(p, DefaultConfig(), nil)

	kase := &cases.Case{
		ID:                "case-x",
		ExpectedDiagnosis: "Pneumonia",
	}
	in := fullInput()
	in.Diagnosis = "Pneumonia"
	rep := agg.Evaluate(context.Background(), kase, in)

	if rep.ActualDiagnosis != "Pneumonia" {
		t.Errorf("actual diagnosis = %q, want resolved Pneumonia", rep.ActualDiagnosis)
	}
}

func TestAggregatorCarriesFacetLists(t *testing.T) {
	responses := allRubricResponses(7)
	responses["clinical-decision-rubric"] = rubricResponse(FacetClinical, 7, map[string]any{
		"diagnosis_correct":     true,
		"missed_critical_tests": []string{"Troponin"},
		"unnecessary_tests":     []string{"D-dimer"},
	})
	responses["physical-exam-rubric"] = rubricResponse(FacetPhysicalExam, 7, map[string]any{
		"missed_key_exams": []string{"respiratory"},
	})
	p := &routedProvider{responses: responses}
	agg := NewAggregator(p, DefaultConfig(), nil)

	rep := agg.Evaluate(context.Background(), evalCase(), fullInput())

	if len(rep.MissedCriticalTests) != 1 || rep.MissedCriticalTests[0] != "Troponin" {
		t.Errorf("missed critical tests = %v", rep.MissedCriticalTests)
	}
	if len(rep.UnnecessaryTests) != 1 {
		t.Errorf("unnecessary tests = %v", rep.UnnecessaryTests)
	}
	if len(rep.MissedKeyExams) != 1 || rep.MissedKeyExams[0] != "respiratory" {
		t.Errorf("missed key exams = %v", rep.MissedKeyExams)
	}
}
