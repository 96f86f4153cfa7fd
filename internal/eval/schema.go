package eval

import (
	"oscesim/internal/llm"
)

// Score descriptions sent to the scoring collaborator, per sub-score key.
var scoreDescriptions = map[string]string{
	"communication_clarity_score":      "Clarity and structure of the student's questions and explanations",
	"empathy_score":                    "Empathy and rapport with the patient",
	"question_quality_score":           "Relevance and diagnostic value of the questions asked",
	"active_listening_score":           "Follow-up on information the patient volunteered",
	"professionalism_score":            "Professional tone and conduct",
	"exam_selection_score":             "Choice of examinations relevant to the presenting complaint",
	"exam_thoroughness_score":          "Completeness of the examinations performed",
	"exam_sequencing_score":            "Logical ordering of the examinations",
	"technique_score":                  "Correctness of verified procedure steps",
	"diagnostic_accuracy_score":        "Accuracy of the submitted diagnosis",
	"test_selection_score":             "Appropriateness of ordered tests and imaging",
	"test_interpretation_score":        "Use of test results in reaching the diagnosis",
	"differential_reasoning_score":     "Breadth and pruning of the differential",
	"decision_timing_score":            "Timeliness of key decisions for the case urgency",
	"documentation_completeness_score": "Coverage of relevant findings in the notes",
	"soap_structure_score":             "Adherence to the SOAP structure",
	"documented_reasoning_score":       "Clinical reasoning captured in the notes",
	"conciseness_score":                "Brevity without loss of content",
	"efficiency_score":                 "Overall efficiency of the session",
	"prioritization_score":             "Ordering of critical actions first",
	"time_management_score":            "Use of session time, including idle periods",
	"critical_action_timing_score":     "Speed of ordering the case's critical tests",
}

// rubricSchema builds the JSON schema for one facet's structured response.
func rubricSchema(f Facet, name, description string) *llm.Schema {
	props := map[string]any{}
	required := []any{}

	for _, k := range facetScoreKeys[f] {
		props[k] = map[string]any{
			"type":        "integer",
			"minimum":     0,
			"maximum":     10,
			"description": scoreDescriptions[k],
		}
		required = append(required, k)
	}

	props[overallKey(f)] = map[string]any{
		"type":        "integer",
		"minimum":     0,
		"maximum":     10,
		"description": "Overall score for this facet",
	}
	props["strengths"] = stringListProp("Specific things the student did well")
	props["areas_for_improvement"] = stringListProp("Specific things the student should improve")
	props["feedback"] = map[string]any{
		"type":        "string",
		"description": "Two to four sentences of narrative feedback",
	}
	required = append(required, overallKey(f), "strengths", "areas_for_improvement", "feedback")

	switch f {
	case FacetClinical:
		props["diagnosis_correct"] = map[string]any{
			"type":        "boolean",
			"description": "Whether the submitted diagnosis matches the actual diagnosis",
		}
		props["missed_critical_tests"] = stringListProp("Critical tests the student failed to order")
		props["unnecessary_tests"] = stringListProp("Ordered tests with no diagnostic value for this case")
		required = append(required, "diagnosis_correct", "missed_critical_tests", "unnecessary_tests")
	case FacetPhysicalExam:
		props["missed_key_exams"] = stringListProp("Key examinations the student did not perform")
		props["unnecessary_exams"] = stringListProp("Performed examinations with no value for this case")
		required = append(required, "missed_key_exams", "unnecessary_exams")
	}

	return &llm.Schema{
		Name:        name,
		Description: description,
		Definition: map[string]any{
			"type":                 "object",
			"properties":           props,
			"required":             required,
			"additionalProperties": false,
		},
	}
}

func stringListProp(description string) map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": description,
	}
}

var (
	interactionSchema = rubricSchema(FacetInteraction, "interaction-rubric",
		"Scores of the student's communication with the virtual patient")
	physicalExamSchema = rubricSchema(FacetPhysicalExam, "physical-exam-rubric",
		"Scores of the student's physical examination performance")
	clinicalSchema = rubricSchema(FacetClinical, "clinical-decision-rubric",
		"Scores of the student's diagnostic decision-making")
	notesSchema = rubricSchema(FacetNotes, "notes-rubric",
		"Scores of the student's SOAP documentation")
	workflowSchema = rubricSchema(FacetWorkflow, "workflow-rubric",
		"Scores of the student's workflow timing and efficiency")
)
