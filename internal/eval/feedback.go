package eval

import (
	"fmt"
	"strings"
)

// facetLabels are the display names used in synthesized feedback.
var facetLabels = map[Facet]string{
	FacetInteraction:  "Patient communication",
	FacetPhysicalExam: "Physical examination",
	FacetClinical:     "Clinical decision-making",
	FacetNotes:        "Documentation",
	FacetWorkflow:     "Workflow",
}

// maxObservationsPerList caps how many items each strengths/improvements/
// missed list contributes to the synthesized feedback.
const maxObservationsPerList = 3

// synthesizeFeedback builds the single combined feedback string: one lead
// sentence per facet chosen by threshold bands, then a key-observations
// section drawn from the per-facet lists, in fixed facet order.
func synthesizeFeedback(results map[Facet]Result, report *Report) string {
	var b strings.Builder

	for _, f := range facetOrder {
		b.WriteString(leadSentence(f, results[f].Overall))
		b.WriteString(" ")
	}

	obs := collectObservations(results, report)
	if len(obs) > 0 {
		b.WriteString("\n\nKey observations:\n")
		for _, line := range obs {
			b.WriteString("- ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n ")
}

// leadSentence picks the per-facet summary sentence by score band:
// 8 and above, 6 and above, above zero, zero.
func leadSentence(f Facet, overall int) string {
	label := facetLabels[f]
	switch {
	case overall >= 8:
		return fmt.Sprintf("%s was excellent (%d/10).", label, overall)
	case overall >= 6:
		return fmt.Sprintf("%s was adequate (%d/10).", label, overall)
	case overall > 0:
		return fmt.Sprintf("%s needs improvement (%d/10).", label, overall)
	default:
		return notPerformedSentence(f)
	}
}

func notPerformedSentence(f Facet) string {
	switch f {
	case FacetInteraction:
		return "The patient was not interviewed."
	case FacetPhysicalExam:
		return "No physical examination was performed."
	case FacetClinical:
		return "Clinical decision-making could not be assessed."
	case FacetNotes:
		return "No notes were documented."
	default:
		return "Workflow timing could not be assessed."
	}
}

// collectObservations gathers up to maxObservationsPerList entries from each
// non-empty strengths, improvements and missed-items list, facet by facet.
func collectObservations(results map[Facet]Result, report *Report) []string {
	var out []string

	appendSome := func(prefix string, items []string) {
		for i, item := range items {
			if i == maxObservationsPerList {
				break
			}
			out = append(out, prefix+item)
		}
	}

	for _, f := range facetOrder {
		r := results[f]
		label := facetLabels[f]
		appendSome(label+" strength: ", r.Strengths)
		appendSome(label+" to improve: ", r.Improvements)

		switch f {
		case FacetPhysicalExam:
			appendSome("Missed key exam: ", report.MissedKeyExams)
		case FacetClinical:
			appendSome("Missed critical test: ", report.MissedCriticalTests)
		}
	}

	return out
}
