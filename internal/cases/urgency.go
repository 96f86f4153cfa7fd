package cases

import "strings"

// Urgency classifies how time-critical a case is. It feeds the workflow
// rubric: emergent cases weight decision timing more heavily than routine
// ones.
type Urgency string

const (
	UrgencyEmergent Urgency = "emergent"
	UrgencyUrgent   Urgency = "urgent"
	UrgencyRoutine  Urgency = "routine"
)

// emergentKeywords mark presentations where minutes matter.
var emergentKeywords = []string{
	"chest pain", "shortness of breath", "unresponsive", "unconscious",
	"stroke", "seizure", "anaphylaxis", "hemorrhage", "severe bleeding",
	"cardiac arrest", "overdose", "trauma", "sepsis",
}

// urgentKeywords mark presentations that need same-day workup.
var urgentKeywords = []string{
	"fever", "abdominal pain", "fracture", "dehydration", "infection",
	"vomiting", "severe pain", "high blood pressure", "palpitations",
}

// ClassifyUrgency derives an urgency band from the case's presenting
// complaint and symptom list. Deterministic keyword matching, no external
// calls.
func ClassifyUrgency(c *Case) Urgency {
	text := strings.ToLower(c.PresentingComplaint)
	for _, s := range c.Symptoms {
		text += " " + strings.ToLower(s)
	}

	for _, kw := range emergentKeywords {
		if strings.Contains(text, kw) {
			return UrgencyEmergent
		}
	}
	for _, kw := range urgentKeywords {
		if strings.Contains(text, kw) {
			return UrgencyUrgent
		}
	}
	return UrgencyRoutine
}
