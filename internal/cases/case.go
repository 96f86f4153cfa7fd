package cases

import (
	"context"
	"strings"
)

// Case is the read-only clinical case a session runs against. It is owned by
// the case-management collaborator; the session core only reads it, with the
// single exception of ResolveDiagnosis persisting the resolved diagnosis
// back for downstream consistency.
type Case struct {
	ID                       string   `json:"id"`
	Title                    string   `json:"title"`
	Specialty                string   `json:"specialty"`
	PresentingComplaint      string   `json:"presenting_complaint"`
	Symptoms                 []string `json:"symptoms"`
	Diagnosis                string   `json:"diagnosis"`
	ExpectedDiagnosis        string   `json:"expected_diagnosis"`
	ExpectedCorrectDiagnosis string   `json:"expected_correct_diagnosis"`
	CriticalTests            []string `json:"critical_tests"`
	KeyFindings              []string `json:"key_findings"`
	KeyExams                 []string `json:"key_exams"`
}

// DefaultDiagnosis is used when a case carries no diagnosis under any of the
// known field names.
const DefaultDiagnosis = "Unspecified illness"

// Provider supplies cases to the session core.
type Provider interface {
	// GetCase returns the case with the given ID, or an error if unknown.
	GetCase(ctx context.Context, id string) (*Case, error)

	// ListCases returns all available case IDs.
	ListCases(ctx context.Context) ([]string, error)
}

// ResolveDiagnosis returns the case's actual diagnosis, trying the three
// known field names in order and defaulting to DefaultDiagnosis. The
// resolved value is written back to c.Diagnosis so every later reader sees
// the same answer.
func ResolveDiagnosis(c *Case) string {
	resolved := DefaultDiagnosis
	switch {
	case strings.TrimSpace(c.Diagnosis) != "":
		resolved = c.Diagnosis
	case strings.TrimSpace(c.ExpectedDiagnosis) != "":
		resolved = c.ExpectedDiagnosis
	case strings.TrimSpace(c.ExpectedCorrectDiagnosis) != "":
		resolved = c.ExpectedCorrectDiagnosis
	}
	c.Diagnosis = resolved
	return resolved
}

// IsCriticalTest reports whether name is in the case's critical-test list.
// Matching is case-insensitive and ignores surrounding whitespace.
func (c *Case) IsCriticalTest(name string) bool {
	needle := normalizeTestName(name)
	for _, t := range c.CriticalTests {
		if normalizeTestName(t) == needle {
			return true
		}
	}
	return false
}

// Valid reports whether the case is well-formed enough to evaluate against.
func (c *Case) Valid() bool {
	return c != nil && strings.TrimSpace(c.ID) != ""
}

func normalizeTestName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
