package eval

import (
	"context"
	"strings"

	"oscesim/internal/cases"
	"oscesim/internal/llm"
)

// NotesEvaluator scores the student's SOAP documentation.
type NotesEvaluator struct {
	provider llm.Provider
	cfg      Config
}

// NewNotesEvaluator creates the notes rubric evaluator.
func NewNotesEvaluator(provider llm.Provider, cfg Config) *NotesEvaluator {
	return &NotesEvaluator{provider: provider, cfg: cfg}
}

// Evaluate scores the notes. Notes with no non-empty section return the
// zero-score record without calling the scoring collaborator.
func (e *NotesEvaluator) Evaluate(ctx context.Context, c *cases.Case, notes map[string]string) Result {
	if !hasContent(notes) {
		return zeroResult(FacetNotes)
	}

	userMsg, err := buildNotesMessage(c, notes)
	if err != nil {
		return errorResult(FacetNotes)
	}

	return scoreRubric(ctx, e.provider, e.cfg, FacetNotes,
		notesSchema, notesSystemPrompt, userMsg)
}

// hasContent reports whether at least one note section is non-empty.
func hasContent(notes map[string]string) bool {
	for _, text := range notes {
		if strings.TrimSpace(text) != "" {
			return true
		}
	}
	return false
}
