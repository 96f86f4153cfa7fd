package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// EvaluationEvent records one completed evaluation report for a diagnosis
// submission. Reports are immutable; a resubmission appends a new event.
type EvaluationEvent struct {
	ent.Schema
}

func (EvaluationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (EvaluationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("report_id").
			NotEmpty().
			Unique().
			Comment("Report UUID"),
		field.String("session_id").
			NotEmpty().
			Comment("Session attempt the report evaluates"),
		field.String("user_id").
			Optional(),
		field.String("case_id").
			NotEmpty(),
		field.String("student_diagnosis").
			Comment("Diagnosis the student submitted"),
		field.String("actual_diagnosis").
			Comment("Resolved case diagnosis"),
		field.Bool("correct").
			Comment("Final correctness after all fallbacks"),
		field.JSON("scores", map[string]any{}).
			Comment("Combined sub-score map"),
		field.JSON("category_scores", map[string]any{}).
			Comment("Per-facet overall scores"),
		field.Text("feedback").
			Comment("Synthesized combined feedback"),
	}
}

func (EvaluationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("case_id"),
		index.Fields("correct"),
	}
}
