package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ActivityEvent records one session timeline entry: a test order, exam,
// patient interaction, notes update or session milestone.
type ActivityEvent struct {
	ent.Schema
}

func (ActivityEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ActivityEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Session attempt this activity belongs to"),
		field.String("user_id").
			Optional().
			Comment("Student, empty until authenticated association"),
		field.String("case_id").
			NotEmpty().
			Comment("Clinical case being attempted"),
		field.String("activity_type").
			NotEmpty().
			Comment("session_start, test_order, physical_exam, ..."),
		field.String("description").
			Comment("Human-readable description of the activity"),
		field.Int64("time_since_start_ms").
			Comment("Milliseconds since session start"),
		field.JSON("details", map[string]any{}).
			Optional().
			Comment("Type-specific structured details"),
	}
}

func (ActivityEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("case_id"),
		index.Fields("activity_type"),
	}
}
