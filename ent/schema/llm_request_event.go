package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records one call to a scoring or content collaborator,
// for auditing and cost tracking.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("provider").
			NotEmpty().
			Comment("Provider identifier"),
		field.String("model").
			NotEmpty().
			Comment("Model that served the request"),
		field.String("purpose").
			NotEmpty().
			Comment("What the request was for, e.g. rubric-notes"),
		field.Int("input_tokens"),
		field.Int("output_tokens"),
		field.Int64("latency_ms"),
		field.Bool("success"),
		field.String("error_message").
			Optional(),
		field.Text("request_body").
			Optional().
			Comment("Serialized prompt, for debugging"),
		field.Text("response_body").
			Optional().
			Comment("Raw response content, for debugging"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("purpose"),
		index.Fields("success"),
	}
}
