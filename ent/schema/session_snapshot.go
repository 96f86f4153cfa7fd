package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSnapshot is the durable copy of one session's full state, upserted
// after every mutation and keyed by (user_id, case_id).
type SessionSnapshot struct {
	ent.Schema
}

func (SessionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("user_id").
			Default("").
			Comment("Empty string until the session is associated with a user"),
		field.String("case_id").
			NotEmpty(),
		field.Int64("sequence").
			Comment("Event sequence number at the time of snapshot"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.JSON("data", map[string]any{}).
			Comment("Full session state as JSON"),
	}
}

func (SessionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "case_id").
			Unique(),
		index.Fields("session_id"),
	}
}
