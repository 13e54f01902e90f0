package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records quiz run lifecycle events (start/complete).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a run"),
		field.String("action").
			NotEmpty().
			Comment("start or complete"),
		field.Int("answers_recorded").
			Default(0).
			Comment("Distinct answer keys recorded (on complete only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Run duration in seconds (on complete only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
