package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResponseEvent records a single answer given during a quiz run. Revisiting
// a question appends a new event rather than mutating the old one; the
// latest event per answer key wins.
type ResponseEvent struct {
	ent.Schema
}

func (ResponseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResponseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Catalog question identifier"),
		field.String("answer_key").
			NotEmpty().
			Comment("Key the answer is stored under"),
		field.String("value").
			Comment("Canonical display value of the answer"),
		field.Int("phase").
			Comment("Phase the question belongs to"),
	}
}

func (ResponseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("answer_key"),
	}
}
