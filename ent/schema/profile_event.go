package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProfileEvent records the classification computed for a completed run.
// The full label set is denormalized so the event log alone can answer
// distribution queries.
type ProfileEvent struct {
	ent.Schema
}

func (ProfileEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProfileEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("archetype").
			NotEmpty(),
		field.String("situational_override").
			Comment("Empty when no override fired"),
		field.String("risk_appetite").
			NotEmpty().
			Comment("High or Low"),
		field.String("structure").
			NotEmpty().
			Comment("High or Low"),
		field.String("emotional_driver").
			NotEmpty(),
		field.String("narrative_key").
			NotEmpty(),
		field.String("cognitive_gap").
			NotEmpty(),
		field.String("fragility").
			NotEmpty(),
		field.String("pivot_key").
			NotEmpty(),
		field.String("origin_key").
			NotEmpty(),
		field.Int("risk_score"),
		field.Int("structure_score"),
	}
}

func (ProfileEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("archetype"),
	}
}
