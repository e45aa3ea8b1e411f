package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ResultEvent records the recommendation attached to a completed session,
// so past results stay viewable without a network round trip.
type ResultEvent struct {
	ent.Schema
}

func (ResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID of the client run that wrote this event"),
		field.Int64("session_id").
			Positive().
			Unique().
			Comment("Backend session identifier"),
		field.JSON("field_ids", []int64{}).
			Optional().
			Comment("Recommended field identifiers, best match first"),
		field.Float("top_score").
			Default(0).
			Comment("Highest compatibility score"),
		field.String("justification").
			Optional().
			Comment("Backend-provided justification text"),
	}
}

func (ResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
