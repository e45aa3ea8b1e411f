package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records assessment session lifecycle events observed by this
// client (start/resume/complete). The backend remains the source of truth;
// this journal only feeds the offline history view.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID of the client run that wrote this event"),
		field.Int64("session_id").
			Positive().
			Comment("Backend session identifier"),
		field.String("action").
			NotEmpty().
			Comment("start, resume, or complete"),
		field.Int("answered").
			Default(0).
			Comment("Questions with a durable answer at the time of the event"),
		field.Int("total").
			Default(0).
			Comment("Total questions in the assessment"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
