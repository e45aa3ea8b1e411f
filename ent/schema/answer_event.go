package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single acknowledged answer submission.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID of the client run that wrote this event"),
		field.Int64("session_id").
			Positive().
			Comment("Backend session identifier"),
		field.Int64("question_id").
			Positive().
			Comment("Backend question identifier"),
		field.String("category").
			Comment("Question category label"),
		field.String("question_type").
			NotEmpty().
			Comment("mcq, likert, or ranking"),
		field.String("value").
			NotEmpty().
			Comment("JSON-encoded answer value as acknowledged by the backend"),
		field.Int64("elapsed_ms").
			Default(0).
			Comment("Milliseconds the question was on screen"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
