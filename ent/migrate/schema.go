// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeInt64},
		{Name: "question_id", Type: field.TypeInt64},
		{Name: "category", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "value", Type: field.TypeString},
		{Name: "elapsed_ms", Type: field.TypeInt64, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
		},
	}
	// ResultEventsColumns holds the columns for the "result_events" table.
	ResultEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeInt64, Unique: true},
		{Name: "field_ids", Type: field.TypeJSON, Nullable: true},
		{Name: "top_score", Type: field.TypeFloat64, Default: 0},
		{Name: "justification", Type: field.TypeString, Nullable: true},
	}
	// ResultEventsTable holds the schema information for the "result_events" table.
	ResultEventsTable = &schema.Table{
		Name:       "result_events",
		Columns:    ResultEventsColumns,
		PrimaryKey: []*schema.Column{ResultEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "resultevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[1]},
			},
			{
				Name:    "resultevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[2]},
			},
			{
				Name:    "resultevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{ResultEventsColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeInt64},
		{Name: "action", Type: field.TypeString},
		{Name: "answered", Type: field.TypeInt, Default: 0},
		{Name: "total", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		ResultEventsTable,
		SessionEventsTable,
	}
)

func init() {
}
