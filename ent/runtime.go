// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/boussole-app/boussole/ent/answerevent"
	"github.com/boussole-app/boussole/ent/resultevent"
	"github.com/boussole-app/boussole/ent/schema"
	"github.com/boussole-app/boussole/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescRunID is the schema descriptor for run_id field.
	answereventDescRunID := answereventFields[0].Descriptor()
	// answerevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	answerevent.RunIDValidator = answereventDescRunID.Validators[0].(func(string) error)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[1].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(int64) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[2].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(int64) error)
	// answereventDescQuestionType is the schema descriptor for question_type field.
	answereventDescQuestionType := answereventFields[4].Descriptor()
	// answerevent.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	answerevent.QuestionTypeValidator = answereventDescQuestionType.Validators[0].(func(string) error)
	// answereventDescValue is the schema descriptor for value field.
	answereventDescValue := answereventFields[5].Descriptor()
	// answerevent.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	answerevent.ValueValidator = answereventDescValue.Validators[0].(func(string) error)
	// answereventDescElapsedMs is the schema descriptor for elapsed_ms field.
	answereventDescElapsedMs := answereventFields[6].Descriptor()
	// answerevent.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	answerevent.DefaultElapsedMs = answereventDescElapsedMs.Default.(int64)
	resulteventMixin := schema.ResultEvent{}.Mixin()
	resulteventMixinFields0 := resulteventMixin[0].Fields()
	_ = resulteventMixinFields0
	resulteventFields := schema.ResultEvent{}.Fields()
	_ = resulteventFields
	// resulteventDescTimestamp is the schema descriptor for timestamp field.
	resulteventDescTimestamp := resulteventMixinFields0[1].Descriptor()
	// resultevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	resultevent.DefaultTimestamp = resulteventDescTimestamp.Default.(func() time.Time)
	// resulteventDescRunID is the schema descriptor for run_id field.
	resulteventDescRunID := resulteventFields[0].Descriptor()
	// resultevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	resultevent.RunIDValidator = resulteventDescRunID.Validators[0].(func(string) error)
	// resulteventDescSessionID is the schema descriptor for session_id field.
	resulteventDescSessionID := resulteventFields[1].Descriptor()
	// resultevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	resultevent.SessionIDValidator = resulteventDescSessionID.Validators[0].(func(int64) error)
	// resulteventDescTopScore is the schema descriptor for top_score field.
	resulteventDescTopScore := resulteventFields[3].Descriptor()
	// resultevent.DefaultTopScore holds the default value on creation for the top_score field.
	resultevent.DefaultTopScore = resulteventDescTopScore.Default.(float64)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescRunID is the schema descriptor for run_id field.
	sessioneventDescRunID := sessioneventFields[0].Descriptor()
	// sessionevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	sessionevent.RunIDValidator = sessioneventDescRunID.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[1].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(int64) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescAnswered is the schema descriptor for answered field.
	sessioneventDescAnswered := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultAnswered holds the default value on creation for the answered field.
	sessionevent.DefaultAnswered = sessioneventDescAnswered.Default.(int)
	// sessioneventDescTotal is the schema descriptor for total field.
	sessioneventDescTotal := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultTotal holds the default value on creation for the total field.
	sessionevent.DefaultTotal = sessioneventDescTotal.Default.(int)
}
