// Code generated by ent, DO NOT EDIT.

package resultevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/boussole-app/boussole/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldRunID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSessionID, v))
}

// TopScore applies equality check predicate on the "top_score" field. It's identical to TopScoreEQ.
func TopScore(v float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTopScore, v))
}

// Justification applies equality check predicate on the "justification" field. It's identical to JustificationEQ.
func Justification(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldJustification, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldRunID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v int64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldSessionID, v))
}

// FieldIdsIsNil applies the IsNil predicate on the "field_ids" field.
func FieldIdsIsNil() predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIsNull(FieldFieldIds))
}

// FieldIdsNotNil applies the NotNil predicate on the "field_ids" field.
func FieldIdsNotNil() predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotNull(FieldFieldIds))
}

// TopScoreEQ applies the EQ predicate on the "top_score" field.
func TopScoreEQ(v float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldTopScore, v))
}

// TopScoreNEQ applies the NEQ predicate on the "top_score" field.
func TopScoreNEQ(v float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldTopScore, v))
}

// TopScoreIn applies the In predicate on the "top_score" field.
func TopScoreIn(vs ...float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldTopScore, vs...))
}

// TopScoreNotIn applies the NotIn predicate on the "top_score" field.
func TopScoreNotIn(vs ...float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldTopScore, vs...))
}

// TopScoreGT applies the GT predicate on the "top_score" field.
func TopScoreGT(v float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldTopScore, v))
}

// TopScoreGTE applies the GTE predicate on the "top_score" field.
func TopScoreGTE(v float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldTopScore, v))
}

// TopScoreLT applies the LT predicate on the "top_score" field.
func TopScoreLT(v float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldTopScore, v))
}

// TopScoreLTE applies the LTE predicate on the "top_score" field.
func TopScoreLTE(v float64) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldTopScore, v))
}

// JustificationEQ applies the EQ predicate on the "justification" field.
func JustificationEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEQ(FieldJustification, v))
}

// JustificationNEQ applies the NEQ predicate on the "justification" field.
func JustificationNEQ(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNEQ(FieldJustification, v))
}

// JustificationIn applies the In predicate on the "justification" field.
func JustificationIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIn(FieldJustification, vs...))
}

// JustificationNotIn applies the NotIn predicate on the "justification" field.
func JustificationNotIn(vs ...string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotIn(FieldJustification, vs...))
}

// JustificationGT applies the GT predicate on the "justification" field.
func JustificationGT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGT(FieldJustification, v))
}

// JustificationGTE applies the GTE predicate on the "justification" field.
func JustificationGTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldGTE(FieldJustification, v))
}

// JustificationLT applies the LT predicate on the "justification" field.
func JustificationLT(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLT(FieldJustification, v))
}

// JustificationLTE applies the LTE predicate on the "justification" field.
func JustificationLTE(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldLTE(FieldJustification, v))
}

// JustificationContains applies the Contains predicate on the "justification" field.
func JustificationContains(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContains(FieldJustification, v))
}

// JustificationHasPrefix applies the HasPrefix predicate on the "justification" field.
func JustificationHasPrefix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasPrefix(FieldJustification, v))
}

// JustificationHasSuffix applies the HasSuffix predicate on the "justification" field.
func JustificationHasSuffix(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldHasSuffix(FieldJustification, v))
}

// JustificationIsNil applies the IsNil predicate on the "justification" field.
func JustificationIsNil() predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldIsNull(FieldJustification))
}

// JustificationNotNil applies the NotNil predicate on the "justification" field.
func JustificationNotNil() predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldNotNull(FieldJustification))
}

// JustificationEqualFold applies the EqualFold predicate on the "justification" field.
func JustificationEqualFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldEqualFold(FieldJustification, v))
}

// JustificationContainsFold applies the ContainsFold predicate on the "justification" field.
func JustificationContainsFold(v string) predicate.ResultEvent {
	return predicate.ResultEvent(sql.FieldContainsFold(FieldJustification, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ResultEvent) predicate.ResultEvent {
	return predicate.ResultEvent(sql.NotPredicates(p))
}
