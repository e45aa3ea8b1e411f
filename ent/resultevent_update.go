// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/boussole-app/boussole/ent/predicate"
	"github.com/boussole-app/boussole/ent/resultevent"
)

// ResultEventUpdate is the builder for updating ResultEvent entities.
type ResultEventUpdate struct {
	config
	hooks    []Hook
	mutation *ResultEventMutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdate) Where(ps ...predicate.ResultEvent) *ResultEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *ResultEventUpdate) SetRunID(v string) *ResultEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableRunID(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultEventUpdate) SetSessionID(v int64) *ResultEventUpdate {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableSessionID(v *int64) *ResultEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *ResultEventUpdate) AddSessionID(v int64) *ResultEventUpdate {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetFieldIds sets the "field_ids" field.
func (_u *ResultEventUpdate) SetFieldIds(v []int64) *ResultEventUpdate {
	_u.mutation.SetFieldIds(v)
	return _u
}

// AppendFieldIds appends value to the "field_ids" field.
func (_u *ResultEventUpdate) AppendFieldIds(v []int64) *ResultEventUpdate {
	_u.mutation.AppendFieldIds(v)
	return _u
}

// ClearFieldIds clears the value of the "field_ids" field.
func (_u *ResultEventUpdate) ClearFieldIds() *ResultEventUpdate {
	_u.mutation.ClearFieldIds()
	return _u
}

// SetTopScore sets the "top_score" field.
func (_u *ResultEventUpdate) SetTopScore(v float64) *ResultEventUpdate {
	_u.mutation.ResetTopScore()
	_u.mutation.SetTopScore(v)
	return _u
}

// SetNillableTopScore sets the "top_score" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableTopScore(v *float64) *ResultEventUpdate {
	if v != nil {
		_u.SetTopScore(*v)
	}
	return _u
}

// AddTopScore adds value to the "top_score" field.
func (_u *ResultEventUpdate) AddTopScore(v float64) *ResultEventUpdate {
	_u.mutation.AddTopScore(v)
	return _u
}

// SetJustification sets the "justification" field.
func (_u *ResultEventUpdate) SetJustification(v string) *ResultEventUpdate {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *ResultEventUpdate) SetNillableJustification(v *string) *ResultEventUpdate {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// ClearJustification clears the value of the "justification" field.
func (_u *ResultEventUpdate) ClearJustification() *ResultEventUpdate {
	_u.mutation.ClearJustification()
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdate) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResultEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResultEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := resultevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(resultevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(resultevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FieldIds(); ok {
		_spec.SetField(resultevent.FieldFieldIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultevent.FieldFieldIds, value)
		})
	}
	if _u.mutation.FieldIdsCleared() {
		_spec.ClearField(resultevent.FieldFieldIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopScore(); ok {
		_spec.SetField(resultevent.FieldTopScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTopScore(); ok {
		_spec.AddField(resultevent.FieldTopScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(resultevent.FieldJustification, field.TypeString, value)
	}
	if _u.mutation.JustificationCleared() {
		_spec.ClearField(resultevent.FieldJustification, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResultEventUpdateOne is the builder for updating a single ResultEvent entity.
type ResultEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResultEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *ResultEventUpdateOne) SetRunID(v string) *ResultEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableRunID(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ResultEventUpdateOne) SetSessionID(v int64) *ResultEventUpdateOne {
	_u.mutation.ResetSessionID()
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableSessionID(v *int64) *ResultEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// AddSessionID adds value to the "session_id" field.
func (_u *ResultEventUpdateOne) AddSessionID(v int64) *ResultEventUpdateOne {
	_u.mutation.AddSessionID(v)
	return _u
}

// SetFieldIds sets the "field_ids" field.
func (_u *ResultEventUpdateOne) SetFieldIds(v []int64) *ResultEventUpdateOne {
	_u.mutation.SetFieldIds(v)
	return _u
}

// AppendFieldIds appends value to the "field_ids" field.
func (_u *ResultEventUpdateOne) AppendFieldIds(v []int64) *ResultEventUpdateOne {
	_u.mutation.AppendFieldIds(v)
	return _u
}

// ClearFieldIds clears the value of the "field_ids" field.
func (_u *ResultEventUpdateOne) ClearFieldIds() *ResultEventUpdateOne {
	_u.mutation.ClearFieldIds()
	return _u
}

// SetTopScore sets the "top_score" field.
func (_u *ResultEventUpdateOne) SetTopScore(v float64) *ResultEventUpdateOne {
	_u.mutation.ResetTopScore()
	_u.mutation.SetTopScore(v)
	return _u
}

// SetNillableTopScore sets the "top_score" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableTopScore(v *float64) *ResultEventUpdateOne {
	if v != nil {
		_u.SetTopScore(*v)
	}
	return _u
}

// AddTopScore adds value to the "top_score" field.
func (_u *ResultEventUpdateOne) AddTopScore(v float64) *ResultEventUpdateOne {
	_u.mutation.AddTopScore(v)
	return _u
}

// SetJustification sets the "justification" field.
func (_u *ResultEventUpdateOne) SetJustification(v string) *ResultEventUpdateOne {
	_u.mutation.SetJustification(v)
	return _u
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_u *ResultEventUpdateOne) SetNillableJustification(v *string) *ResultEventUpdateOne {
	if v != nil {
		_u.SetJustification(*v)
	}
	return _u
}

// ClearJustification clears the value of the "justification" field.
func (_u *ResultEventUpdateOne) ClearJustification() *ResultEventUpdateOne {
	_u.mutation.ClearJustification()
	return _u
}

// Mutation returns the ResultEventMutation object of the builder.
func (_u *ResultEventUpdateOne) Mutation() *ResultEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ResultEventUpdate builder.
func (_u *ResultEventUpdateOne) Where(ps ...predicate.ResultEvent) *ResultEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResultEventUpdateOne) Select(field string, fields ...string) *ResultEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ResultEvent entity.
func (_u *ResultEventUpdateOne) Save(ctx context.Context) (*ResultEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResultEventUpdateOne) SaveX(ctx context.Context) *ResultEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResultEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResultEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResultEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := resultevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ResultEventUpdateOne) sqlSave(ctx context.Context) (_node *ResultEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resultevent.Table, resultevent.Columns, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ResultEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resultevent.FieldID)
		for _, f := range fields {
			if !resultevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resultevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(resultevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedSessionID(); ok {
		_spec.AddField(resultevent.FieldSessionID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.FieldIds(); ok {
		_spec.SetField(resultevent.FieldFieldIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFieldIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, resultevent.FieldFieldIds, value)
		})
	}
	if _u.mutation.FieldIdsCleared() {
		_spec.ClearField(resultevent.FieldFieldIds, field.TypeJSON)
	}
	if value, ok := _u.mutation.TopScore(); ok {
		_spec.SetField(resultevent.FieldTopScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTopScore(); ok {
		_spec.AddField(resultevent.FieldTopScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Justification(); ok {
		_spec.SetField(resultevent.FieldJustification, field.TypeString, value)
	}
	if _u.mutation.JustificationCleared() {
		_spec.ClearField(resultevent.FieldJustification, field.TypeString)
	}
	_node = &ResultEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resultevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
