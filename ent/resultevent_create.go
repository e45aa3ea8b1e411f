// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/boussole-app/boussole/ent/resultevent"
)

// ResultEventCreate is the builder for creating a ResultEvent entity.
type ResultEventCreate struct {
	config
	mutation *ResultEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *ResultEventCreate) SetSequence(v int64) *ResultEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ResultEventCreate) SetTimestamp(v time.Time) *ResultEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableTimestamp(v *time.Time) *ResultEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *ResultEventCreate) SetRunID(v string) *ResultEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *ResultEventCreate) SetSessionID(v int64) *ResultEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFieldIds sets the "field_ids" field.
func (_c *ResultEventCreate) SetFieldIds(v []int64) *ResultEventCreate {
	_c.mutation.SetFieldIds(v)
	return _c
}

// SetTopScore sets the "top_score" field.
func (_c *ResultEventCreate) SetTopScore(v float64) *ResultEventCreate {
	_c.mutation.SetTopScore(v)
	return _c
}

// SetNillableTopScore sets the "top_score" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableTopScore(v *float64) *ResultEventCreate {
	if v != nil {
		_c.SetTopScore(*v)
	}
	return _c
}

// SetJustification sets the "justification" field.
func (_c *ResultEventCreate) SetJustification(v string) *ResultEventCreate {
	_c.mutation.SetJustification(v)
	return _c
}

// SetNillableJustification sets the "justification" field if the given value is not nil.
func (_c *ResultEventCreate) SetNillableJustification(v *string) *ResultEventCreate {
	if v != nil {
		_c.SetJustification(*v)
	}
	return _c
}

// Mutation returns the ResultEventMutation object of the builder.
func (_c *ResultEventCreate) Mutation() *ResultEventMutation {
	return _c.mutation
}

// Save creates the ResultEvent in the database.
func (_c *ResultEventCreate) Save(ctx context.Context) (*ResultEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResultEventCreate) SaveX(ctx context.Context) *ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResultEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := resultevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TopScore(); !ok {
		v := resultevent.DefaultTopScore
		_c.mutation.SetTopScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResultEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "ResultEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ResultEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "ResultEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := resultevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ResultEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := resultevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ResultEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopScore(); !ok {
		return &ValidationError{Name: "top_score", err: errors.New(`ent: missing required field "ResultEvent.top_score"`)}
	}
	return nil
}

func (_c *ResultEventCreate) sqlSave(ctx context.Context) (*ResultEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ResultEventCreate) createSpec() (*ResultEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &ResultEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resultevent.Table, sqlgraph.NewFieldSpec(resultevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(resultevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(resultevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(resultevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(resultevent.FieldSessionID, field.TypeInt64, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.FieldIds(); ok {
		_spec.SetField(resultevent.FieldFieldIds, field.TypeJSON, value)
		_node.FieldIds = value
	}
	if value, ok := _c.mutation.TopScore(); ok {
		_spec.SetField(resultevent.FieldTopScore, field.TypeFloat64, value)
		_node.TopScore = value
	}
	if value, ok := _c.mutation.Justification(); ok {
		_spec.SetField(resultevent.FieldJustification, field.TypeString, value)
		_node.Justification = value
	}
	return _node, _spec
}

// ResultEventCreateBulk is the builder for creating many ResultEvent entities in bulk.
type ResultEventCreateBulk struct {
	config
	err      error
	builders []*ResultEventCreate
}

// Save creates the ResultEvent entities in the database.
func (_c *ResultEventCreateBulk) Save(ctx context.Context) ([]*ResultEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ResultEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResultEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ResultEventCreateBulk) SaveX(ctx context.Context) []*ResultEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResultEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResultEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
