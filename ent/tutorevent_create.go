// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rmehra/retain/ent/tutorevent"
)

// TutorEventCreate is the builder for creating a TutorEvent entity.
type TutorEventCreate struct {
	config
	mutation *TutorEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *TutorEventCreate) SetSequence(v int64) *TutorEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TutorEventCreate) SetTimestamp(v time.Time) *TutorEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *TutorEventCreate) SetNillableTimestamp(v *time.Time) *TutorEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *TutorEventCreate) SetSessionID(v string) *TutorEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetVideoID sets the "video_id" field.
func (_c *TutorEventCreate) SetVideoID(v string) *TutorEventCreate {
	_c.mutation.SetVideoID(v)
	return _c
}

// SetPositionSecs sets the "position_secs" field.
func (_c *TutorEventCreate) SetPositionSecs(v float64) *TutorEventCreate {
	_c.mutation.SetPositionSecs(v)
	return _c
}

// SetNillablePositionSecs sets the "position_secs" field if the given value is not nil.
func (_c *TutorEventCreate) SetNillablePositionSecs(v *float64) *TutorEventCreate {
	if v != nil {
		_c.SetPositionSecs(*v)
	}
	return _c
}

// SetQuestion sets the "question" field.
func (_c *TutorEventCreate) SetQuestion(v string) *TutorEventCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetReply sets the "reply" field.
func (_c *TutorEventCreate) SetReply(v string) *TutorEventCreate {
	_c.mutation.SetReply(v)
	return _c
}

// Mutation returns the TutorEventMutation object of the builder.
func (_c *TutorEventCreate) Mutation() *TutorEventMutation {
	return _c.mutation
}

// Save creates the TutorEvent in the database.
func (_c *TutorEventCreate) Save(ctx context.Context) (*TutorEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorEventCreate) SaveX(ctx context.Context) *TutorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := tutorevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.PositionSecs(); !ok {
		v := tutorevent.DefaultPositionSecs
		_c.mutation.SetPositionSecs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "TutorEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TutorEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "TutorEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := tutorevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VideoID(); !ok {
		return &ValidationError{Name: "video_id", err: errors.New(`ent: missing required field "TutorEvent.video_id"`)}
	}
	if v, ok := _c.mutation.VideoID(); ok {
		if err := tutorevent.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.video_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PositionSecs(); !ok {
		return &ValidationError{Name: "position_secs", err: errors.New(`ent: missing required field "TutorEvent.position_secs"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "TutorEvent.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := tutorevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reply(); !ok {
		return &ValidationError{Name: "reply", err: errors.New(`ent: missing required field "TutorEvent.reply"`)}
	}
	if v, ok := _c.mutation.Reply(); ok {
		if err := tutorevent.ReplyValidator(v); err != nil {
			return &ValidationError{Name: "reply", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.reply": %w`, err)}
		}
	}
	return nil
}

func (_c *TutorEventCreate) sqlSave(ctx context.Context) (*TutorEvent, error) {
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

func (_c *TutorEventCreate) createSpec() (*TutorEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorevent.Table, sqlgraph.NewFieldSpec(tutorevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(tutorevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(tutorevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(tutorevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.VideoID(); ok {
		_spec.SetField(tutorevent.FieldVideoID, field.TypeString, value)
		_node.VideoID = value
	}
	if value, ok := _c.mutation.PositionSecs(); ok {
		_spec.SetField(tutorevent.FieldPositionSecs, field.TypeFloat64, value)
		_node.PositionSecs = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(tutorevent.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Reply(); ok {
		_spec.SetField(tutorevent.FieldReply, field.TypeString, value)
		_node.Reply = value
	}
	return _node, _spec
}

// TutorEventCreateBulk is the builder for creating many TutorEvent entities in bulk.
type TutorEventCreateBulk struct {
	config
	err      error
	builders []*TutorEventCreate
}

// Save creates the TutorEvent entities in the database.
func (_c *TutorEventCreateBulk) Save(ctx context.Context) ([]*TutorEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorEventMutation)
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
func (_c *TutorEventCreateBulk) SaveX(ctx context.Context) []*TutorEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
