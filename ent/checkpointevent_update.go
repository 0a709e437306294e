// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rmehra/retain/ent/checkpointevent"
	"github.com/rmehra/retain/ent/predicate"
)

// CheckpointEventUpdate is the builder for updating CheckpointEvent entities.
type CheckpointEventUpdate struct {
	config
	hooks    []Hook
	mutation *CheckpointEventMutation
}

// Where appends a list predicates to the CheckpointEventUpdate builder.
func (_u *CheckpointEventUpdate) Where(ps ...predicate.CheckpointEvent) *CheckpointEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CheckpointEventUpdate) SetSessionID(v string) *CheckpointEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableSessionID(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *CheckpointEventUpdate) SetVideoID(v string) *CheckpointEventUpdate {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableVideoID(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetCheckpointID sets the "checkpoint_id" field.
func (_u *CheckpointEventUpdate) SetCheckpointID(v string) *CheckpointEventUpdate {
	_u.mutation.SetCheckpointID(v)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint_id" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableCheckpointID(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetCheckpointID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *CheckpointEventUpdate) SetAction(v string) *CheckpointEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableAction(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPositionSecs sets the "position_secs" field.
func (_u *CheckpointEventUpdate) SetPositionSecs(v float64) *CheckpointEventUpdate {
	_u.mutation.ResetPositionSecs()
	_u.mutation.SetPositionSecs(v)
	return _u
}

// SetNillablePositionSecs sets the "position_secs" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillablePositionSecs(v *float64) *CheckpointEventUpdate {
	if v != nil {
		_u.SetPositionSecs(*v)
	}
	return _u
}

// AddPositionSecs adds value to the "position_secs" field.
func (_u *CheckpointEventUpdate) AddPositionSecs(v float64) *CheckpointEventUpdate {
	_u.mutation.AddPositionSecs(v)
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *CheckpointEventUpdate) SetLearnerAnswer(v string) *CheckpointEventUpdate {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableLearnerAnswer(v *string) *CheckpointEventUpdate {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *CheckpointEventUpdate) SetAttempts(v int) *CheckpointEventUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *CheckpointEventUpdate) SetNillableAttempts(v *int) *CheckpointEventUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *CheckpointEventUpdate) AddAttempts(v int) *CheckpointEventUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the CheckpointEventMutation object of the builder.
func (_u *CheckpointEventUpdate) Mutation() *CheckpointEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckpointEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckpointEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := checkpointevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VideoID(); ok {
		if err := checkpointevent.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.video_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CheckpointID(); ok {
		if err := checkpointevent.CheckpointIDValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.checkpoint_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := checkpointevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpointevent.Table, checkpointevent.Columns, sqlgraph.NewFieldSpec(checkpointevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkpointevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(checkpointevent.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CheckpointID(); ok {
		_spec.SetField(checkpointevent.FieldCheckpointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(checkpointevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PositionSecs(); ok {
		_spec.SetField(checkpointevent.FieldPositionSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionSecs(); ok {
		_spec.AddField(checkpointevent.FieldPositionSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(checkpointevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(checkpointevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(checkpointevent.FieldAttempts, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpointevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckpointEventUpdateOne is the builder for updating a single CheckpointEvent entity.
type CheckpointEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckpointEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CheckpointEventUpdateOne) SetSessionID(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableSessionID(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *CheckpointEventUpdateOne) SetVideoID(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableVideoID(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetCheckpointID sets the "checkpoint_id" field.
func (_u *CheckpointEventUpdateOne) SetCheckpointID(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetCheckpointID(v)
	return _u
}

// SetNillableCheckpointID sets the "checkpoint_id" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableCheckpointID(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetCheckpointID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *CheckpointEventUpdateOne) SetAction(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableAction(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetPositionSecs sets the "position_secs" field.
func (_u *CheckpointEventUpdateOne) SetPositionSecs(v float64) *CheckpointEventUpdateOne {
	_u.mutation.ResetPositionSecs()
	_u.mutation.SetPositionSecs(v)
	return _u
}

// SetNillablePositionSecs sets the "position_secs" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillablePositionSecs(v *float64) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetPositionSecs(*v)
	}
	return _u
}

// AddPositionSecs adds value to the "position_secs" field.
func (_u *CheckpointEventUpdateOne) AddPositionSecs(v float64) *CheckpointEventUpdateOne {
	_u.mutation.AddPositionSecs(v)
	return _u
}

// SetLearnerAnswer sets the "learner_answer" field.
func (_u *CheckpointEventUpdateOne) SetLearnerAnswer(v string) *CheckpointEventUpdateOne {
	_u.mutation.SetLearnerAnswer(v)
	return _u
}

// SetNillableLearnerAnswer sets the "learner_answer" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableLearnerAnswer(v *string) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetLearnerAnswer(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *CheckpointEventUpdateOne) SetAttempts(v int) *CheckpointEventUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *CheckpointEventUpdateOne) SetNillableAttempts(v *int) *CheckpointEventUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *CheckpointEventUpdateOne) AddAttempts(v int) *CheckpointEventUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// Mutation returns the CheckpointEventMutation object of the builder.
func (_u *CheckpointEventUpdateOne) Mutation() *CheckpointEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckpointEventUpdate builder.
func (_u *CheckpointEventUpdateOne) Where(ps ...predicate.CheckpointEvent) *CheckpointEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckpointEventUpdateOne) Select(field string, fields ...string) *CheckpointEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckpointEvent entity.
func (_u *CheckpointEventUpdateOne) Save(ctx context.Context) (*CheckpointEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckpointEventUpdateOne) SaveX(ctx context.Context) *CheckpointEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckpointEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckpointEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckpointEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := checkpointevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VideoID(); ok {
		if err := checkpointevent.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.video_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CheckpointID(); ok {
		if err := checkpointevent.CheckpointIDValidator(v); err != nil {
			return &ValidationError{Name: "checkpoint_id", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.checkpoint_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := checkpointevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "CheckpointEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckpointEventUpdateOne) sqlSave(ctx context.Context) (_node *CheckpointEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkpointevent.Table, checkpointevent.Columns, sqlgraph.NewFieldSpec(checkpointevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckpointEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpointevent.FieldID)
		for _, f := range fields {
			if !checkpointevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkpointevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkpointevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(checkpointevent.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CheckpointID(); ok {
		_spec.SetField(checkpointevent.FieldCheckpointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(checkpointevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.PositionSecs(); ok {
		_spec.SetField(checkpointevent.FieldPositionSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionSecs(); ok {
		_spec.AddField(checkpointevent.FieldPositionSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LearnerAnswer(); ok {
		_spec.SetField(checkpointevent.FieldLearnerAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(checkpointevent.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(checkpointevent.FieldAttempts, field.TypeInt, value)
	}
	_node = &CheckpointEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkpointevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
