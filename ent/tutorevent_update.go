// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/rmehra/retain/ent/predicate"
	"github.com/rmehra/retain/ent/tutorevent"
)

// TutorEventUpdate is the builder for updating TutorEvent entities.
type TutorEventUpdate struct {
	config
	hooks    []Hook
	mutation *TutorEventMutation
}

// Where appends a list predicates to the TutorEventUpdate builder.
func (_u *TutorEventUpdate) Where(ps ...predicate.TutorEvent) *TutorEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TutorEventUpdate) SetSessionID(v string) *TutorEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillableSessionID(v *string) *TutorEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *TutorEventUpdate) SetVideoID(v string) *TutorEventUpdate {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillableVideoID(v *string) *TutorEventUpdate {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetPositionSecs sets the "position_secs" field.
func (_u *TutorEventUpdate) SetPositionSecs(v float64) *TutorEventUpdate {
	_u.mutation.ResetPositionSecs()
	_u.mutation.SetPositionSecs(v)
	return _u
}

// SetNillablePositionSecs sets the "position_secs" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillablePositionSecs(v *float64) *TutorEventUpdate {
	if v != nil {
		_u.SetPositionSecs(*v)
	}
	return _u
}

// AddPositionSecs adds value to the "position_secs" field.
func (_u *TutorEventUpdate) AddPositionSecs(v float64) *TutorEventUpdate {
	_u.mutation.AddPositionSecs(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TutorEventUpdate) SetQuestion(v string) *TutorEventUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillableQuestion(v *string) *TutorEventUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetReply sets the "reply" field.
func (_u *TutorEventUpdate) SetReply(v string) *TutorEventUpdate {
	_u.mutation.SetReply(v)
	return _u
}

// SetNillableReply sets the "reply" field if the given value is not nil.
func (_u *TutorEventUpdate) SetNillableReply(v *string) *TutorEventUpdate {
	if v != nil {
		_u.SetReply(*v)
	}
	return _u
}

// Mutation returns the TutorEventMutation object of the builder.
func (_u *TutorEventUpdate) Mutation() *TutorEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := tutorevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VideoID(); ok {
		if err := tutorevent.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.video_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := tutorevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reply(); ok {
		if err := tutorevent.ReplyValidator(v); err != nil {
			return &ValidationError{Name: "reply", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.reply": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorevent.Table, tutorevent.Columns, sqlgraph.NewFieldSpec(tutorevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(tutorevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(tutorevent.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PositionSecs(); ok {
		_spec.SetField(tutorevent.FieldPositionSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionSecs(); ok {
		_spec.AddField(tutorevent.FieldPositionSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(tutorevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reply(); ok {
		_spec.SetField(tutorevent.FieldReply, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorEventUpdateOne is the builder for updating a single TutorEvent entity.
type TutorEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *TutorEventUpdateOne) SetSessionID(v string) *TutorEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillableSessionID(v *string) *TutorEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetVideoID sets the "video_id" field.
func (_u *TutorEventUpdateOne) SetVideoID(v string) *TutorEventUpdateOne {
	_u.mutation.SetVideoID(v)
	return _u
}

// SetNillableVideoID sets the "video_id" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillableVideoID(v *string) *TutorEventUpdateOne {
	if v != nil {
		_u.SetVideoID(*v)
	}
	return _u
}

// SetPositionSecs sets the "position_secs" field.
func (_u *TutorEventUpdateOne) SetPositionSecs(v float64) *TutorEventUpdateOne {
	_u.mutation.ResetPositionSecs()
	_u.mutation.SetPositionSecs(v)
	return _u
}

// SetNillablePositionSecs sets the "position_secs" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillablePositionSecs(v *float64) *TutorEventUpdateOne {
	if v != nil {
		_u.SetPositionSecs(*v)
	}
	return _u
}

// AddPositionSecs adds value to the "position_secs" field.
func (_u *TutorEventUpdateOne) AddPositionSecs(v float64) *TutorEventUpdateOne {
	_u.mutation.AddPositionSecs(v)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TutorEventUpdateOne) SetQuestion(v string) *TutorEventUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillableQuestion(v *string) *TutorEventUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetReply sets the "reply" field.
func (_u *TutorEventUpdateOne) SetReply(v string) *TutorEventUpdateOne {
	_u.mutation.SetReply(v)
	return _u
}

// SetNillableReply sets the "reply" field if the given value is not nil.
func (_u *TutorEventUpdateOne) SetNillableReply(v *string) *TutorEventUpdateOne {
	if v != nil {
		_u.SetReply(*v)
	}
	return _u
}

// Mutation returns the TutorEventMutation object of the builder.
func (_u *TutorEventUpdateOne) Mutation() *TutorEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorEventUpdate builder.
func (_u *TutorEventUpdateOne) Where(ps ...predicate.TutorEvent) *TutorEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorEventUpdateOne) Select(field string, fields ...string) *TutorEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorEvent entity.
func (_u *TutorEventUpdateOne) Save(ctx context.Context) (*TutorEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorEventUpdateOne) SaveX(ctx context.Context) *TutorEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TutorEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := tutorevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VideoID(); ok {
		if err := tutorevent.VideoIDValidator(v); err != nil {
			return &ValidationError{Name: "video_id", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.video_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := tutorevent.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reply(); ok {
		if err := tutorevent.ReplyValidator(v); err != nil {
			return &ValidationError{Name: "reply", err: fmt.Errorf(`ent: validator failed for field "TutorEvent.reply": %w`, err)}
		}
	}
	return nil
}

func (_u *TutorEventUpdateOne) sqlSave(ctx context.Context) (_node *TutorEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tutorevent.Table, tutorevent.Columns, sqlgraph.NewFieldSpec(tutorevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorevent.FieldID)
		for _, f := range fields {
			if !tutorevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutorevent.FieldID {
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
		_spec.SetField(tutorevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VideoID(); ok {
		_spec.SetField(tutorevent.FieldVideoID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PositionSecs(); ok {
		_spec.SetField(tutorevent.FieldPositionSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPositionSecs(); ok {
		_spec.AddField(tutorevent.FieldPositionSecs, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(tutorevent.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reply(); ok {
		_spec.SetField(tutorevent.FieldReply, field.TypeString, value)
	}
	_node = &TutorEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
