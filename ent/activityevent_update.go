// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"oscesim/ent/activityevent"
	"oscesim/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ActivityEventUpdate is the builder for updating ActivityEvent entities.
type ActivityEventUpdate struct {
	config
	hooks    []Hook
	mutation *ActivityEventMutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdate) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ActivityEventUpdate) SetSessionID(v string) *ActivityEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableSessionID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityEventUpdate) SetUserID(v string) *ActivityEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableUserID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ActivityEventUpdate) ClearUserID() *ActivityEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *ActivityEventUpdate) SetCaseID(v string) *ActivityEventUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableCaseID(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityEventUpdate) SetActivityType(v string) *ActivityEventUpdate {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableActivityType(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActivityEventUpdate) SetDescription(v string) *ActivityEventUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableDescription(v *string) *ActivityEventUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTimeSinceStartMs sets the "time_since_start_ms" field.
func (_u *ActivityEventUpdate) SetTimeSinceStartMs(v int64) *ActivityEventUpdate {
	_u.mutation.ResetTimeSinceStartMs()
	_u.mutation.SetTimeSinceStartMs(v)
	return _u
}

// SetNillableTimeSinceStartMs sets the "time_since_start_ms" field if the given value is not nil.
func (_u *ActivityEventUpdate) SetNillableTimeSinceStartMs(v *int64) *ActivityEventUpdate {
	if v != nil {
		_u.SetTimeSinceStartMs(*v)
	}
	return _u
}

// AddTimeSinceStartMs adds value to the "time_since_start_ms" field.
func (_u *ActivityEventUpdate) AddTimeSinceStartMs(v int64) *ActivityEventUpdate {
	_u.mutation.AddTimeSinceStartMs(v)
	return _u
}

// SetDetails sets the "details" field.
func (_u *ActivityEventUpdate) SetDetails(v map[string]interface{}) *ActivityEventUpdate {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ActivityEventUpdate) ClearDetails() *ActivityEventUpdate {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdate) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActivityEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActivityEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := activityevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := activityevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activityevent.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.activity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(activityevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(activityevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(activityevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activityevent.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(activityevent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSinceStartMs(); ok {
		_spec.SetField(activityevent.FieldTimeSinceStartMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSinceStartMs(); ok {
		_spec.AddField(activityevent.FieldTimeSinceStartMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(activityevent.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(activityevent.FieldDetails, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActivityEventUpdateOne is the builder for updating a single ActivityEvent entity.
type ActivityEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActivityEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ActivityEventUpdateOne) SetSessionID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableSessionID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ActivityEventUpdateOne) SetUserID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableUserID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *ActivityEventUpdateOne) ClearUserID() *ActivityEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *ActivityEventUpdateOne) SetCaseID(v string) *ActivityEventUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableCaseID(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetActivityType sets the "activity_type" field.
func (_u *ActivityEventUpdateOne) SetActivityType(v string) *ActivityEventUpdateOne {
	_u.mutation.SetActivityType(v)
	return _u
}

// SetNillableActivityType sets the "activity_type" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableActivityType(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetActivityType(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *ActivityEventUpdateOne) SetDescription(v string) *ActivityEventUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableDescription(v *string) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTimeSinceStartMs sets the "time_since_start_ms" field.
func (_u *ActivityEventUpdateOne) SetTimeSinceStartMs(v int64) *ActivityEventUpdateOne {
	_u.mutation.ResetTimeSinceStartMs()
	_u.mutation.SetTimeSinceStartMs(v)
	return _u
}

// SetNillableTimeSinceStartMs sets the "time_since_start_ms" field if the given value is not nil.
func (_u *ActivityEventUpdateOne) SetNillableTimeSinceStartMs(v *int64) *ActivityEventUpdateOne {
	if v != nil {
		_u.SetTimeSinceStartMs(*v)
	}
	return _u
}

// AddTimeSinceStartMs adds value to the "time_since_start_ms" field.
func (_u *ActivityEventUpdateOne) AddTimeSinceStartMs(v int64) *ActivityEventUpdateOne {
	_u.mutation.AddTimeSinceStartMs(v)
	return _u
}

// SetDetails sets the "details" field.
func (_u *ActivityEventUpdateOne) SetDetails(v map[string]interface{}) *ActivityEventUpdateOne {
	_u.mutation.SetDetails(v)
	return _u
}

// ClearDetails clears the value of the "details" field.
func (_u *ActivityEventUpdateOne) ClearDetails() *ActivityEventUpdateOne {
	_u.mutation.ClearDetails()
	return _u
}

// Mutation returns the ActivityEventMutation object of the builder.
func (_u *ActivityEventUpdateOne) Mutation() *ActivityEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActivityEventUpdate builder.
func (_u *ActivityEventUpdateOne) Where(ps ...predicate.ActivityEvent) *ActivityEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActivityEventUpdateOne) Select(field string, fields ...string) *ActivityEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActivityEvent entity.
func (_u *ActivityEventUpdateOne) Save(ctx context.Context) (*ActivityEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) SaveX(ctx context.Context) *ActivityEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActivityEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActivityEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActivityEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := activityevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := activityevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.case_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityType(); ok {
		if err := activityevent.ActivityTypeValidator(v); err != nil {
			return &ValidationError{Name: "activity_type", err: fmt.Errorf(`ent: validator failed for field "ActivityEvent.activity_type": %w`, err)}
		}
	}
	return nil
}

func (_u *ActivityEventUpdateOne) sqlSave(ctx context.Context) (_node *ActivityEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(activityevent.Table, activityevent.Columns, sqlgraph.NewFieldSpec(activityevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActivityEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, activityevent.FieldID)
		for _, f := range fields {
			if !activityevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != activityevent.FieldID {
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
		_spec.SetField(activityevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(activityevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(activityevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(activityevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityType(); ok {
		_spec.SetField(activityevent.FieldActivityType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(activityevent.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TimeSinceStartMs(); ok {
		_spec.SetField(activityevent.FieldTimeSinceStartMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTimeSinceStartMs(); ok {
		_spec.AddField(activityevent.FieldTimeSinceStartMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Details(); ok {
		_spec.SetField(activityevent.FieldDetails, field.TypeJSON, value)
	}
	if _u.mutation.DetailsCleared() {
		_spec.ClearField(activityevent.FieldDetails, field.TypeJSON)
	}
	_node = &ActivityEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{activityevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
