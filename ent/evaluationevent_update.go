// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"oscesim/ent/evaluationevent"
	"oscesim/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EvaluationEventUpdate is the builder for updating EvaluationEvent entities.
type EvaluationEventUpdate struct {
	config
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdate) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReportID sets the "report_id" field.
func (_u *EvaluationEventUpdate) SetReportID(v string) *EvaluationEventUpdate {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableReportID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EvaluationEventUpdate) SetSessionID(v string) *EvaluationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableSessionID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EvaluationEventUpdate) SetUserID(v string) *EvaluationEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableUserID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EvaluationEventUpdate) ClearUserID() *EvaluationEventUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *EvaluationEventUpdate) SetCaseID(v string) *EvaluationEventUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableCaseID(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStudentDiagnosis sets the "student_diagnosis" field.
func (_u *EvaluationEventUpdate) SetStudentDiagnosis(v string) *EvaluationEventUpdate {
	_u.mutation.SetStudentDiagnosis(v)
	return _u
}

// SetNillableStudentDiagnosis sets the "student_diagnosis" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableStudentDiagnosis(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetStudentDiagnosis(*v)
	}
	return _u
}

// SetActualDiagnosis sets the "actual_diagnosis" field.
func (_u *EvaluationEventUpdate) SetActualDiagnosis(v string) *EvaluationEventUpdate {
	_u.mutation.SetActualDiagnosis(v)
	return _u
}

// SetNillableActualDiagnosis sets the "actual_diagnosis" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableActualDiagnosis(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetActualDiagnosis(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *EvaluationEventUpdate) SetCorrect(v bool) *EvaluationEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableCorrect(v *bool) *EvaluationEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *EvaluationEventUpdate) SetScores(v map[string]interface{}) *EvaluationEventUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *EvaluationEventUpdate) SetCategoryScores(v map[string]interface{}) *EvaluationEventUpdate {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *EvaluationEventUpdate) SetFeedback(v string) *EvaluationEventUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *EvaluationEventUpdate) SetNillableFeedback(v *string) *EvaluationEventUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdate) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EvaluationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EvaluationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdate) check() error {
	if v, ok := _u.mutation.ReportID(); ok {
		if err := evaluationevent.ReportIDValidator(v); err != nil {
			return &ValidationError{Name: "report_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.report_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := evaluationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := evaluationevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.case_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(evaluationevent.FieldReportID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(evaluationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(evaluationevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(evaluationevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(evaluationevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentDiagnosis(); ok {
		_spec.SetField(evaluationevent.FieldStudentDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActualDiagnosis(); ok {
		_spec.SetField(evaluationevent.FieldActualDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(evaluationevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(evaluationevent.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(evaluationevent.FieldCategoryScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(evaluationevent.FieldFeedback, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EvaluationEventUpdateOne is the builder for updating a single EvaluationEvent entity.
type EvaluationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EvaluationEventMutation
}

// SetReportID sets the "report_id" field.
func (_u *EvaluationEventUpdateOne) SetReportID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetReportID(v)
	return _u
}

// SetNillableReportID sets the "report_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableReportID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetReportID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *EvaluationEventUpdateOne) SetSessionID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableSessionID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EvaluationEventUpdateOne) SetUserID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableUserID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EvaluationEventUpdateOne) ClearUserID() *EvaluationEventUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *EvaluationEventUpdateOne) SetCaseID(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableCaseID(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// SetStudentDiagnosis sets the "student_diagnosis" field.
func (_u *EvaluationEventUpdateOne) SetStudentDiagnosis(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetStudentDiagnosis(v)
	return _u
}

// SetNillableStudentDiagnosis sets the "student_diagnosis" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableStudentDiagnosis(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetStudentDiagnosis(*v)
	}
	return _u
}

// SetActualDiagnosis sets the "actual_diagnosis" field.
func (_u *EvaluationEventUpdateOne) SetActualDiagnosis(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetActualDiagnosis(v)
	return _u
}

// SetNillableActualDiagnosis sets the "actual_diagnosis" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableActualDiagnosis(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetActualDiagnosis(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *EvaluationEventUpdateOne) SetCorrect(v bool) *EvaluationEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableCorrect(v *bool) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetScores sets the "scores" field.
func (_u *EvaluationEventUpdateOne) SetScores(v map[string]interface{}) *EvaluationEventUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// SetCategoryScores sets the "category_scores" field.
func (_u *EvaluationEventUpdateOne) SetCategoryScores(v map[string]interface{}) *EvaluationEventUpdateOne {
	_u.mutation.SetCategoryScores(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *EvaluationEventUpdateOne) SetFeedback(v string) *EvaluationEventUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *EvaluationEventUpdateOne) SetNillableFeedback(v *string) *EvaluationEventUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_u *EvaluationEventUpdateOne) Mutation() *EvaluationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the EvaluationEventUpdate builder.
func (_u *EvaluationEventUpdateOne) Where(ps ...predicate.EvaluationEvent) *EvaluationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EvaluationEventUpdateOne) Select(field string, fields ...string) *EvaluationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated EvaluationEvent entity.
func (_u *EvaluationEventUpdateOne) Save(ctx context.Context) (*EvaluationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) SaveX(ctx context.Context) *EvaluationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EvaluationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EvaluationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EvaluationEventUpdateOne) check() error {
	if v, ok := _u.mutation.ReportID(); ok {
		if err := evaluationevent.ReportIDValidator(v); err != nil {
			return &ValidationError{Name: "report_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.report_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := evaluationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CaseID(); ok {
		if err := evaluationevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.case_id": %w`, err)}
		}
	}
	return nil
}

func (_u *EvaluationEventUpdateOne) sqlSave(ctx context.Context) (_node *EvaluationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(evaluationevent.Table, evaluationevent.Columns, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "EvaluationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, evaluationevent.FieldID)
		for _, f := range fields {
			if !evaluationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != evaluationevent.FieldID {
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
	if value, ok := _u.mutation.ReportID(); ok {
		_spec.SetField(evaluationevent.FieldReportID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(evaluationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(evaluationevent.FieldUserID, field.TypeString, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(evaluationevent.FieldUserID, field.TypeString)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(evaluationevent.FieldCaseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentDiagnosis(); ok {
		_spec.SetField(evaluationevent.FieldStudentDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActualDiagnosis(); ok {
		_spec.SetField(evaluationevent.FieldActualDiagnosis, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(evaluationevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(evaluationevent.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.CategoryScores(); ok {
		_spec.SetField(evaluationevent.FieldCategoryScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(evaluationevent.FieldFeedback, field.TypeString, value)
	}
	_node = &EvaluationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{evaluationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
