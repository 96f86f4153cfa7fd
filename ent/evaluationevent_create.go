// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"oscesim/ent/evaluationevent"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// EvaluationEventCreate is the builder for creating a EvaluationEvent entity.
type EvaluationEventCreate struct {
	config
	mutation *EvaluationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *EvaluationEventCreate) SetSequence(v int64) *EvaluationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EvaluationEventCreate) SetTimestamp(v time.Time) *EvaluationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableTimestamp(v *time.Time) *EvaluationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetReportID sets the "report_id" field.
func (_c *EvaluationEventCreate) SetReportID(v string) *EvaluationEventCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *EvaluationEventCreate) SetSessionID(v string) *EvaluationEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EvaluationEventCreate) SetUserID(v string) *EvaluationEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *EvaluationEventCreate) SetNillableUserID(v *string) *EvaluationEventCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *EvaluationEventCreate) SetCaseID(v string) *EvaluationEventCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetStudentDiagnosis sets the "student_diagnosis" field.
func (_c *EvaluationEventCreate) SetStudentDiagnosis(v string) *EvaluationEventCreate {
	_c.mutation.SetStudentDiagnosis(v)
	return _c
}

// SetActualDiagnosis sets the "actual_diagnosis" field.
func (_c *EvaluationEventCreate) SetActualDiagnosis(v string) *EvaluationEventCreate {
	_c.mutation.SetActualDiagnosis(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *EvaluationEventCreate) SetCorrect(v bool) *EvaluationEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *EvaluationEventCreate) SetScores(v map[string]interface{}) *EvaluationEventCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetCategoryScores sets the "category_scores" field.
func (_c *EvaluationEventCreate) SetCategoryScores(v map[string]interface{}) *EvaluationEventCreate {
	_c.mutation.SetCategoryScores(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *EvaluationEventCreate) SetFeedback(v string) *EvaluationEventCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// Mutation returns the EvaluationEventMutation object of the builder.
func (_c *EvaluationEventCreate) Mutation() *EvaluationEventMutation {
	return _c.mutation
}

// Save creates the EvaluationEvent in the database.
func (_c *EvaluationEventCreate) Save(ctx context.Context) (*EvaluationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvaluationEventCreate) SaveX(ctx context.Context) *EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvaluationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := evaluationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvaluationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "EvaluationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "EvaluationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "EvaluationEvent.report_id"`)}
	}
	if v, ok := _c.mutation.ReportID(); ok {
		if err := evaluationevent.ReportIDValidator(v); err != nil {
			return &ValidationError{Name: "report_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.report_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "EvaluationEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := evaluationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CaseID(); !ok {
		return &ValidationError{Name: "case_id", err: errors.New(`ent: missing required field "EvaluationEvent.case_id"`)}
	}
	if v, ok := _c.mutation.CaseID(); ok {
		if err := evaluationevent.CaseIDValidator(v); err != nil {
			return &ValidationError{Name: "case_id", err: fmt.Errorf(`ent: validator failed for field "EvaluationEvent.case_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentDiagnosis(); !ok {
		return &ValidationError{Name: "student_diagnosis", err: errors.New(`ent: missing required field "EvaluationEvent.student_diagnosis"`)}
	}
	if _, ok := _c.mutation.ActualDiagnosis(); !ok {
		return &ValidationError{Name: "actual_diagnosis", err: errors.New(`ent: missing required field "EvaluationEvent.actual_diagnosis"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "EvaluationEvent.correct"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "EvaluationEvent.scores"`)}
	}
	if _, ok := _c.mutation.CategoryScores(); !ok {
		return &ValidationError{Name: "category_scores", err: errors.New(`ent: missing required field "EvaluationEvent.category_scores"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "EvaluationEvent.feedback"`)}
	}
	return nil
}

func (_c *EvaluationEventCreate) sqlSave(ctx context.Context) (*EvaluationEvent, error) {
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

func (_c *EvaluationEventCreate) createSpec() (*EvaluationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &EvaluationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evaluationevent.Table, sqlgraph.NewFieldSpec(evaluationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(evaluationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(evaluationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(evaluationevent.FieldReportID, field.TypeString, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(evaluationevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(evaluationevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(evaluationevent.FieldCaseID, field.TypeString, value)
		_node.CaseID = value
	}
	if value, ok := _c.mutation.StudentDiagnosis(); ok {
		_spec.SetField(evaluationevent.FieldStudentDiagnosis, field.TypeString, value)
		_node.StudentDiagnosis = value
	}
	if value, ok := _c.mutation.ActualDiagnosis(); ok {
		_spec.SetField(evaluationevent.FieldActualDiagnosis, field.TypeString, value)
		_node.ActualDiagnosis = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(evaluationevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(evaluationevent.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.CategoryScores(); ok {
		_spec.SetField(evaluationevent.FieldCategoryScores, field.TypeJSON, value)
		_node.CategoryScores = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(evaluationevent.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	return _node, _spec
}

// EvaluationEventCreateBulk is the builder for creating many EvaluationEvent entities in bulk.
type EvaluationEventCreateBulk struct {
	config
	err      error
	builders []*EvaluationEventCreate
}

// Save creates the EvaluationEvent entities in the database.
func (_c *EvaluationEventCreateBulk) Save(ctx context.Context) ([]*EvaluationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*EvaluationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvaluationEventMutation)
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
func (_c *EvaluationEventCreateBulk) SaveX(ctx context.Context) []*EvaluationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvaluationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvaluationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
