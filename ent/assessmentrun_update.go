// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecampus/pathway/ent/assessmentrun"
	"github.com/codecampus/pathway/ent/predicate"
)

// AssessmentRunUpdate is the builder for updating AssessmentRun entities.
type AssessmentRunUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentRunMutation
}

// Where appends a list predicates to the AssessmentRunUpdate builder.
func (_u *AssessmentRunUpdate) Where(ps ...predicate.AssessmentRun) *AssessmentRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *AssessmentRunUpdate) SetRunID(v string) *AssessmentRunUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AssessmentRunUpdate) SetNillableRunID(v *string) *AssessmentRunUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AssessmentRunUpdate) SetStudentID(v string) *AssessmentRunUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AssessmentRunUpdate) SetNillableStudentID(v *string) *AssessmentRunUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *AssessmentRunUpdate) SetNodeID(v string) *AssessmentRunUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *AssessmentRunUpdate) SetNillableNodeID(v *string) *AssessmentRunUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentRunUpdate) SetStatus(v string) *AssessmentRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentRunUpdate) SetNillableStatus(v *string) *AssessmentRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AssessmentRunUpdate) SetPayload(v map[string]interface{}) *AssessmentRunUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_u *AssessmentRunUpdate) SetEnqueuedAt(v time.Time) *AssessmentRunUpdate {
	_u.mutation.SetEnqueuedAt(v)
	return _u
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_u *AssessmentRunUpdate) SetNillableEnqueuedAt(v *time.Time) *AssessmentRunUpdate {
	if v != nil {
		_u.SetEnqueuedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentRunUpdate) SetCompletedAt(v time.Time) *AssessmentRunUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentRunUpdate) SetNillableCompletedAt(v *time.Time) *AssessmentRunUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AssessmentRunUpdate) ClearCompletedAt() *AssessmentRunUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AssessmentRunMutation object of the builder.
func (_u *AssessmentRunUpdate) Mutation() *AssessmentRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentRunUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := assessmentrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := assessmentrun.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := assessmentrun.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := assessmentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentrun.Table, assessmentrun.Columns, sqlgraph.NewFieldSpec(assessmentrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(assessmentrun.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(assessmentrun.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(assessmentrun.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(assessmentrun.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.EnqueuedAt(); ok {
		_spec.SetField(assessmentrun.FieldEnqueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(assessmentrun.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentRunUpdateOne is the builder for updating a single AssessmentRun entity.
type AssessmentRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentRunMutation
}

// SetRunID sets the "run_id" field.
func (_u *AssessmentRunUpdateOne) SetRunID(v string) *AssessmentRunUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *AssessmentRunUpdateOne) SetNillableRunID(v *string) *AssessmentRunUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AssessmentRunUpdateOne) SetStudentID(v string) *AssessmentRunUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AssessmentRunUpdateOne) SetNillableStudentID(v *string) *AssessmentRunUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *AssessmentRunUpdateOne) SetNodeID(v string) *AssessmentRunUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *AssessmentRunUpdateOne) SetNillableNodeID(v *string) *AssessmentRunUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssessmentRunUpdateOne) SetStatus(v string) *AssessmentRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssessmentRunUpdateOne) SetNillableStatus(v *string) *AssessmentRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *AssessmentRunUpdateOne) SetPayload(v map[string]interface{}) *AssessmentRunUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_u *AssessmentRunUpdateOne) SetEnqueuedAt(v time.Time) *AssessmentRunUpdateOne {
	_u.mutation.SetEnqueuedAt(v)
	return _u
}

// SetNillableEnqueuedAt sets the "enqueued_at" field if the given value is not nil.
func (_u *AssessmentRunUpdateOne) SetNillableEnqueuedAt(v *time.Time) *AssessmentRunUpdateOne {
	if v != nil {
		_u.SetEnqueuedAt(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AssessmentRunUpdateOne) SetCompletedAt(v time.Time) *AssessmentRunUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AssessmentRunUpdateOne) SetNillableCompletedAt(v *time.Time) *AssessmentRunUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AssessmentRunUpdateOne) ClearCompletedAt() *AssessmentRunUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the AssessmentRunMutation object of the builder.
func (_u *AssessmentRunUpdateOne) Mutation() *AssessmentRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentRunUpdate builder.
func (_u *AssessmentRunUpdateOne) Where(ps ...predicate.AssessmentRun) *AssessmentRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentRunUpdateOne) Select(field string, fields ...string) *AssessmentRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AssessmentRun entity.
func (_u *AssessmentRunUpdateOne) Save(ctx context.Context) (*AssessmentRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentRunUpdateOne) SaveX(ctx context.Context) *AssessmentRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentRunUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := assessmentrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentID(); ok {
		if err := assessmentrun.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NodeID(); ok {
		if err := assessmentrun.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := assessmentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentRunUpdateOne) sqlSave(ctx context.Context) (_node *AssessmentRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessmentrun.Table, assessmentrun.Columns, sqlgraph.NewFieldSpec(assessmentrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AssessmentRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessmentrun.FieldID)
		for _, f := range fields {
			if !assessmentrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessmentrun.FieldID {
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
		_spec.SetField(assessmentrun.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(assessmentrun.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(assessmentrun.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assessmentrun.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(assessmentrun.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.EnqueuedAt(); ok {
		_spec.SetField(assessmentrun.FieldEnqueuedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentrun.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(assessmentrun.FieldCompletedAt, field.TypeTime)
	}
	_node = &AssessmentRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessmentrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
