// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/codecampus/pathway/ent/predicate"
	"github.com/codecampus/pathway/ent/studentprogress"
)

// StudentProgressUpdate is the builder for updating StudentProgress entities.
type StudentProgressUpdate struct {
	config
	hooks    []Hook
	mutation *StudentProgressMutation
}

// Where appends a list predicates to the StudentProgressUpdate builder.
func (_u *StudentProgressUpdate) Where(ps ...predicate.StudentProgress) *StudentProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *StudentProgressUpdate) SetStudentID(v string) *StudentProgressUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableStudentID(v *string) *StudentProgressUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetCurrentNodeID sets the "current_node_id" field.
func (_u *StudentProgressUpdate) SetCurrentNodeID(v string) *StudentProgressUpdate {
	_u.mutation.SetCurrentNodeID(v)
	return _u
}

// SetNillableCurrentNodeID sets the "current_node_id" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableCurrentNodeID(v *string) *StudentProgressUpdate {
	if v != nil {
		_u.SetCurrentNodeID(*v)
	}
	return _u
}

// SetCurrentChannel sets the "current_channel" field.
func (_u *StudentProgressUpdate) SetCurrentChannel(v string) *StudentProgressUpdate {
	_u.mutation.SetCurrentChannel(v)
	return _u
}

// SetNillableCurrentChannel sets the "current_channel" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableCurrentChannel(v *string) *StudentProgressUpdate {
	if v != nil {
		_u.SetCurrentChannel(*v)
	}
	return _u
}

// SetFrustrationLevel sets the "frustration_level" field.
func (_u *StudentProgressUpdate) SetFrustrationLevel(v float64) *StudentProgressUpdate {
	_u.mutation.ResetFrustrationLevel()
	_u.mutation.SetFrustrationLevel(v)
	return _u
}

// SetNillableFrustrationLevel sets the "frustration_level" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableFrustrationLevel(v *float64) *StudentProgressUpdate {
	if v != nil {
		_u.SetFrustrationLevel(*v)
	}
	return _u
}

// AddFrustrationLevel adds value to the "frustration_level" field.
func (_u *StudentProgressUpdate) AddFrustrationLevel(v float64) *StudentProgressUpdate {
	_u.mutation.AddFrustrationLevel(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *StudentProgressUpdate) SetRetryCount(v int) *StudentProgressUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableRetryCount(v *int) *StudentProgressUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *StudentProgressUpdate) AddRetryCount(v int) *StudentProgressUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCompletedNodes sets the "completed_nodes" field.
func (_u *StudentProgressUpdate) SetCompletedNodes(v []string) *StudentProgressUpdate {
	_u.mutation.SetCompletedNodes(v)
	return _u
}

// AppendCompletedNodes appends value to the "completed_nodes" field.
func (_u *StudentProgressUpdate) AppendCompletedNodes(v []string) *StudentProgressUpdate {
	_u.mutation.AppendCompletedNodes(v)
	return _u
}

// ClearCompletedNodes clears the value of the "completed_nodes" field.
func (_u *StudentProgressUpdate) ClearCompletedNodes() *StudentProgressUpdate {
	_u.mutation.ClearCompletedNodes()
	return _u
}

// SetChannelUsed sets the "channel_used" field.
func (_u *StudentProgressUpdate) SetChannelUsed(v map[string]string) *StudentProgressUpdate {
	_u.mutation.SetChannelUsed(v)
	return _u
}

// ClearChannelUsed clears the value of the "channel_used" field.
func (_u *StudentProgressUpdate) ClearChannelUsed() *StudentProgressUpdate {
	_u.mutation.ClearChannelUsed()
	return _u
}

// SetVersion sets the "version" field.
func (_u *StudentProgressUpdate) SetVersion(v int64) *StudentProgressUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableVersion(v *int64) *StudentProgressUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *StudentProgressUpdate) AddVersion(v int64) *StudentProgressUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProgressUpdate) SetUpdatedAt(v time.Time) *StudentProgressUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *StudentProgressUpdate) SetNillableUpdatedAt(v *time.Time) *StudentProgressUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the StudentProgressMutation object of the builder.
func (_u *StudentProgressUpdate) Mutation() *StudentProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProgressUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := studentprogress.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentProgress.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentNodeID(); ok {
		if err := studentprogress.CurrentNodeIDValidator(v); err != nil {
			return &ValidationError{Name: "current_node_id", err: fmt.Errorf(`ent: validator failed for field "StudentProgress.current_node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentChannel(); ok {
		if err := studentprogress.CurrentChannelValidator(v); err != nil {
			return &ValidationError{Name: "current_channel", err: fmt.Errorf(`ent: validator failed for field "StudentProgress.current_channel": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprogress.Table, studentprogress.Columns, sqlgraph.NewFieldSpec(studentprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(studentprogress.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentNodeID(); ok {
		_spec.SetField(studentprogress.FieldCurrentNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentChannel(); ok {
		_spec.SetField(studentprogress.FieldCurrentChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrustrationLevel(); ok {
		_spec.SetField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFrustrationLevel(); ok {
		_spec.AddField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(studentprogress.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(studentprogress.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedNodes(); ok {
		_spec.SetField(studentprogress.FieldCompletedNodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedNodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentprogress.FieldCompletedNodes, value)
		})
	}
	if _u.mutation.CompletedNodesCleared() {
		_spec.ClearField(studentprogress.FieldCompletedNodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChannelUsed(); ok {
		_spec.SetField(studentprogress.FieldChannelUsed, field.TypeJSON, value)
	}
	if _u.mutation.ChannelUsedCleared() {
		_spec.ClearField(studentprogress.FieldChannelUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(studentprogress.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(studentprogress.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentProgressUpdateOne is the builder for updating a single StudentProgress entity.
type StudentProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentProgressMutation
}

// SetStudentID sets the "student_id" field.
func (_u *StudentProgressUpdateOne) SetStudentID(v string) *StudentProgressUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableStudentID(v *string) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetCurrentNodeID sets the "current_node_id" field.
func (_u *StudentProgressUpdateOne) SetCurrentNodeID(v string) *StudentProgressUpdateOne {
	_u.mutation.SetCurrentNodeID(v)
	return _u
}

// SetNillableCurrentNodeID sets the "current_node_id" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableCurrentNodeID(v *string) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetCurrentNodeID(*v)
	}
	return _u
}

// SetCurrentChannel sets the "current_channel" field.
func (_u *StudentProgressUpdateOne) SetCurrentChannel(v string) *StudentProgressUpdateOne {
	_u.mutation.SetCurrentChannel(v)
	return _u
}

// SetNillableCurrentChannel sets the "current_channel" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableCurrentChannel(v *string) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetCurrentChannel(*v)
	}
	return _u
}

// SetFrustrationLevel sets the "frustration_level" field.
func (_u *StudentProgressUpdateOne) SetFrustrationLevel(v float64) *StudentProgressUpdateOne {
	_u.mutation.ResetFrustrationLevel()
	_u.mutation.SetFrustrationLevel(v)
	return _u
}

// SetNillableFrustrationLevel sets the "frustration_level" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableFrustrationLevel(v *float64) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetFrustrationLevel(*v)
	}
	return _u
}

// AddFrustrationLevel adds value to the "frustration_level" field.
func (_u *StudentProgressUpdateOne) AddFrustrationLevel(v float64) *StudentProgressUpdateOne {
	_u.mutation.AddFrustrationLevel(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *StudentProgressUpdateOne) SetRetryCount(v int) *StudentProgressUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableRetryCount(v *int) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *StudentProgressUpdateOne) AddRetryCount(v int) *StudentProgressUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetCompletedNodes sets the "completed_nodes" field.
func (_u *StudentProgressUpdateOne) SetCompletedNodes(v []string) *StudentProgressUpdateOne {
	_u.mutation.SetCompletedNodes(v)
	return _u
}

// AppendCompletedNodes appends value to the "completed_nodes" field.
func (_u *StudentProgressUpdateOne) AppendCompletedNodes(v []string) *StudentProgressUpdateOne {
	_u.mutation.AppendCompletedNodes(v)
	return _u
}

// ClearCompletedNodes clears the value of the "completed_nodes" field.
func (_u *StudentProgressUpdateOne) ClearCompletedNodes() *StudentProgressUpdateOne {
	_u.mutation.ClearCompletedNodes()
	return _u
}

// SetChannelUsed sets the "channel_used" field.
func (_u *StudentProgressUpdateOne) SetChannelUsed(v map[string]string) *StudentProgressUpdateOne {
	_u.mutation.SetChannelUsed(v)
	return _u
}

// ClearChannelUsed clears the value of the "channel_used" field.
func (_u *StudentProgressUpdateOne) ClearChannelUsed() *StudentProgressUpdateOne {
	_u.mutation.ClearChannelUsed()
	return _u
}

// SetVersion sets the "version" field.
func (_u *StudentProgressUpdateOne) SetVersion(v int64) *StudentProgressUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableVersion(v *int64) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *StudentProgressUpdateOne) AddVersion(v int64) *StudentProgressUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProgressUpdateOne) SetUpdatedAt(v time.Time) *StudentProgressUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *StudentProgressUpdateOne) SetNillableUpdatedAt(v *time.Time) *StudentProgressUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the StudentProgressMutation object of the builder.
func (_u *StudentProgressUpdateOne) Mutation() *StudentProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentProgressUpdate builder.
func (_u *StudentProgressUpdateOne) Where(ps ...predicate.StudentProgress) *StudentProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentProgressUpdateOne) Select(field string, fields ...string) *StudentProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentProgress entity.
func (_u *StudentProgressUpdateOne) Save(ctx context.Context) (*StudentProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProgressUpdateOne) SaveX(ctx context.Context) *StudentProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProgressUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := studentprogress.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "StudentProgress.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentNodeID(); ok {
		if err := studentprogress.CurrentNodeIDValidator(v); err != nil {
			return &ValidationError{Name: "current_node_id", err: fmt.Errorf(`ent: validator failed for field "StudentProgress.current_node_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CurrentChannel(); ok {
		if err := studentprogress.CurrentChannelValidator(v); err != nil {
			return &ValidationError{Name: "current_channel", err: fmt.Errorf(`ent: validator failed for field "StudentProgress.current_channel": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentProgressUpdateOne) sqlSave(ctx context.Context) (_node *StudentProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprogress.Table, studentprogress.Columns, sqlgraph.NewFieldSpec(studentprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentprogress.FieldID)
		for _, f := range fields {
			if !studentprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentprogress.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(studentprogress.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentNodeID(); ok {
		_spec.SetField(studentprogress.FieldCurrentNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CurrentChannel(); ok {
		_spec.SetField(studentprogress.FieldCurrentChannel, field.TypeString, value)
	}
	if value, ok := _u.mutation.FrustrationLevel(); ok {
		_spec.SetField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFrustrationLevel(); ok {
		_spec.AddField(studentprogress.FieldFrustrationLevel, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(studentprogress.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(studentprogress.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedNodes(); ok {
		_spec.SetField(studentprogress.FieldCompletedNodes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedNodes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentprogress.FieldCompletedNodes, value)
		})
	}
	if _u.mutation.CompletedNodesCleared() {
		_spec.ClearField(studentprogress.FieldCompletedNodes, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChannelUsed(); ok {
		_spec.SetField(studentprogress.FieldChannelUsed, field.TypeJSON, value)
	}
	if _u.mutation.ChannelUsedCleared() {
		_spec.ClearField(studentprogress.FieldChannelUsed, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(studentprogress.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(studentprogress.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprogress.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &StudentProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
