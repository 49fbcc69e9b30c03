// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codecampus/pathway/ent/assessmentrun"
)

// AssessmentRunCreate is the builder for creating a AssessmentRun entity.
type AssessmentRunCreate struct {
	config
	mutation *AssessmentRunMutation
	hooks    []Hook
}

// SetRunID sets the "run_id" field.
func (_c *AssessmentRunCreate) SetRunID(v string) *AssessmentRunCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AssessmentRunCreate) SetStudentID(v string) *AssessmentRunCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *AssessmentRunCreate) SetNodeID(v string) *AssessmentRunCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssessmentRunCreate) SetStatus(v string) *AssessmentRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *AssessmentRunCreate) SetPayload(v map[string]interface{}) *AssessmentRunCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (_c *AssessmentRunCreate) SetEnqueuedAt(v time.Time) *AssessmentRunCreate {
	_c.mutation.SetEnqueuedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AssessmentRunCreate) SetCompletedAt(v time.Time) *AssessmentRunCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AssessmentRunCreate) SetNillableCompletedAt(v *time.Time) *AssessmentRunCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the AssessmentRunMutation object of the builder.
func (_c *AssessmentRunCreate) Mutation() *AssessmentRunMutation {
	return _c.mutation
}

// Save creates the AssessmentRun in the database.
func (_c *AssessmentRunCreate) Save(ctx context.Context) (*AssessmentRun, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentRunCreate) SaveX(ctx context.Context) *AssessmentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentRunCreate) check() error {
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "AssessmentRun.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := assessmentrun.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AssessmentRun.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := assessmentrun.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "AssessmentRun.node_id"`)}
	}
	if v, ok := _c.mutation.NodeID(); ok {
		if err := assessmentrun.NodeIDValidator(v); err != nil {
			return &ValidationError{Name: "node_id", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.node_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AssessmentRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assessmentrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AssessmentRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "AssessmentRun.payload"`)}
	}
	if _, ok := _c.mutation.EnqueuedAt(); !ok {
		return &ValidationError{Name: "enqueued_at", err: errors.New(`ent: missing required field "AssessmentRun.enqueued_at"`)}
	}
	return nil
}

func (_c *AssessmentRunCreate) sqlSave(ctx context.Context) (*AssessmentRun, error) {
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

func (_c *AssessmentRunCreate) createSpec() (*AssessmentRun, *sqlgraph.CreateSpec) {
	var (
		_node = &AssessmentRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessmentrun.Table, sqlgraph.NewFieldSpec(assessmentrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(assessmentrun.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(assessmentrun.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(assessmentrun.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assessmentrun.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(assessmentrun.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.EnqueuedAt(); ok {
		_spec.SetField(assessmentrun.FieldEnqueuedAt, field.TypeTime, value)
		_node.EnqueuedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(assessmentrun.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// AssessmentRunCreateBulk is the builder for creating many AssessmentRun entities in bulk.
type AssessmentRunCreateBulk struct {
	config
	err      error
	builders []*AssessmentRunCreate
}

// Save creates the AssessmentRun entities in the database.
func (_c *AssessmentRunCreateBulk) Save(ctx context.Context) ([]*AssessmentRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AssessmentRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentRunMutation)
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
func (_c *AssessmentRunCreateBulk) SaveX(ctx context.Context) []*AssessmentRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
