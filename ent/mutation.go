// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codecampus/pathway/ent/assessmentrun"
	"github.com/codecampus/pathway/ent/predicate"
	"github.com/codecampus/pathway/ent/studentprogress"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssessmentRun   = "AssessmentRun"
	TypeStudentProgress = "StudentProgress"
)

// AssessmentRunMutation represents an operation that mutates the AssessmentRun nodes in the graph.
type AssessmentRunMutation struct {
	config
	op            Op
	typ           string
	id            *int
	run_id        *string
	student_id    *string
	node_id       *string
	status        *string
	payload       *map[string]interface{}
	enqueued_at   *time.Time
	completed_at  *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*AssessmentRun, error)
	predicates    []predicate.AssessmentRun
}

var _ ent.Mutation = (*AssessmentRunMutation)(nil)

// assessmentrunOption allows management of the mutation configuration using functional options.
type assessmentrunOption func(*AssessmentRunMutation)

// newAssessmentRunMutation creates new mutation for the AssessmentRun entity.
func newAssessmentRunMutation(c config, op Op, opts ...assessmentrunOption) *AssessmentRunMutation {
	m := &AssessmentRunMutation{
		config:        c,
		op:            op,
		typ:           TypeAssessmentRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssessmentRunID sets the ID field of the mutation.
func withAssessmentRunID(id int) assessmentrunOption {
	return func(m *AssessmentRunMutation) {
		var (
			err   error
			once  sync.Once
			value *AssessmentRun
		)
		m.oldValue = func(ctx context.Context) (*AssessmentRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AssessmentRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssessmentRun sets the old AssessmentRun of the mutation.
func withAssessmentRun(node *AssessmentRun) assessmentrunOption {
	return func(m *AssessmentRunMutation) {
		m.oldValue = func(context.Context) (*AssessmentRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssessmentRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssessmentRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssessmentRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssessmentRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AssessmentRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRunID sets the "run_id" field.
func (m *AssessmentRunMutation) SetRunID(s string) {
	m.run_id = &s
}

// RunID returns the value of the "run_id" field in the mutation.
func (m *AssessmentRunMutation) RunID() (r string, exists bool) {
	v := m.run_id
	if v == nil {
		return
	}
	return *v, true
}

// OldRunID returns the old "run_id" field's value of the AssessmentRun entity.
// If the AssessmentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRunMutation) OldRunID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunID: %w", err)
	}
	return oldValue.RunID, nil
}

// ResetRunID resets all changes to the "run_id" field.
func (m *AssessmentRunMutation) ResetRunID() {
	m.run_id = nil
}

// SetStudentID sets the "student_id" field.
func (m *AssessmentRunMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AssessmentRunMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the AssessmentRun entity.
// If the AssessmentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRunMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AssessmentRunMutation) ResetStudentID() {
	m.student_id = nil
}

// SetNodeID sets the "node_id" field.
func (m *AssessmentRunMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *AssessmentRunMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the AssessmentRun entity.
// If the AssessmentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRunMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *AssessmentRunMutation) ResetNodeID() {
	m.node_id = nil
}

// SetStatus sets the "status" field.
func (m *AssessmentRunMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *AssessmentRunMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AssessmentRun entity.
// If the AssessmentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRunMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AssessmentRunMutation) ResetStatus() {
	m.status = nil
}

// SetPayload sets the "payload" field.
func (m *AssessmentRunMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AssessmentRunMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AssessmentRun entity.
// If the AssessmentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRunMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AssessmentRunMutation) ResetPayload() {
	m.payload = nil
}

// SetEnqueuedAt sets the "enqueued_at" field.
func (m *AssessmentRunMutation) SetEnqueuedAt(t time.Time) {
	m.enqueued_at = &t
}

// EnqueuedAt returns the value of the "enqueued_at" field in the mutation.
func (m *AssessmentRunMutation) EnqueuedAt() (r time.Time, exists bool) {
	v := m.enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEnqueuedAt returns the old "enqueued_at" field's value of the AssessmentRun entity.
// If the AssessmentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRunMutation) OldEnqueuedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnqueuedAt: %w", err)
	}
	return oldValue.EnqueuedAt, nil
}

// ResetEnqueuedAt resets all changes to the "enqueued_at" field.
func (m *AssessmentRunMutation) ResetEnqueuedAt() {
	m.enqueued_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *AssessmentRunMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AssessmentRunMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the AssessmentRun entity.
// If the AssessmentRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssessmentRunMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AssessmentRunMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[assessmentrun.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AssessmentRunMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[assessmentrun.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AssessmentRunMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, assessmentrun.FieldCompletedAt)
}

// Where appends a list predicates to the AssessmentRunMutation builder.
func (m *AssessmentRunMutation) Where(ps ...predicate.AssessmentRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssessmentRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssessmentRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AssessmentRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssessmentRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssessmentRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AssessmentRun).
func (m *AssessmentRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssessmentRunMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.run_id != nil {
		fields = append(fields, assessmentrun.FieldRunID)
	}
	if m.student_id != nil {
		fields = append(fields, assessmentrun.FieldStudentID)
	}
	if m.node_id != nil {
		fields = append(fields, assessmentrun.FieldNodeID)
	}
	if m.status != nil {
		fields = append(fields, assessmentrun.FieldStatus)
	}
	if m.payload != nil {
		fields = append(fields, assessmentrun.FieldPayload)
	}
	if m.enqueued_at != nil {
		fields = append(fields, assessmentrun.FieldEnqueuedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, assessmentrun.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssessmentRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assessmentrun.FieldRunID:
		return m.RunID()
	case assessmentrun.FieldStudentID:
		return m.StudentID()
	case assessmentrun.FieldNodeID:
		return m.NodeID()
	case assessmentrun.FieldStatus:
		return m.Status()
	case assessmentrun.FieldPayload:
		return m.Payload()
	case assessmentrun.FieldEnqueuedAt:
		return m.EnqueuedAt()
	case assessmentrun.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssessmentRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assessmentrun.FieldRunID:
		return m.OldRunID(ctx)
	case assessmentrun.FieldStudentID:
		return m.OldStudentID(ctx)
	case assessmentrun.FieldNodeID:
		return m.OldNodeID(ctx)
	case assessmentrun.FieldStatus:
		return m.OldStatus(ctx)
	case assessmentrun.FieldPayload:
		return m.OldPayload(ctx)
	case assessmentrun.FieldEnqueuedAt:
		return m.OldEnqueuedAt(ctx)
	case assessmentrun.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AssessmentRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assessmentrun.FieldRunID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunID(v)
		return nil
	case assessmentrun.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case assessmentrun.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case assessmentrun.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case assessmentrun.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case assessmentrun.FieldEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnqueuedAt(v)
		return nil
	case assessmentrun.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AssessmentRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssessmentRunMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssessmentRunMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssessmentRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AssessmentRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssessmentRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assessmentrun.FieldCompletedAt) {
		fields = append(fields, assessmentrun.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssessmentRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssessmentRunMutation) ClearField(name string) error {
	switch name {
	case assessmentrun.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AssessmentRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssessmentRunMutation) ResetField(name string) error {
	switch name {
	case assessmentrun.FieldRunID:
		m.ResetRunID()
		return nil
	case assessmentrun.FieldStudentID:
		m.ResetStudentID()
		return nil
	case assessmentrun.FieldNodeID:
		m.ResetNodeID()
		return nil
	case assessmentrun.FieldStatus:
		m.ResetStatus()
		return nil
	case assessmentrun.FieldPayload:
		m.ResetPayload()
		return nil
	case assessmentrun.FieldEnqueuedAt:
		m.ResetEnqueuedAt()
		return nil
	case assessmentrun.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown AssessmentRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssessmentRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssessmentRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssessmentRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssessmentRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssessmentRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssessmentRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssessmentRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AssessmentRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssessmentRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AssessmentRun edge %s", name)
}

// StudentProgressMutation represents an operation that mutates the StudentProgress nodes in the graph.
type StudentProgressMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	student_id            *string
	current_node_id       *string
	current_channel       *string
	frustration_level     *float64
	addfrustration_level  *float64
	retry_count           *int
	addretry_count        *int
	completed_nodes       *[]string
	appendcompleted_nodes []string
	channel_used          *map[string]string
	version               *int64
	addversion            *int64
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*StudentProgress, error)
	predicates            []predicate.StudentProgress
}

var _ ent.Mutation = (*StudentProgressMutation)(nil)

// studentprogressOption allows management of the mutation configuration using functional options.
type studentprogressOption func(*StudentProgressMutation)

// newStudentProgressMutation creates new mutation for the StudentProgress entity.
func newStudentProgressMutation(c config, op Op, opts ...studentprogressOption) *StudentProgressMutation {
	m := &StudentProgressMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentProgress,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentProgressID sets the ID field of the mutation.
func withStudentProgressID(id int) studentprogressOption {
	return func(m *StudentProgressMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentProgress
		)
		m.oldValue = func(ctx context.Context) (*StudentProgress, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentProgress.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentProgress sets the old StudentProgress of the mutation.
func withStudentProgress(node *StudentProgress) studentprogressOption {
	return func(m *StudentProgressMutation) {
		m.oldValue = func(context.Context) (*StudentProgress, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentProgressMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentProgressMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentProgressMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentProgressMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentProgress.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStudentID sets the "student_id" field.
func (m *StudentProgressMutation) SetStudentID(s string) {
	m.student_id = &s
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *StudentProgressMutation) StudentID() (r string, exists bool) {
	v := m.student_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldStudentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *StudentProgressMutation) ResetStudentID() {
	m.student_id = nil
}

// SetCurrentNodeID sets the "current_node_id" field.
func (m *StudentProgressMutation) SetCurrentNodeID(s string) {
	m.current_node_id = &s
}

// CurrentNodeID returns the value of the "current_node_id" field in the mutation.
func (m *StudentProgressMutation) CurrentNodeID() (r string, exists bool) {
	v := m.current_node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentNodeID returns the old "current_node_id" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldCurrentNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentNodeID: %w", err)
	}
	return oldValue.CurrentNodeID, nil
}

// ResetCurrentNodeID resets all changes to the "current_node_id" field.
func (m *StudentProgressMutation) ResetCurrentNodeID() {
	m.current_node_id = nil
}

// SetCurrentChannel sets the "current_channel" field.
func (m *StudentProgressMutation) SetCurrentChannel(s string) {
	m.current_channel = &s
}

// CurrentChannel returns the value of the "current_channel" field in the mutation.
func (m *StudentProgressMutation) CurrentChannel() (r string, exists bool) {
	v := m.current_channel
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrentChannel returns the old "current_channel" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldCurrentChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrentChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrentChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrentChannel: %w", err)
	}
	return oldValue.CurrentChannel, nil
}

// ResetCurrentChannel resets all changes to the "current_channel" field.
func (m *StudentProgressMutation) ResetCurrentChannel() {
	m.current_channel = nil
}

// SetFrustrationLevel sets the "frustration_level" field.
func (m *StudentProgressMutation) SetFrustrationLevel(f float64) {
	m.frustration_level = &f
	m.addfrustration_level = nil
}

// FrustrationLevel returns the value of the "frustration_level" field in the mutation.
func (m *StudentProgressMutation) FrustrationLevel() (r float64, exists bool) {
	v := m.frustration_level
	if v == nil {
		return
	}
	return *v, true
}

// OldFrustrationLevel returns the old "frustration_level" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldFrustrationLevel(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFrustrationLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFrustrationLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFrustrationLevel: %w", err)
	}
	return oldValue.FrustrationLevel, nil
}

// AddFrustrationLevel adds f to the "frustration_level" field.
func (m *StudentProgressMutation) AddFrustrationLevel(f float64) {
	if m.addfrustration_level != nil {
		*m.addfrustration_level += f
	} else {
		m.addfrustration_level = &f
	}
}

// AddedFrustrationLevel returns the value that was added to the "frustration_level" field in this mutation.
func (m *StudentProgressMutation) AddedFrustrationLevel() (r float64, exists bool) {
	v := m.addfrustration_level
	if v == nil {
		return
	}
	return *v, true
}

// ResetFrustrationLevel resets all changes to the "frustration_level" field.
func (m *StudentProgressMutation) ResetFrustrationLevel() {
	m.frustration_level = nil
	m.addfrustration_level = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *StudentProgressMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *StudentProgressMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *StudentProgressMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *StudentProgressMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *StudentProgressMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetCompletedNodes sets the "completed_nodes" field.
func (m *StudentProgressMutation) SetCompletedNodes(s []string) {
	m.completed_nodes = &s
	m.appendcompleted_nodes = nil
}

// CompletedNodes returns the value of the "completed_nodes" field in the mutation.
func (m *StudentProgressMutation) CompletedNodes() (r []string, exists bool) {
	v := m.completed_nodes
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedNodes returns the old "completed_nodes" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldCompletedNodes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedNodes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedNodes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedNodes: %w", err)
	}
	return oldValue.CompletedNodes, nil
}

// AppendCompletedNodes adds s to the "completed_nodes" field.
func (m *StudentProgressMutation) AppendCompletedNodes(s []string) {
	m.appendcompleted_nodes = append(m.appendcompleted_nodes, s...)
}

// AppendedCompletedNodes returns the list of values that were appended to the "completed_nodes" field in this mutation.
func (m *StudentProgressMutation) AppendedCompletedNodes() ([]string, bool) {
	if len(m.appendcompleted_nodes) == 0 {
		return nil, false
	}
	return m.appendcompleted_nodes, true
}

// ClearCompletedNodes clears the value of the "completed_nodes" field.
func (m *StudentProgressMutation) ClearCompletedNodes() {
	m.completed_nodes = nil
	m.appendcompleted_nodes = nil
	m.clearedFields[studentprogress.FieldCompletedNodes] = struct{}{}
}

// CompletedNodesCleared returns if the "completed_nodes" field was cleared in this mutation.
func (m *StudentProgressMutation) CompletedNodesCleared() bool {
	_, ok := m.clearedFields[studentprogress.FieldCompletedNodes]
	return ok
}

// ResetCompletedNodes resets all changes to the "completed_nodes" field.
func (m *StudentProgressMutation) ResetCompletedNodes() {
	m.completed_nodes = nil
	m.appendcompleted_nodes = nil
	delete(m.clearedFields, studentprogress.FieldCompletedNodes)
}

// SetChannelUsed sets the "channel_used" field.
func (m *StudentProgressMutation) SetChannelUsed(value map[string]string) {
	m.channel_used = &value
}

// ChannelUsed returns the value of the "channel_used" field in the mutation.
func (m *StudentProgressMutation) ChannelUsed() (r map[string]string, exists bool) {
	v := m.channel_used
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelUsed returns the old "channel_used" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldChannelUsed(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelUsed: %w", err)
	}
	return oldValue.ChannelUsed, nil
}

// ClearChannelUsed clears the value of the "channel_used" field.
func (m *StudentProgressMutation) ClearChannelUsed() {
	m.channel_used = nil
	m.clearedFields[studentprogress.FieldChannelUsed] = struct{}{}
}

// ChannelUsedCleared returns if the "channel_used" field was cleared in this mutation.
func (m *StudentProgressMutation) ChannelUsedCleared() bool {
	_, ok := m.clearedFields[studentprogress.FieldChannelUsed]
	return ok
}

// ResetChannelUsed resets all changes to the "channel_used" field.
func (m *StudentProgressMutation) ResetChannelUsed() {
	m.channel_used = nil
	delete(m.clearedFields, studentprogress.FieldChannelUsed)
}

// SetVersion sets the "version" field.
func (m *StudentProgressMutation) SetVersion(i int64) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *StudentProgressMutation) Version() (r int64, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldVersion(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *StudentProgressMutation) AddVersion(i int64) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *StudentProgressMutation) AddedVersion() (r int64, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *StudentProgressMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudentProgressMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudentProgressMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StudentProgress entity.
// If the StudentProgress object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProgressMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudentProgressMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the StudentProgressMutation builder.
func (m *StudentProgressMutation) Where(ps ...predicate.StudentProgress) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentProgressMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentProgressMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentProgress, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentProgressMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentProgressMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentProgress).
func (m *StudentProgressMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentProgressMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.student_id != nil {
		fields = append(fields, studentprogress.FieldStudentID)
	}
	if m.current_node_id != nil {
		fields = append(fields, studentprogress.FieldCurrentNodeID)
	}
	if m.current_channel != nil {
		fields = append(fields, studentprogress.FieldCurrentChannel)
	}
	if m.frustration_level != nil {
		fields = append(fields, studentprogress.FieldFrustrationLevel)
	}
	if m.retry_count != nil {
		fields = append(fields, studentprogress.FieldRetryCount)
	}
	if m.completed_nodes != nil {
		fields = append(fields, studentprogress.FieldCompletedNodes)
	}
	if m.channel_used != nil {
		fields = append(fields, studentprogress.FieldChannelUsed)
	}
	if m.version != nil {
		fields = append(fields, studentprogress.FieldVersion)
	}
	if m.updated_at != nil {
		fields = append(fields, studentprogress.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentProgressMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentprogress.FieldStudentID:
		return m.StudentID()
	case studentprogress.FieldCurrentNodeID:
		return m.CurrentNodeID()
	case studentprogress.FieldCurrentChannel:
		return m.CurrentChannel()
	case studentprogress.FieldFrustrationLevel:
		return m.FrustrationLevel()
	case studentprogress.FieldRetryCount:
		return m.RetryCount()
	case studentprogress.FieldCompletedNodes:
		return m.CompletedNodes()
	case studentprogress.FieldChannelUsed:
		return m.ChannelUsed()
	case studentprogress.FieldVersion:
		return m.Version()
	case studentprogress.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentProgressMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentprogress.FieldStudentID:
		return m.OldStudentID(ctx)
	case studentprogress.FieldCurrentNodeID:
		return m.OldCurrentNodeID(ctx)
	case studentprogress.FieldCurrentChannel:
		return m.OldCurrentChannel(ctx)
	case studentprogress.FieldFrustrationLevel:
		return m.OldFrustrationLevel(ctx)
	case studentprogress.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case studentprogress.FieldCompletedNodes:
		return m.OldCompletedNodes(ctx)
	case studentprogress.FieldChannelUsed:
		return m.OldChannelUsed(ctx)
	case studentprogress.FieldVersion:
		return m.OldVersion(ctx)
	case studentprogress.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StudentProgress field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProgressMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentprogress.FieldStudentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case studentprogress.FieldCurrentNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentNodeID(v)
		return nil
	case studentprogress.FieldCurrentChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrentChannel(v)
		return nil
	case studentprogress.FieldFrustrationLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFrustrationLevel(v)
		return nil
	case studentprogress.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case studentprogress.FieldCompletedNodes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedNodes(v)
		return nil
	case studentprogress.FieldChannelUsed:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelUsed(v)
		return nil
	case studentprogress.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case studentprogress.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StudentProgress field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentProgressMutation) AddedFields() []string {
	var fields []string
	if m.addfrustration_level != nil {
		fields = append(fields, studentprogress.FieldFrustrationLevel)
	}
	if m.addretry_count != nil {
		fields = append(fields, studentprogress.FieldRetryCount)
	}
	if m.addversion != nil {
		fields = append(fields, studentprogress.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentProgressMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studentprogress.FieldFrustrationLevel:
		return m.AddedFrustrationLevel()
	case studentprogress.FieldRetryCount:
		return m.AddedRetryCount()
	case studentprogress.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProgressMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studentprogress.FieldFrustrationLevel:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFrustrationLevel(v)
		return nil
	case studentprogress.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case studentprogress.FieldVersion:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown StudentProgress numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentProgressMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studentprogress.FieldCompletedNodes) {
		fields = append(fields, studentprogress.FieldCompletedNodes)
	}
	if m.FieldCleared(studentprogress.FieldChannelUsed) {
		fields = append(fields, studentprogress.FieldChannelUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentProgressMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentProgressMutation) ClearField(name string) error {
	switch name {
	case studentprogress.FieldCompletedNodes:
		m.ClearCompletedNodes()
		return nil
	case studentprogress.FieldChannelUsed:
		m.ClearChannelUsed()
		return nil
	}
	return fmt.Errorf("unknown StudentProgress nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentProgressMutation) ResetField(name string) error {
	switch name {
	case studentprogress.FieldStudentID:
		m.ResetStudentID()
		return nil
	case studentprogress.FieldCurrentNodeID:
		m.ResetCurrentNodeID()
		return nil
	case studentprogress.FieldCurrentChannel:
		m.ResetCurrentChannel()
		return nil
	case studentprogress.FieldFrustrationLevel:
		m.ResetFrustrationLevel()
		return nil
	case studentprogress.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case studentprogress.FieldCompletedNodes:
		m.ResetCompletedNodes()
		return nil
	case studentprogress.FieldChannelUsed:
		m.ResetChannelUsed()
		return nil
	case studentprogress.FieldVersion:
		m.ResetVersion()
		return nil
	case studentprogress.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StudentProgress field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentProgressMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentProgressMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentProgressMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentProgressMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentProgressMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentProgressMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentProgressMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown StudentProgress unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentProgressMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown StudentProgress edge %s", name)
}
