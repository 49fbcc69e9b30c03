// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/codecampus/pathway/ent/studentprogress"
)

// StudentProgress is the model entity for the StudentProgress schema.
type StudentProgress struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// StudentID holds the value of the "student_id" field.
	StudentID string `json:"student_id,omitempty"`
	// CurrentNodeID holds the value of the "current_node_id" field.
	CurrentNodeID string `json:"current_node_id,omitempty"`
	// CurrentChannel holds the value of the "current_channel" field.
	CurrentChannel string `json:"current_channel,omitempty"`
	// FrustrationLevel holds the value of the "frustration_level" field.
	FrustrationLevel float64 `json:"frustration_level,omitempty"`
	// RetryCount holds the value of the "retry_count" field.
	RetryCount int `json:"retry_count,omitempty"`
	// CompletedNodes holds the value of the "completed_nodes" field.
	CompletedNodes []string `json:"completed_nodes,omitempty"`
	// ChannelUsed holds the value of the "channel_used" field.
	ChannelUsed map[string]string `json:"channel_used,omitempty"`
	// Optimistic-concurrency token, incremented on every write
	Version int64 `json:"version,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentProgress) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentprogress.FieldCompletedNodes, studentprogress.FieldChannelUsed:
			values[i] = new([]byte)
		case studentprogress.FieldFrustrationLevel:
			values[i] = new(sql.NullFloat64)
		case studentprogress.FieldID, studentprogress.FieldRetryCount, studentprogress.FieldVersion:
			values[i] = new(sql.NullInt64)
		case studentprogress.FieldStudentID, studentprogress.FieldCurrentNodeID, studentprogress.FieldCurrentChannel:
			values[i] = new(sql.NullString)
		case studentprogress.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentProgress fields.
func (_m *StudentProgress) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentprogress.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studentprogress.FieldStudentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field student_id", values[i])
			} else if value.Valid {
				_m.StudentID = value.String
			}
		case studentprogress.FieldCurrentNodeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_node_id", values[i])
			} else if value.Valid {
				_m.CurrentNodeID = value.String
			}
		case studentprogress.FieldCurrentChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_channel", values[i])
			} else if value.Valid {
				_m.CurrentChannel = value.String
			}
		case studentprogress.FieldFrustrationLevel:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field frustration_level", values[i])
			} else if value.Valid {
				_m.FrustrationLevel = value.Float64
			}
		case studentprogress.FieldRetryCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field retry_count", values[i])
			} else if value.Valid {
				_m.RetryCount = int(value.Int64)
			}
		case studentprogress.FieldCompletedNodes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_nodes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedNodes); err != nil {
					return fmt.Errorf("unmarshal field completed_nodes: %w", err)
				}
			}
		case studentprogress.FieldChannelUsed:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field channel_used", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ChannelUsed); err != nil {
					return fmt.Errorf("unmarshal field channel_used: %w", err)
				}
			}
		case studentprogress.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.Int64
			}
		case studentprogress.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentProgress.
// This includes values selected through modifiers, order, etc.
func (_m *StudentProgress) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudentProgress.
// Note that you need to call StudentProgress.Unwrap() before calling this method if this StudentProgress
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentProgress) Update() *StudentProgressUpdateOne {
	return NewStudentProgressClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentProgress entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentProgress) Unwrap() *StudentProgress {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentProgress is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentProgress) String() string {
	var builder strings.Builder
	builder.WriteString("StudentProgress(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("student_id=")
	builder.WriteString(_m.StudentID)
	builder.WriteString(", ")
	builder.WriteString("current_node_id=")
	builder.WriteString(_m.CurrentNodeID)
	builder.WriteString(", ")
	builder.WriteString("current_channel=")
	builder.WriteString(_m.CurrentChannel)
	builder.WriteString(", ")
	builder.WriteString("frustration_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.FrustrationLevel))
	builder.WriteString(", ")
	builder.WriteString("retry_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.RetryCount))
	builder.WriteString(", ")
	builder.WriteString("completed_nodes=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedNodes))
	builder.WriteString(", ")
	builder.WriteString("channel_used=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChannelUsed))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudentProgresses is a parsable slice of StudentProgress.
type StudentProgresses []*StudentProgress
