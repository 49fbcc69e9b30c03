// Code generated by ent, DO NOT EDIT.

package studentprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studentprogress type in the database.
	Label = "student_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldStudentID holds the string denoting the student_id field in the database.
	FieldStudentID = "student_id"
	// FieldCurrentNodeID holds the string denoting the current_node_id field in the database.
	FieldCurrentNodeID = "current_node_id"
	// FieldCurrentChannel holds the string denoting the current_channel field in the database.
	FieldCurrentChannel = "current_channel"
	// FieldFrustrationLevel holds the string denoting the frustration_level field in the database.
	FieldFrustrationLevel = "frustration_level"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldCompletedNodes holds the string denoting the completed_nodes field in the database.
	FieldCompletedNodes = "completed_nodes"
	// FieldChannelUsed holds the string denoting the channel_used field in the database.
	FieldChannelUsed = "channel_used"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the studentprogress in the database.
	Table = "student_progresses"
)

// Columns holds all SQL columns for studentprogress fields.
var Columns = []string{
	FieldID,
	FieldStudentID,
	FieldCurrentNodeID,
	FieldCurrentChannel,
	FieldFrustrationLevel,
	FieldRetryCount,
	FieldCompletedNodes,
	FieldChannelUsed,
	FieldVersion,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	StudentIDValidator func(string) error
	// CurrentNodeIDValidator is a validator for the "current_node_id" field. It is called by the builders before save.
	CurrentNodeIDValidator func(string) error
	// CurrentChannelValidator is a validator for the "current_channel" field. It is called by the builders before save.
	CurrentChannelValidator func(string) error
	// DefaultFrustrationLevel holds the default value on creation for the "frustration_level" field.
	DefaultFrustrationLevel float64
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StudentProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByStudentID orders the results by the student_id field.
func ByStudentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentID, opts...).ToFunc()
}

// ByCurrentNodeID orders the results by the current_node_id field.
func ByCurrentNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentNodeID, opts...).ToFunc()
}

// ByCurrentChannel orders the results by the current_channel field.
func ByCurrentChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentChannel, opts...).ToFunc()
}

// ByFrustrationLevel orders the results by the frustration_level field.
func ByFrustrationLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFrustrationLevel, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
