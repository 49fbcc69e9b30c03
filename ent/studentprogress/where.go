// Code generated by ent, DO NOT EDIT.

package studentprogress

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/codecampus/pathway/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldID, id))
}

// StudentID applies equality check predicate on the "student_id" field. It's identical to StudentIDEQ.
func StudentID(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldStudentID, v))
}

// CurrentNodeID applies equality check predicate on the "current_node_id" field. It's identical to CurrentNodeIDEQ.
func CurrentNodeID(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldCurrentNodeID, v))
}

// CurrentChannel applies equality check predicate on the "current_channel" field. It's identical to CurrentChannelEQ.
func CurrentChannel(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldCurrentChannel, v))
}

// FrustrationLevel applies equality check predicate on the "frustration_level" field. It's identical to FrustrationLevelEQ.
func FrustrationLevel(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldFrustrationLevel, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldRetryCount, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldVersion, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// StudentIDEQ applies the EQ predicate on the "student_id" field.
func StudentIDEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldStudentID, v))
}

// StudentIDNEQ applies the NEQ predicate on the "student_id" field.
func StudentIDNEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldStudentID, v))
}

// StudentIDIn applies the In predicate on the "student_id" field.
func StudentIDIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldStudentID, vs...))
}

// StudentIDNotIn applies the NotIn predicate on the "student_id" field.
func StudentIDNotIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldStudentID, vs...))
}

// StudentIDGT applies the GT predicate on the "student_id" field.
func StudentIDGT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldStudentID, v))
}

// StudentIDGTE applies the GTE predicate on the "student_id" field.
func StudentIDGTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldStudentID, v))
}

// StudentIDLT applies the LT predicate on the "student_id" field.
func StudentIDLT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldStudentID, v))
}

// StudentIDLTE applies the LTE predicate on the "student_id" field.
func StudentIDLTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldStudentID, v))
}

// StudentIDContains applies the Contains predicate on the "student_id" field.
func StudentIDContains(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContains(FieldStudentID, v))
}

// StudentIDHasPrefix applies the HasPrefix predicate on the "student_id" field.
func StudentIDHasPrefix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasPrefix(FieldStudentID, v))
}

// StudentIDHasSuffix applies the HasSuffix predicate on the "student_id" field.
func StudentIDHasSuffix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasSuffix(FieldStudentID, v))
}

// StudentIDEqualFold applies the EqualFold predicate on the "student_id" field.
func StudentIDEqualFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEqualFold(FieldStudentID, v))
}

// StudentIDContainsFold applies the ContainsFold predicate on the "student_id" field.
func StudentIDContainsFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContainsFold(FieldStudentID, v))
}

// CurrentNodeIDEQ applies the EQ predicate on the "current_node_id" field.
func CurrentNodeIDEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldCurrentNodeID, v))
}

// CurrentNodeIDNEQ applies the NEQ predicate on the "current_node_id" field.
func CurrentNodeIDNEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldCurrentNodeID, v))
}

// CurrentNodeIDIn applies the In predicate on the "current_node_id" field.
func CurrentNodeIDIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldCurrentNodeID, vs...))
}

// CurrentNodeIDNotIn applies the NotIn predicate on the "current_node_id" field.
func CurrentNodeIDNotIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldCurrentNodeID, vs...))
}

// CurrentNodeIDGT applies the GT predicate on the "current_node_id" field.
func CurrentNodeIDGT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldCurrentNodeID, v))
}

// CurrentNodeIDGTE applies the GTE predicate on the "current_node_id" field.
func CurrentNodeIDGTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldCurrentNodeID, v))
}

// CurrentNodeIDLT applies the LT predicate on the "current_node_id" field.
func CurrentNodeIDLT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldCurrentNodeID, v))
}

// CurrentNodeIDLTE applies the LTE predicate on the "current_node_id" field.
func CurrentNodeIDLTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldCurrentNodeID, v))
}

// CurrentNodeIDContains applies the Contains predicate on the "current_node_id" field.
func CurrentNodeIDContains(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContains(FieldCurrentNodeID, v))
}

// CurrentNodeIDHasPrefix applies the HasPrefix predicate on the "current_node_id" field.
func CurrentNodeIDHasPrefix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasPrefix(FieldCurrentNodeID, v))
}

// CurrentNodeIDHasSuffix applies the HasSuffix predicate on the "current_node_id" field.
func CurrentNodeIDHasSuffix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasSuffix(FieldCurrentNodeID, v))
}

// CurrentNodeIDEqualFold applies the EqualFold predicate on the "current_node_id" field.
func CurrentNodeIDEqualFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEqualFold(FieldCurrentNodeID, v))
}

// CurrentNodeIDContainsFold applies the ContainsFold predicate on the "current_node_id" field.
func CurrentNodeIDContainsFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContainsFold(FieldCurrentNodeID, v))
}

// CurrentChannelEQ applies the EQ predicate on the "current_channel" field.
func CurrentChannelEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldCurrentChannel, v))
}

// CurrentChannelNEQ applies the NEQ predicate on the "current_channel" field.
func CurrentChannelNEQ(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldCurrentChannel, v))
}

// CurrentChannelIn applies the In predicate on the "current_channel" field.
func CurrentChannelIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldCurrentChannel, vs...))
}

// CurrentChannelNotIn applies the NotIn predicate on the "current_channel" field.
func CurrentChannelNotIn(vs ...string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldCurrentChannel, vs...))
}

// CurrentChannelGT applies the GT predicate on the "current_channel" field.
func CurrentChannelGT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldCurrentChannel, v))
}

// CurrentChannelGTE applies the GTE predicate on the "current_channel" field.
func CurrentChannelGTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldCurrentChannel, v))
}

// CurrentChannelLT applies the LT predicate on the "current_channel" field.
func CurrentChannelLT(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldCurrentChannel, v))
}

// CurrentChannelLTE applies the LTE predicate on the "current_channel" field.
func CurrentChannelLTE(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldCurrentChannel, v))
}

// CurrentChannelContains applies the Contains predicate on the "current_channel" field.
func CurrentChannelContains(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContains(FieldCurrentChannel, v))
}

// CurrentChannelHasPrefix applies the HasPrefix predicate on the "current_channel" field.
func CurrentChannelHasPrefix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasPrefix(FieldCurrentChannel, v))
}

// CurrentChannelHasSuffix applies the HasSuffix predicate on the "current_channel" field.
func CurrentChannelHasSuffix(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldHasSuffix(FieldCurrentChannel, v))
}

// CurrentChannelEqualFold applies the EqualFold predicate on the "current_channel" field.
func CurrentChannelEqualFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEqualFold(FieldCurrentChannel, v))
}

// CurrentChannelContainsFold applies the ContainsFold predicate on the "current_channel" field.
func CurrentChannelContainsFold(v string) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldContainsFold(FieldCurrentChannel, v))
}

// FrustrationLevelEQ applies the EQ predicate on the "frustration_level" field.
func FrustrationLevelEQ(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldFrustrationLevel, v))
}

// FrustrationLevelNEQ applies the NEQ predicate on the "frustration_level" field.
func FrustrationLevelNEQ(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldFrustrationLevel, v))
}

// FrustrationLevelIn applies the In predicate on the "frustration_level" field.
func FrustrationLevelIn(vs ...float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldFrustrationLevel, vs...))
}

// FrustrationLevelNotIn applies the NotIn predicate on the "frustration_level" field.
func FrustrationLevelNotIn(vs ...float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldFrustrationLevel, vs...))
}

// FrustrationLevelGT applies the GT predicate on the "frustration_level" field.
func FrustrationLevelGT(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldFrustrationLevel, v))
}

// FrustrationLevelGTE applies the GTE predicate on the "frustration_level" field.
func FrustrationLevelGTE(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldFrustrationLevel, v))
}

// FrustrationLevelLT applies the LT predicate on the "frustration_level" field.
func FrustrationLevelLT(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldFrustrationLevel, v))
}

// FrustrationLevelLTE applies the LTE predicate on the "frustration_level" field.
func FrustrationLevelLTE(v float64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldFrustrationLevel, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldRetryCount, v))
}

// CompletedNodesIsNil applies the IsNil predicate on the "completed_nodes" field.
func CompletedNodesIsNil() predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIsNull(FieldCompletedNodes))
}

// CompletedNodesNotNil applies the NotNil predicate on the "completed_nodes" field.
func CompletedNodesNotNil() predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotNull(FieldCompletedNodes))
}

// ChannelUsedIsNil applies the IsNil predicate on the "channel_used" field.
func ChannelUsedIsNil() predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIsNull(FieldChannelUsed))
}

// ChannelUsedNotNil applies the NotNil predicate on the "channel_used" field.
func ChannelUsedNotNil() predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotNull(FieldChannelUsed))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v int64) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldVersion, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StudentProgress {
	return predicate.StudentProgress(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StudentProgress) predicate.StudentProgress {
	return predicate.StudentProgress(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StudentProgress) predicate.StudentProgress {
	return predicate.StudentProgress(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StudentProgress) predicate.StudentProgress {
	return predicate.StudentProgress(sql.NotPredicates(p))
}
