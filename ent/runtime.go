// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codecampus/pathway/ent/assessmentrun"
	"github.com/codecampus/pathway/ent/schema"
	"github.com/codecampus/pathway/ent/studentprogress"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentrunFields := schema.AssessmentRun{}.Fields()
	_ = assessmentrunFields
	// assessmentrunDescRunID is the schema descriptor for run_id field.
	assessmentrunDescRunID := assessmentrunFields[0].Descriptor()
	// assessmentrun.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	assessmentrun.RunIDValidator = assessmentrunDescRunID.Validators[0].(func(string) error)
	// assessmentrunDescStudentID is the schema descriptor for student_id field.
	assessmentrunDescStudentID := assessmentrunFields[1].Descriptor()
	// assessmentrun.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	assessmentrun.StudentIDValidator = assessmentrunDescStudentID.Validators[0].(func(string) error)
	// assessmentrunDescNodeID is the schema descriptor for node_id field.
	assessmentrunDescNodeID := assessmentrunFields[2].Descriptor()
	// assessmentrun.NodeIDValidator is a validator for the "node_id" field. It is called by the builders before save.
	assessmentrun.NodeIDValidator = assessmentrunDescNodeID.Validators[0].(func(string) error)
	// assessmentrunDescStatus is the schema descriptor for status field.
	assessmentrunDescStatus := assessmentrunFields[3].Descriptor()
	// assessmentrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	assessmentrun.StatusValidator = assessmentrunDescStatus.Validators[0].(func(string) error)
	studentprogressFields := schema.StudentProgress{}.Fields()
	_ = studentprogressFields
	// studentprogressDescStudentID is the schema descriptor for student_id field.
	studentprogressDescStudentID := studentprogressFields[0].Descriptor()
	// studentprogress.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	studentprogress.StudentIDValidator = studentprogressDescStudentID.Validators[0].(func(string) error)
	// studentprogressDescCurrentNodeID is the schema descriptor for current_node_id field.
	studentprogressDescCurrentNodeID := studentprogressFields[1].Descriptor()
	// studentprogress.CurrentNodeIDValidator is a validator for the "current_node_id" field. It is called by the builders before save.
	studentprogress.CurrentNodeIDValidator = studentprogressDescCurrentNodeID.Validators[0].(func(string) error)
	// studentprogressDescCurrentChannel is the schema descriptor for current_channel field.
	studentprogressDescCurrentChannel := studentprogressFields[2].Descriptor()
	// studentprogress.CurrentChannelValidator is a validator for the "current_channel" field. It is called by the builders before save.
	studentprogress.CurrentChannelValidator = studentprogressDescCurrentChannel.Validators[0].(func(string) error)
	// studentprogressDescFrustrationLevel is the schema descriptor for frustration_level field.
	studentprogressDescFrustrationLevel := studentprogressFields[3].Descriptor()
	// studentprogress.DefaultFrustrationLevel holds the default value on creation for the frustration_level field.
	studentprogress.DefaultFrustrationLevel = studentprogressDescFrustrationLevel.Default.(float64)
	// studentprogressDescRetryCount is the schema descriptor for retry_count field.
	studentprogressDescRetryCount := studentprogressFields[4].Descriptor()
	// studentprogress.DefaultRetryCount holds the default value on creation for the retry_count field.
	studentprogress.DefaultRetryCount = studentprogressDescRetryCount.Default.(int)
	// studentprogressDescUpdatedAt is the schema descriptor for updated_at field.
	studentprogressDescUpdatedAt := studentprogressFields[8].Descriptor()
	// studentprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	studentprogress.DefaultUpdatedAt = studentprogressDescUpdatedAt.Default.(func() time.Time)
}
