// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentRunsColumns holds the columns for the "assessment_runs" table.
	AssessmentRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "run_id", Type: field.TypeString, Unique: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "node_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "enqueued_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
	}
	// AssessmentRunsTable holds the schema information for the "assessment_runs" table.
	AssessmentRunsTable = &schema.Table{
		Name:       "assessment_runs",
		Columns:    AssessmentRunsColumns,
		PrimaryKey: []*schema.Column{AssessmentRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentrun_run_id",
				Unique:  true,
				Columns: []*schema.Column{AssessmentRunsColumns[1]},
			},
			{
				Name:    "assessmentrun_student_id_enqueued_at",
				Unique:  false,
				Columns: []*schema.Column{AssessmentRunsColumns[2], AssessmentRunsColumns[6]},
			},
		},
	}
	// StudentProgressesColumns holds the columns for the "student_progresses" table.
	StudentProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString, Unique: true},
		{Name: "current_node_id", Type: field.TypeString},
		{Name: "current_channel", Type: field.TypeString},
		{Name: "frustration_level", Type: field.TypeFloat64, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "completed_nodes", Type: field.TypeJSON, Nullable: true},
		{Name: "channel_used", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeInt64},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// StudentProgressesTable holds the schema information for the "student_progresses" table.
	StudentProgressesTable = &schema.Table{
		Name:       "student_progresses",
		Columns:    StudentProgressesColumns,
		PrimaryKey: []*schema.Column{StudentProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "studentprogress_student_id",
				Unique:  true,
				Columns: []*schema.Column{StudentProgressesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentRunsTable,
		StudentProgressesTable,
	}
)

func init() {
}
