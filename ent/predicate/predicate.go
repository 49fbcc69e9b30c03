// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentRun is the predicate function for assessmentrun builders.
type AssessmentRun func(*sql.Selector)

// StudentProgress is the predicate function for studentprogress builders.
type StudentProgress func(*sql.Selector)
