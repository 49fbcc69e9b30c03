package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AssessmentRun persists one execution of the three-dimension
// evaluation. The full run document is stored as JSON; the indexed
// columns exist for lookups and history listings.
type AssessmentRun struct {
	ent.Schema
}

func (AssessmentRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").NotEmpty().Unique(),
		field.String("student_id").NotEmpty(),
		field.String("node_id").NotEmpty(),
		field.String("status").NotEmpty(),
		field.JSON("payload", map[string]any{}).
			Comment("Full run document as JSON"),
		field.Time("enqueued_at"),
		field.Time("completed_at").Optional().Nillable(),
	}
}

func (AssessmentRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id").Unique(),
		index.Fields("student_id", "enqueued_at"),
	}
}
