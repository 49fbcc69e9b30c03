package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentProgress is the one live learning-path record per student.
// Updates go through a conditional write on the version column.
type StudentProgress struct {
	ent.Schema
}

func (StudentProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").NotEmpty().Unique(),
		field.String("current_node_id").NotEmpty(),
		field.String("current_channel").NotEmpty(),
		field.Float("frustration_level").Default(0),
		field.Int("retry_count").Default(0),
		field.JSON("completed_nodes", []string{}).Optional(),
		field.JSON("channel_used", map[string]string{}).Optional(),
		field.Int64("version").
			Comment("Optimistic-concurrency token, incremented on every write"),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (StudentProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id").Unique(),
	}
}
