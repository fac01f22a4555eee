package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Chunk rows are written only by the worker that completes the owning job,
// in the same transaction as the DONE transition, and never mutated after.
type Chunk struct{ ent.Schema }

func (Chunk) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "doc_chunks"},
	}
}

func (Chunk) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK so we can define a composite unique index
		field.UUID("job_id", uuid.UUID{}).Immutable(),
		field.Int("ordinal").NonNegative().Immutable(),
		field.String("text").NotEmpty().Immutable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("embedding", []float32{}).Immutable(),
		field.Int("token_count").NonNegative().Default(0).Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Chunk) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", IngestJob.Type).
			Ref("chunks").
			Field("job_id").
			Unique().
			Required().
			Immutable(),
	}
}

func (Chunk) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "ordinal").Unique(),
	}
}
