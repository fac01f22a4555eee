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

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/db/ent/schema/utils"
)

// IngestJob is the job queue: one row per discovered object. The unique
// (bucket, object_key) index makes registration idempotent, and the
// (status, claimed_at) pair carries the claim protocol.
type IngestJob struct{ ent.Schema }

func (IngestJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ingest_jobs"},
	}
}

func (IngestJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("bucket").NotEmpty().Immutable(),
		field.String("object_key").NotEmpty().Immutable(),
		field.String("etag").Optional(),
		field.Int64("size_bytes").NonNegative().Default(0),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(constants.JobStatuses()...)),
		field.Int("attempts").NonNegative().Default(0),
		field.String("failure_stage").Optional().Nillable().
			Validate(utils.EnumValidator(constants.Stages()...)),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("claimed_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		field.Int("chunk_count").NonNegative().Default(0),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (IngestJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("chunks", Chunk.Type),
	}
}

func (IngestJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("bucket", "object_key").Unique(),
		index.Fields("status", "created_at"),
		index.Fields("status", "claimed_at"),
	}
}
