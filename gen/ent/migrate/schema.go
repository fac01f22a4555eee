// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocChunksColumns holds the columns for the "doc_chunks" table.
	DocChunksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "ordinal", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "embedding", Type: field.TypeJSON},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// DocChunksTable holds the schema information for the "doc_chunks" table.
	DocChunksTable = &schema.Table{
		Name:       "doc_chunks",
		Columns:    DocChunksColumns,
		PrimaryKey: []*schema.Column{DocChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "doc_chunks_ingest_jobs_chunks",
				Columns:    []*schema.Column{DocChunksColumns[6]},
				RefColumns: []*schema.Column{IngestJobsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_job_id_ordinal",
				Unique:  true,
				Columns: []*schema.Column{DocChunksColumns[6], DocChunksColumns[1]},
			},
		},
	}
	// IngestJobsColumns holds the columns for the "ingest_jobs" table.
	IngestJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "bucket", Type: field.TypeString},
		{Name: "object_key", Type: field.TypeString},
		{Name: "etag", Type: field.TypeString, Nullable: true},
		{Name: "size_bytes", Type: field.TypeInt64, Default: 0},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "attempts", Type: field.TypeInt, Default: 0},
		{Name: "failure_stage", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "claimed_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "chunk_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// IngestJobsTable holds the schema information for the "ingest_jobs" table.
	IngestJobsTable = &schema.Table{
		Name:       "ingest_jobs",
		Columns:    IngestJobsColumns,
		PrimaryKey: []*schema.Column{IngestJobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ingestjob_bucket_object_key",
				Unique:  true,
				Columns: []*schema.Column{IngestJobsColumns[1], IngestJobsColumns[2]},
			},
			{
				Name:    "ingestjob_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobsColumns[5], IngestJobsColumns[12]},
			},
			{
				Name:    "ingestjob_status_claimed_at",
				Unique:  false,
				Columns: []*schema.Column{IngestJobsColumns[5], IngestJobsColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocChunksTable,
		IngestJobsTable,
	}
)

func init() {
	DocChunksTable.ForeignKeys[0].RefTable = IngestJobsTable
	DocChunksTable.Annotation = &entsql.Annotation{
		Table: "doc_chunks",
	}
	IngestJobsTable.Annotation = &entsql.Annotation{
		Table: "ingest_jobs",
	}
}
