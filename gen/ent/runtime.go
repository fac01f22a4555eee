// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/knowledgepipe/knowledgepipe/db/ent/schema"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/chunk"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/ingestjob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	chunkFields := schema.Chunk{}.Fields()
	_ = chunkFields
	// chunkDescOrdinal is the schema descriptor for ordinal field.
	chunkDescOrdinal := chunkFields[2].Descriptor()
	// chunk.OrdinalValidator is a validator for the "ordinal" field. It is called by the builders before save.
	chunk.OrdinalValidator = chunkDescOrdinal.Validators[0].(func(int) error)
	// chunkDescText is the schema descriptor for text field.
	chunkDescText := chunkFields[3].Descriptor()
	// chunk.TextValidator is a validator for the "text" field. It is called by the builders before save.
	chunk.TextValidator = chunkDescText.Validators[0].(func(string) error)
	// chunkDescTokenCount is the schema descriptor for token_count field.
	chunkDescTokenCount := chunkFields[5].Descriptor()
	// chunk.DefaultTokenCount holds the default value on creation for the token_count field.
	chunk.DefaultTokenCount = chunkDescTokenCount.Default.(int)
	// chunk.TokenCountValidator is a validator for the "token_count" field. It is called by the builders before save.
	chunk.TokenCountValidator = chunkDescTokenCount.Validators[0].(func(int) error)
	// chunkDescCreatedAt is the schema descriptor for created_at field.
	chunkDescCreatedAt := chunkFields[6].Descriptor()
	// chunk.DefaultCreatedAt holds the default value on creation for the created_at field.
	chunk.DefaultCreatedAt = chunkDescCreatedAt.Default.(func() time.Time)
	// chunkDescID is the schema descriptor for id field.
	chunkDescID := chunkFields[0].Descriptor()
	// chunk.DefaultID holds the default value on creation for the id field.
	chunk.DefaultID = chunkDescID.Default.(func() uuid.UUID)
	ingestjobFields := schema.IngestJob{}.Fields()
	_ = ingestjobFields
	// ingestjobDescBucket is the schema descriptor for bucket field.
	ingestjobDescBucket := ingestjobFields[1].Descriptor()
	// ingestjob.BucketValidator is a validator for the "bucket" field. It is called by the builders before save.
	ingestjob.BucketValidator = ingestjobDescBucket.Validators[0].(func(string) error)
	// ingestjobDescObjectKey is the schema descriptor for object_key field.
	ingestjobDescObjectKey := ingestjobFields[2].Descriptor()
	// ingestjob.ObjectKeyValidator is a validator for the "object_key" field. It is called by the builders before save.
	ingestjob.ObjectKeyValidator = ingestjobDescObjectKey.Validators[0].(func(string) error)
	// ingestjobDescSizeBytes is the schema descriptor for size_bytes field.
	ingestjobDescSizeBytes := ingestjobFields[4].Descriptor()
	// ingestjob.DefaultSizeBytes holds the default value on creation for the size_bytes field.
	ingestjob.DefaultSizeBytes = ingestjobDescSizeBytes.Default.(int64)
	// ingestjob.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	ingestjob.SizeBytesValidator = ingestjobDescSizeBytes.Validators[0].(func(int64) error)
	// ingestjobDescStatus is the schema descriptor for status field.
	ingestjobDescStatus := ingestjobFields[5].Descriptor()
	// ingestjob.DefaultStatus holds the default value on creation for the status field.
	ingestjob.DefaultStatus = ingestjobDescStatus.Default.(string)
	// ingestjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	ingestjob.StatusValidator = ingestjobDescStatus.Validators[0].(func(string) error)
	// ingestjobDescAttempts is the schema descriptor for attempts field.
	ingestjobDescAttempts := ingestjobFields[6].Descriptor()
	// ingestjob.DefaultAttempts holds the default value on creation for the attempts field.
	ingestjob.DefaultAttempts = ingestjobDescAttempts.Default.(int)
	// ingestjob.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	ingestjob.AttemptsValidator = ingestjobDescAttempts.Validators[0].(func(int) error)
	// ingestjobDescFailureStage is the schema descriptor for failure_stage field.
	ingestjobDescFailureStage := ingestjobFields[7].Descriptor()
	// ingestjob.FailureStageValidator is a validator for the "failure_stage" field. It is called by the builders before save.
	ingestjob.FailureStageValidator = ingestjobDescFailureStage.Validators[0].(func(string) error)
	// ingestjobDescChunkCount is the schema descriptor for chunk_count field.
	ingestjobDescChunkCount := ingestjobFields[11].Descriptor()
	// ingestjob.DefaultChunkCount holds the default value on creation for the chunk_count field.
	ingestjob.DefaultChunkCount = ingestjobDescChunkCount.Default.(int)
	// ingestjob.ChunkCountValidator is a validator for the "chunk_count" field. It is called by the builders before save.
	ingestjob.ChunkCountValidator = ingestjobDescChunkCount.Validators[0].(func(int) error)
	// ingestjobDescCreatedAt is the schema descriptor for created_at field.
	ingestjobDescCreatedAt := ingestjobFields[12].Descriptor()
	// ingestjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	ingestjob.DefaultCreatedAt = ingestjobDescCreatedAt.Default.(func() time.Time)
	// ingestjobDescUpdatedAt is the schema descriptor for updated_at field.
	ingestjobDescUpdatedAt := ingestjobFields[13].Descriptor()
	// ingestjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	ingestjob.DefaultUpdatedAt = ingestjobDescUpdatedAt.Default.(func() time.Time)
	// ingestjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	ingestjob.UpdateDefaultUpdatedAt = ingestjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// ingestjobDescID is the schema descriptor for id field.
	ingestjobDescID := ingestjobFields[0].Descriptor()
	// ingestjob.DefaultID holds the default value on creation for the id field.
	ingestjob.DefaultID = ingestjobDescID.Default.(func() uuid.UUID)
}
