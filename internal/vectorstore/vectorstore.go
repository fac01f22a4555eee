package vectorstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/knowledgepipe/knowledgepipe/internal/entity"
)

// ScoredChunk is a similarity hit: a chunk reference plus its score.
// The chunk text lives in the relational store, not here.
type ScoredChunk struct {
	ChunkID uuid.UUID
	JobID   uuid.UUID
	Ordinal int
	Score   float32
}

// Index is the similarity index over chunk embeddings. Point IDs are the
// chunk UUIDs, so index entries and chunk rows reference each other
// directly.
type Index interface {
	EnsureCollection(ctx context.Context, dim int) error
	UpsertChunks(ctx context.Context, jobID uuid.UUID, chunks []entity.Chunk) error
	// Search returns the topK nearest chunks; a non-nil jobID restricts
	// the search to one document.
	Search(ctx context.Context, vector []float32, topK int, jobID *uuid.UUID) ([]ScoredChunk, error)
	// DeleteChunks removes exactly the named points. Used to undo one
	// attempt's upsert when chunk persistence fails; deleting by job would
	// also wipe points a concurrent reclaimer wrote for the same job.
	DeleteChunks(ctx context.Context, chunkIDs []uuid.UUID) error
	Close() error
}
