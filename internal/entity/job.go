package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/knowledgepipe/knowledgepipe/constants"
)

// IngestJob represents a job row for data transfer between layers.
// ClaimedAt doubles as the claim token: conditional updates that finish or
// fail a job must match the ClaimedAt observed at claim time, so a worker
// that lost its claim to a staleness reclaim cannot overwrite the new owner.
type IngestJob struct {
	ID           uuid.UUID           `json:"id"`
	Bucket       string              `json:"bucket"`
	ObjectKey    string              `json:"object_key"`
	ETag         string              `json:"etag,omitempty"`
	SizeBytes    int64               `json:"size_bytes"`
	Status       constants.JobStatus `json:"status"`
	Attempts     int                 `json:"attempts"`
	FailureStage *constants.Stage    `json:"failure_stage,omitempty"`
	ErrorMessage *string             `json:"error_message,omitempty"`
	ClaimedAt    *time.Time          `json:"claimed_at,omitempty"`
	FinishedAt   *time.Time          `json:"finished_at,omitempty"`
	ChunkCount   int                 `json:"chunk_count"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
