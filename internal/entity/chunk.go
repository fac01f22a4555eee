package entity

import (
	"time"

	"github.com/google/uuid"
)

// Chunk represents a chunk row for data transfer between layers.
type Chunk struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	Ordinal    int       `json:"ordinal"`
	Text       string    `json:"text"`
	Embedding  []float32 `json:"embedding"`
	TokenCount int       `json:"token_count"`
	CreatedAt  time.Time `json:"created_at"`
}
