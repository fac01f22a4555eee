package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/embed"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
	"github.com/knowledgepipe/knowledgepipe/internal/repository"
	"github.com/knowledgepipe/knowledgepipe/internal/vectorstore"
)

const (
	defaultTopK = 5
	maxTopK     = 50
)

// Match is a similarity hit with its chunk hydrated from the relational
// store, so callers get the text alongside the score.
type Match struct {
	Chunk entity.Chunk
	Score float32
}

type Service struct {
	embedder embed.Embedder
	index    vectorstore.Index
	chunks   repository.ChunkRepository
	logger   *slog.Logger
}

func NewService(embedder embed.Embedder, index vectorstore.Index, chunks repository.ChunkRepository, logger *slog.Logger) *Service {
	return &Service{embedder: embedder, index: index, chunks: chunks, logger: logger}
}

// Search embeds the query with the same embedder the pipeline uses and
// returns the topK nearest chunks, best first. A non-nil jobID scopes the
// search to one document.
func (s *Service) Search(ctx context.Context, query string, topK int, jobID *uuid.UUID) ([]Match, error) {
	if strings.TrimSpace(query) == "" {
		return nil, common.WrapError(common.ErrInvalidInput, "empty query")
	}
	if topK <= 0 {
		topK = defaultTopK
	}
	if topK > maxTopK {
		topK = maxTopK
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	hits, err := s.index.Search(ctx, vector, topK, jobID)
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}
	if len(hits) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(hits))
	for _, hit := range hits {
		ids = append(ids, hit.ChunkID)
	}
	chunks, err := s.chunks.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("hydrate chunks: %w", err)
	}
	byID := make(map[uuid.UUID]entity.Chunk, len(chunks))
	for _, c := range chunks {
		byID[c.ID] = c
	}

	// Preserve index order; drop hits whose rows are gone (a job deleted
	// between search and hydration).
	out := make([]Match, 0, len(hits))
	for _, hit := range hits {
		c, ok := byID[hit.ChunkID]
		if !ok {
			s.logger.Warn("index hit without chunk row", "chunk_id", hit.ChunkID)
			continue
		}
		out = append(out, Match{Chunk: c, Score: hit.Score})
	}
	return out, nil
}
