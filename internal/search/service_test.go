package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
	"github.com/knowledgepipe/knowledgepipe/internal/vectorstore"
)

type testEmbedder struct {
	err error
}

func (e *testEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if e.err != nil {
		return nil, e.err
	}
	return []float32{0.1, 0.2}, nil
}

func (e *testEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	return nil, errors.New("not used")
}

type testIndex struct {
	hits      []vectorstore.ScoredChunk
	gotTopK   int
	gotScope  *uuid.UUID
	searchErr error
}

func (i *testIndex) EnsureCollection(ctx context.Context, dim int) error { return nil }

func (i *testIndex) UpsertChunks(ctx context.Context, jobID uuid.UUID, chunks []entity.Chunk) error {
	return nil
}

func (i *testIndex) Search(ctx context.Context, vector []float32, topK int, jobID *uuid.UUID) ([]vectorstore.ScoredChunk, error) {
	i.gotTopK = topK
	i.gotScope = jobID
	return i.hits, i.searchErr
}

func (i *testIndex) DeleteChunks(ctx context.Context, chunkIDs []uuid.UUID) error { return nil }

func (i *testIndex) Close() error { return nil }

type testChunks struct {
	rows map[uuid.UUID]entity.Chunk
}

func (c *testChunks) CompleteJob(ctx context.Context, job *entity.IngestJob, chunks []entity.Chunk) error {
	return nil
}

func (c *testChunks) ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.Chunk, error) {
	return nil, nil
}

func (c *testChunks) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Chunk, error) {
	out := make([]entity.Chunk, 0, len(ids))
	for _, id := range ids {
		if row, ok := c.rows[id]; ok {
			out = append(out, row)
		}
	}
	return out, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSearchPreservesScoreOrder(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	index := &testIndex{hits: []vectorstore.ScoredChunk{
		{ChunkID: b, Score: 0.9},
		{ChunkID: a, Score: 0.5},
	}}
	chunks := &testChunks{rows: map[uuid.UUID]entity.Chunk{
		// Hydration returns rows in repository order, not score order.
		a: {ID: a, Text: "low"},
		b: {ID: b, Text: "high"},
	}}
	svc := NewService(&testEmbedder{}, index, chunks, testLogger())

	got, err := svc.Search(context.Background(), "query", 2, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "high", got[0].Chunk.Text)
	assert.Equal(t, "low", got[1].Chunk.Text)
	assert.Greater(t, got[0].Score, got[1].Score)
}

func TestSearchDropsHitsWithoutRows(t *testing.T) {
	a, gone := uuid.New(), uuid.New()
	index := &testIndex{hits: []vectorstore.ScoredChunk{
		{ChunkID: gone, Score: 0.9},
		{ChunkID: a, Score: 0.5},
	}}
	chunks := &testChunks{rows: map[uuid.UUID]entity.Chunk{a: {ID: a, Text: "kept"}}}
	svc := NewService(&testEmbedder{}, index, chunks, testLogger())

	got, err := svc.Search(context.Background(), "query", 2, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Chunk.Text)
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	svc := NewService(&testEmbedder{}, &testIndex{}, &testChunks{}, testLogger())

	_, err := svc.Search(context.Background(), "   ", 5, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestSearchDefaultsAndCapsTopK(t *testing.T) {
	index := &testIndex{}
	svc := NewService(&testEmbedder{}, index, &testChunks{}, testLogger())

	_, err := svc.Search(context.Background(), "q", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, defaultTopK, index.gotTopK)

	_, err = svc.Search(context.Background(), "q", 10_000, nil)
	require.NoError(t, err)
	assert.Equal(t, maxTopK, index.gotTopK)
}

func TestSearchPassesJobScope(t *testing.T) {
	index := &testIndex{}
	svc := NewService(&testEmbedder{}, index, &testChunks{}, testLogger())
	jobID := uuid.New()

	_, err := svc.Search(context.Background(), "q", 3, &jobID)
	require.NoError(t, err)
	require.NotNil(t, index.gotScope)
	assert.Equal(t, jobID, *index.gotScope)
}

func TestSearchEmbedFailure(t *testing.T) {
	svc := NewService(&testEmbedder{err: errors.New("down")}, &testIndex{}, &testChunks{}, testLogger())

	_, err := svc.Search(context.Background(), "q", 3, nil)
	require.Error(t, err)
}
