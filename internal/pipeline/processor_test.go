package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/internal/chunker"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
	"github.com/knowledgepipe/knowledgepipe/internal/extract"
	"github.com/knowledgepipe/knowledgepipe/internal/objectstore"
	"github.com/knowledgepipe/knowledgepipe/internal/vectorstore"
)

type testStore struct {
	data map[string][]byte
	err  error
}

func (s *testStore) List(ctx context.Context, prefix string) ([]objectstore.ObjectInfo, error) {
	return nil, nil
}

func (s *testStore) Fetch(ctx context.Context, key string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.data[key], nil
}

func (s *testStore) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return nil
}

type testExtractor struct {
	text string
	err  error
}

func (e *testExtractor) Extract(ctx context.Context, filename string, data []byte) (extract.Result, error) {
	if e.err != nil {
		return extract.Result{}, e.err
	}
	return extract.Result{Text: e.text, Pages: 1, Method: "test"}, nil
}

type testSplitter struct {
	pieces []chunker.Piece
	err    error
}

func (s *testSplitter) Split(text string) ([]chunker.Piece, error) {
	return s.pieces, s.err
}

type testEmbedder struct {
	dim int
	err error
}

func (e *testEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (e *testEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.err != nil {
		return nil, e.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = make([]float32, e.dim)
	}
	return out, nil
}

type testIndex struct {
	upserted  []entity.Chunk
	upsertErr error
	deleted   []uuid.UUID
}

func (i *testIndex) EnsureCollection(ctx context.Context, dim int) error { return nil }

func (i *testIndex) UpsertChunks(ctx context.Context, jobID uuid.UUID, chunks []entity.Chunk) error {
	if i.upsertErr != nil {
		return i.upsertErr
	}
	i.upserted = append(i.upserted, chunks...)
	return nil
}

func (i *testIndex) Search(ctx context.Context, vector []float32, topK int, jobID *uuid.UUID) ([]vectorstore.ScoredChunk, error) {
	return nil, nil
}

func (i *testIndex) DeleteChunks(ctx context.Context, chunkIDs []uuid.UUID) error {
	i.deleted = append(i.deleted, chunkIDs...)
	return nil
}

func (i *testIndex) Close() error { return nil }

type testJobs struct {
	markedStage  *constants.Stage
	markedMsg    string
	markedCtxErr error
}

func (j *testJobs) RegisterObject(ctx context.Context, bucket, key, etag string, size int64) (bool, error) {
	return false, nil
}

func (j *testJobs) ClaimNext(ctx context.Context, staleAfter time.Duration) (*entity.IngestJob, error) {
	return nil, nil
}

func (j *testJobs) MarkError(ctx context.Context, job *entity.IngestJob, stage constants.Stage, message string) error {
	j.markedStage = &stage
	j.markedMsg = message
	j.markedCtxErr = ctx.Err()
	return nil
}

func (j *testJobs) GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestJob, error) {
	return nil, nil
}

func (j *testJobs) ListRecent(ctx context.Context, limit int) ([]*entity.IngestJob, error) {
	return nil, nil
}

func (j *testJobs) CountByStatus(ctx context.Context) (map[constants.JobStatus]int, error) {
	return nil, nil
}

type testChunks struct {
	completed []entity.Chunk
	err       error
}

func (c *testChunks) CompleteJob(ctx context.Context, job *entity.IngestJob, chunks []entity.Chunk) error {
	if c.err != nil {
		return c.err
	}
	c.completed = chunks
	return nil
}

func (c *testChunks) ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.Chunk, error) {
	return nil, nil
}

func (c *testChunks) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Chunk, error) {
	return nil, nil
}

func claimedJob() *entity.IngestJob {
	now := time.Now().UTC()
	return &entity.IngestJob{
		ID:        uuid.New(),
		Bucket:    "documents",
		ObjectKey: "doc.pdf",
		Status:    constants.JobStatusInProgress,
		Attempts:  1,
		ClaimedAt: &now,
	}
}

func newTestProcessor() (*Processor, *testStore, *testExtractor, *testSplitter, *testEmbedder, *testIndex, *testJobs, *testChunks) {
	store := &testStore{data: map[string][]byte{"doc.pdf": []byte("%PDF")}}
	extractor := &testExtractor{text: "some extracted text"}
	splitter := &testSplitter{pieces: []chunker.Piece{
		{Text: "first", TokenCount: 2},
		{Text: "second", TokenCount: 3},
		{Text: "third", TokenCount: 1},
	}}
	embedder := &testEmbedder{dim: 4}
	index := &testIndex{}
	jobs := &testJobs{}
	chunks := &testChunks{}

	p := &Processor{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:    store,
		Extract:  extractor,
		Chunker:  splitter,
		Embedder: embedder,
		Index:    index,
		Jobs:     jobs,
		Chunks:   chunks,
	}
	return p, store, extractor, splitter, embedder, index, jobs, chunks
}

func TestProcessSuccess(t *testing.T) {
	p, _, _, splitter, _, index, jobs, chunks := newTestProcessor()
	job := claimedJob()

	p.Process(context.Background(), job)

	require.Nil(t, jobs.markedStage, "successful job must not be marked ERROR")
	require.Len(t, chunks.completed, len(splitter.pieces))
	require.Len(t, index.upserted, len(splitter.pieces))

	for i, c := range chunks.completed {
		assert.Equal(t, i, c.Ordinal, "ordinals must be contiguous from 0")
		assert.Equal(t, job.ID, c.JobID)
		assert.Equal(t, splitter.pieces[i].Text, c.Text)
		assert.Len(t, c.Embedding, 4)
	}
	assert.Empty(t, index.deleted)
}

func TestProcessFetchFailure(t *testing.T) {
	p, store, _, _, _, index, jobs, chunks := newTestProcessor()
	store.err = errors.New("connection refused")

	p.Process(context.Background(), claimedJob())

	require.NotNil(t, jobs.markedStage)
	assert.Equal(t, constants.StageFetch, *jobs.markedStage)
	assert.Empty(t, chunks.completed)
	assert.Empty(t, index.upserted)
}

func TestProcessExtractFailure(t *testing.T) {
	p, _, extractor, _, _, _, jobs, chunks := newTestProcessor()
	extractor.err = errors.New("pdftotext: exit status 1")

	p.Process(context.Background(), claimedJob())

	require.NotNil(t, jobs.markedStage)
	assert.Equal(t, constants.StageExtract, *jobs.markedStage)
	assert.Empty(t, chunks.completed)
}

func TestProcessEmptyTextFailsChunkStage(t *testing.T) {
	p, _, _, splitter, _, _, jobs, chunks := newTestProcessor()
	splitter.pieces = nil

	p.Process(context.Background(), claimedJob())

	require.NotNil(t, jobs.markedStage)
	assert.Equal(t, constants.StageChunk, *jobs.markedStage)
	assert.Empty(t, chunks.completed)
}

func TestProcessEmbedFailureLeavesNoChunks(t *testing.T) {
	p, _, _, _, embedder, index, jobs, chunks := newTestProcessor()
	embedder.err = errors.New("model not loaded")

	p.Process(context.Background(), claimedJob())

	require.NotNil(t, jobs.markedStage)
	assert.Equal(t, constants.StageEmbed, *jobs.markedStage)
	assert.Empty(t, chunks.completed)
	assert.Empty(t, index.upserted)
	assert.Empty(t, index.deleted)
}

func TestProcessPersistFailureCompensatesOwnPointsOnly(t *testing.T) {
	p, _, _, _, _, index, jobs, chunks := newTestProcessor()
	chunks.err = errors.New("tx aborted")
	job := claimedJob()

	p.Process(context.Background(), job)

	require.NotNil(t, jobs.markedStage)
	assert.Equal(t, constants.StagePersist, *jobs.markedStage)

	// Exactly the points this attempt upserted are removed; a reclaimer's
	// points for the same job carry different chunk IDs and must survive.
	require.Len(t, index.upserted, 3)
	want := make([]uuid.UUID, 0, len(index.upserted))
	for _, c := range index.upserted {
		want = append(want, c.ID)
	}
	assert.ElementsMatch(t, want, index.deleted)
}

func TestProcessRecordsErrorAfterTimeout(t *testing.T) {
	p, _, _, _, _, _, jobs, chunks := newTestProcessor()
	job := claimedJob()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	p.Process(ctx, job)

	// The ERROR transition must be written on a live context even though
	// the per-job context already expired.
	require.NotNil(t, jobs.markedStage, "timed-out job must still be marked ERROR")
	assert.NoError(t, jobs.markedCtxErr)
	assert.Empty(t, chunks.completed)
}

func TestStageOf(t *testing.T) {
	assert.Equal(t, constants.StageEmbed, StageOf(EmbedError(errors.New("x"))))
	assert.Equal(t, constants.StageFetch, StageOf(FetchError(errors.New("x"))))
	// Untagged errors are reported as the latest stage, never an earlier one.
	assert.Equal(t, constants.StagePersist, StageOf(errors.New("x")))
}
