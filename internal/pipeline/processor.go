package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/knowledgepipe/knowledgepipe/internal/chunker"
	"github.com/knowledgepipe/knowledgepipe/internal/embed"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
	"github.com/knowledgepipe/knowledgepipe/internal/extract"
	"github.com/knowledgepipe/knowledgepipe/internal/objectstore"
	"github.com/knowledgepipe/knowledgepipe/internal/repository"
	"github.com/knowledgepipe/knowledgepipe/internal/vectorstore"
)

// Splitter is the slice of chunker.Chunker the pipeline needs.
type Splitter interface {
	Split(text string) ([]chunker.Piece, error)
}

// Processor runs one claimed job through fetch, extract, chunk, embed and
// persist. It owns nothing long-lived; every collaborator is injected.
type Processor struct {
	Logger   *slog.Logger
	Store    objectstore.Store
	Extract  extract.TextExtractor
	Chunker  Splitter
	Embedder embed.Embedder
	Index    vectorstore.Index
	Jobs     repository.JobRepository
	Chunks   repository.ChunkRepository
}

// Process drives the job to a terminal status. A stage failure marks the
// job ERROR with the failed stage; the job row never stays IN_PROGRESS
// past this call unless the claim itself was lost.
func (p *Processor) Process(ctx context.Context, job *entity.IngestJob) {
	logger := p.Logger.With("job_id", job.ID, "object_key", job.ObjectKey)

	err := p.process(ctx, logger, job)
	if err == nil {
		return
	}

	stage := StageOf(err)
	// ctx is often already dead here (stage failures include the process
	// timeout firing); the ERROR transition must still be written or the
	// job would be reclaimed forever.
	if merr := p.Jobs.MarkError(context.WithoutCancel(ctx), job, stage, err.Error()); merr != nil {
		logger.Error("processor.mark_error.failed", "stage", stage, "error", merr)
	}
}

func (p *Processor) process(ctx context.Context, logger *slog.Logger, job *entity.IngestJob) error {
	data, err := p.Store.Fetch(ctx, job.ObjectKey)
	if err != nil {
		return FetchError(err)
	}
	logger.Debug("processor.fetch.ok", "size_bytes", len(data))

	res, err := p.Extract.Extract(ctx, job.ObjectKey, data)
	if err != nil {
		return ExtractError(err)
	}
	for _, w := range res.Warnings {
		logger.Warn("processor.extract.warning", "warning", w)
	}
	logger.Debug("processor.extract.ok", "method", res.Method, "pages", res.Pages, "chars", len(res.Text))

	pieces, err := p.Chunker.Split(res.Text)
	if err != nil {
		return ChunkError(err)
	}
	if len(pieces) == 0 {
		return ChunkError(fmt.Errorf("no text to chunk"))
	}
	logger.Debug("processor.chunk.ok", "chunks", len(pieces))

	texts := make([]string, len(pieces))
	for i, piece := range pieces {
		texts[i] = piece.Text
	}
	vectors, err := p.Embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return EmbedError(err)
	}
	if len(vectors) != len(pieces) {
		return EmbedError(fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(pieces)))
	}
	logger.Debug("processor.embed.ok", "vectors", len(vectors))

	chunks := make([]entity.Chunk, len(pieces))
	for i, piece := range pieces {
		chunks[i] = entity.Chunk{
			ID:         uuid.New(),
			JobID:      job.ID,
			Ordinal:    i,
			Text:       piece.Text,
			Embedding:  vectors[i],
			TokenCount: piece.TokenCount,
		}
	}

	// Index first, rows second.
	if err := p.Index.UpsertChunks(ctx, job.ID, chunks); err != nil {
		return PersistError(err)
	}
	if err := p.Chunks.CompleteJob(ctx, job, chunks); err != nil {
		// Points are already searchable but their rows never landed. Remove
		// only this attempt's points: when the claim was lost to a staleness
		// reclaim, the new owner's points for the same job must survive.
		ids := make([]uuid.UUID, len(chunks))
		for i, c := range chunks {
			ids[i] = c.ID
		}
		if derr := p.Index.DeleteChunks(context.WithoutCancel(ctx), ids); derr != nil {
			logger.Error("processor.compensate.failed", "error", derr)
		}
		return PersistError(err)
	}
	logger.Info("processor.persist.ok", "chunks", len(chunks))
	return nil
}
