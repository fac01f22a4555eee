package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/gen/ent"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/chunk"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/ingestjob"
	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
)

type ChunkRepository interface {
	// CompleteJob writes all chunk rows and the job's DONE transition in a
	// single transaction: either every chunk and the terminal status land,
	// or nothing does. The DONE update is conditional on the caller still
	// holding the claim; common.ErrClaimLost rolls everything back.
	CompleteJob(ctx context.Context, job *entity.IngestJob, chunks []entity.Chunk) error

	ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.Chunk, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Chunk, error)
}

type chunkRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewChunkRepository(entc *ent.Client, logger *slog.Logger) ChunkRepository {
	return &chunkRepo{ent: entc, logger: logger}
}

func (r *chunkRepo) CompleteJob(ctx context.Context, job *entity.IngestJob, chunks []entity.Chunk) error {
	if job.ClaimedAt == nil {
		return common.ErrClaimLost
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	builders := make([]*ent.ChunkCreate, 0, len(chunks))
	for _, c := range chunks {
		builders = append(builders, tx.Chunk.Create().
			SetID(c.ID).
			SetJobID(c.JobID).
			SetOrdinal(c.Ordinal).
			SetText(c.Text).
			SetEmbedding(c.Embedding).
			SetTokenCount(c.TokenCount))
	}
	if len(builders) > 0 {
		if err := tx.Chunk.CreateBulk(builders...).Exec(ctx); err != nil {
			return rollback(tx, fmt.Errorf("insert chunks: %w", err))
		}
	}

	n, err := tx.IngestJob.Update().
		Where(
			ingestjob.ID(job.ID),
			ingestjob.StatusEQ(string(constants.JobStatusInProgress)),
			ingestjob.ClaimedAtEQ(*job.ClaimedAt),
		).
		SetStatus(string(constants.JobStatusDone)).
		SetChunkCount(len(chunks)).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("finish job: %w", err))
	}
	if n == 0 {
		return rollback(tx, common.ErrClaimLost)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	r.logger.Info("job completed", "job_id", job.ID, "object_key", job.ObjectKey, "chunks", len(chunks))
	return nil
}

func (r *chunkRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]entity.Chunk, error) {
	rows, err := r.ent.Chunk.Query().
		Where(chunk.JobID(jobID)).
		Order(ent.Asc(chunk.FieldOrdinal)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list chunks", "job_id", jobID, "error", err)
		return nil, err
	}
	return chunksToEntities(rows), nil
}

func (r *chunkRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Chunk, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.ent.Chunk.Query().
		Where(chunk.IDIn(ids...)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to get chunks by ids", "count", len(ids), "error", err)
		return nil, err
	}
	return chunksToEntities(rows), nil
}

func chunksToEntities(rows []*ent.Chunk) []entity.Chunk {
	out := make([]entity.Chunk, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.Chunk{
			ID:         row.ID,
			JobID:      row.JobID,
			Ordinal:    row.Ordinal,
			Text:       row.Text,
			Embedding:  row.Embedding,
			TokenCount: row.TokenCount,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}
