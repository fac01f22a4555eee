package repository

import (
	"context"
	stdsql "database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/gen/ent"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/ingestjob"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/predicate"
	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
)

// claimCandidates bounds how many queue heads a single claim attempt will
// race over before reporting an empty queue.
const claimCandidates = 8

const maxErrorMessageLen = 2000

type JobRepository interface {
	// RegisterObject inserts a PENDING job for the object unless one already
	// exists in any status. Idempotency comes from the unique
	// (bucket, object_key) index, not from a read-then-write check.
	RegisterObject(ctx context.Context, bucket, key, etag string, size int64) (created bool, err error)

	// ClaimNext atomically claims one runnable job: the oldest PENDING row,
	// or an IN_PROGRESS row whose claim is older than staleAfter. Returns
	// (nil, nil) when the queue has no runnable job.
	ClaimNext(ctx context.Context, staleAfter time.Duration) (*entity.IngestJob, error)

	// MarkError transitions a claimed job to ERROR, recording the failed
	// stage and cause. The update is conditional on the caller still holding
	// the claim (status IN_PROGRESS and unchanged claimed_at); returns
	// common.ErrClaimLost otherwise.
	MarkError(ctx context.Context, job *entity.IngestJob, stage constants.Stage, message string) error

	GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestJob, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.IngestJob, error)
	CountByStatus(ctx context.Context) (map[constants.JobStatus]int, error)
}

type jobRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewJobRepository(entc *ent.Client, logger *slog.Logger) JobRepository {
	return &jobRepo{ent: entc, logger: logger}
}

func (r *jobRepo) RegisterObject(ctx context.Context, bucket, key, etag string, size int64) (bool, error) {
	_, err := r.ent.IngestJob.Create().
		SetBucket(bucket).
		SetObjectKey(key).
		SetEtag(etag).
		SetSizeBytes(size).
		SetStatus(string(constants.JobStatusPending)).
		OnConflictColumns(ingestjob.FieldBucket, ingestjob.FieldObjectKey).
		DoNothing().
		ID(ctx)
	switch {
	case err == nil:
		r.logger.Info("job registered", "bucket", bucket, "object_key", key, "size_bytes", size)
		return true, nil
	case errors.Is(err, stdsql.ErrNoRows) || ent.IsNotFound(err):
		// already registered in some status; a no-op by contract
		return false, nil
	default:
		r.logger.Error("job registration failed", "bucket", bucket, "object_key", key, "error", err)
		return false, err
	}
}

func (r *jobRepo) ClaimNext(ctx context.Context, staleAfter time.Duration) (*entity.IngestJob, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-staleAfter)

	runnable := ingestjob.Or(
		ingestjob.StatusEQ(string(constants.JobStatusPending)),
		ingestjob.And(
			ingestjob.StatusEQ(string(constants.JobStatusInProgress)),
			ingestjob.ClaimedAtLT(cutoff),
		),
	)

	for i := 0; i < claimCandidates; i++ {
		row, err := r.ent.IngestJob.Query().
			Where(runnable).
			Order(ent.Asc(ingestjob.FieldCreatedAt)).
			Offset(i).
			First(ctx)
		if ent.IsNotFound(err) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		// Single conditional update keyed on the observed state; the
		// affected-row count decides the winner of a claim race.
		preds := []predicate.IngestJob{ingestjob.ID(row.ID)}
		if row.Status == string(constants.JobStatusPending) {
			preds = append(preds, ingestjob.StatusEQ(string(constants.JobStatusPending)))
		} else {
			preds = append(preds,
				ingestjob.StatusEQ(string(constants.JobStatusInProgress)),
				ingestjob.ClaimedAtLT(cutoff),
			)
		}
		n, err := r.ent.IngestJob.Update().
			Where(preds...).
			SetStatus(string(constants.JobStatusInProgress)).
			SetClaimedAt(now).
			AddAttempts(1).
			Save(ctx)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			// lost the race on this candidate, try the next queue head
			continue
		}

		job := jobToEntity(row)
		job.Status = constants.JobStatusInProgress
		job.ClaimedAt = &now
		job.Attempts = row.Attempts + 1
		if row.Status != string(constants.JobStatusPending) {
			r.logger.Warn("reclaimed stale job", "job_id", job.ID, "object_key", job.ObjectKey, "attempts", job.Attempts)
		} else {
			r.logger.Info("claimed job", "job_id", job.ID, "object_key", job.ObjectKey)
		}
		return job, nil
	}
	return nil, nil
}

func (r *jobRepo) MarkError(ctx context.Context, job *entity.IngestJob, stage constants.Stage, message string) error {
	if job.ClaimedAt == nil {
		return common.ErrClaimLost
	}
	if r := []rune(message); len(r) > maxErrorMessageLen {
		message = string(r[:maxErrorMessageLen])
	}
	n, err := r.ent.IngestJob.Update().
		Where(
			ingestjob.ID(job.ID),
			ingestjob.StatusEQ(string(constants.JobStatusInProgress)),
			ingestjob.ClaimedAtEQ(*job.ClaimedAt),
		).
		SetStatus(string(constants.JobStatusError)).
		SetFailureStage(string(stage)).
		SetErrorMessage(message).
		SetFinishedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("job error transition failed", "job_id", job.ID, "error", err)
		return err
	}
	if n == 0 {
		r.logger.Warn("job error transition skipped, claim lost", "job_id", job.ID)
		return common.ErrClaimLost
	}
	r.logger.Warn("job failed", "job_id", job.ID, "object_key", job.ObjectKey, "stage", stage, "error", message)
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestJob, error) {
	row, err := r.ent.IngestJob.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return jobToEntity(row), nil
}

func (r *jobRepo) ListRecent(ctx context.Context, limit int) ([]*entity.IngestJob, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.ent.IngestJob.Query().
		Order(ent.Desc(ingestjob.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list recent jobs", "error", err)
		return nil, err
	}
	out := make([]*entity.IngestJob, 0, len(rows))
	for _, row := range rows {
		out = append(out, jobToEntity(row))
	}
	return out, nil
}

func (r *jobRepo) CountByStatus(ctx context.Context) (map[constants.JobStatus]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.ent.IngestJob.Query().
		GroupBy(ingestjob.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.logger.Error("failed to count jobs by status", "error", err)
		return nil, err
	}
	out := make(map[constants.JobStatus]int, len(rows))
	for _, row := range rows {
		out[constants.JobStatus(row.Status)] = row.Count
	}
	return out, nil
}

func jobToEntity(row *ent.IngestJob) *entity.IngestJob {
	job := &entity.IngestJob{
		ID:           row.ID,
		Bucket:       row.Bucket,
		ObjectKey:    row.ObjectKey,
		ETag:         row.Etag,
		SizeBytes:    row.SizeBytes,
		Status:       constants.JobStatus(row.Status),
		Attempts:     row.Attempts,
		ErrorMessage: row.ErrorMessage,
		ClaimedAt:    row.ClaimedAt,
		FinishedAt:   row.FinishedAt,
		ChunkCount:   row.ChunkCount,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.FailureStage != nil {
		stage := constants.Stage(*row.FailureStage)
		job.FailureStage = &stage
	}
	return job
}
