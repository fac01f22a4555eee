package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
)

func makeChunks(jobID uuid.UUID, n int) []entity.Chunk {
	out := make([]entity.Chunk, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, entity.Chunk{
			ID:         uuid.New(),
			JobID:      jobID,
			Ordinal:    i,
			Text:       fmt.Sprintf("chunk %d", i),
			Embedding:  []float32{float32(i), 0.5},
			TokenCount: 2,
		})
	}
	return out
}

func TestCompleteJobPersistsChunksAndFinishesJob(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	chunks := NewChunkRepository(client, testLogger())
	ctx := context.Background()

	_, err := jobs.RegisterObject(ctx, "documents", "doc.pdf", "", 1)
	require.NoError(t, err)
	job := mustClaim(t, jobs, 10*time.Minute)

	pieces := makeChunks(job.ID, 3)
	require.NoError(t, chunks.CompleteJob(ctx, job, pieces))

	got, err := jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusDone, got.Status)
	assert.Equal(t, 3, got.ChunkCount)
	require.NotNil(t, got.FinishedAt)

	rows, err := chunks.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, i, row.Ordinal)
		assert.Equal(t, pieces[i].ID, row.ID)
		assert.Equal(t, pieces[i].Text, row.Text)
	}
}

func TestCompleteJobRollsBackWhenClaimLost(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	chunks := NewChunkRepository(client, testLogger())
	ctx := context.Background()

	_, err := jobs.RegisterObject(ctx, "documents", "slow.pdf", "", 1)
	require.NoError(t, err)

	stale := mustClaim(t, jobs, 10*time.Minute)
	time.Sleep(120 * time.Millisecond)
	reclaimed, err := jobs.ClaimNext(ctx, 50*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, reclaimed)

	// The first worker finishes late. Nothing it wrote may land: the DONE
	// transition and its chunk rows roll back together.
	err = chunks.CompleteJob(ctx, stale, makeChunks(stale.ID, 2))
	assert.ErrorIs(t, err, common.ErrClaimLost)

	rows, err := chunks.ListByJob(ctx, stale.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)

	got, err := jobs.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusInProgress, got.Status)

	// The rightful owner can still complete.
	require.NoError(t, chunks.CompleteJob(ctx, reclaimed, makeChunks(reclaimed.ID, 1)))
	got, err = jobs.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusDone, got.Status)
	assert.Equal(t, 1, got.ChunkCount)
}

func TestGetByIDs(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	chunks := NewChunkRepository(client, testLogger())
	ctx := context.Background()

	_, err := jobs.RegisterObject(ctx, "documents", "doc.pdf", "", 1)
	require.NoError(t, err)
	job := mustClaim(t, jobs, 10*time.Minute)
	pieces := makeChunks(job.ID, 4)
	require.NoError(t, chunks.CompleteJob(ctx, job, pieces))

	got, err := chunks.GetByIDs(ctx, []uuid.UUID{pieces[1].ID, pieces[3].ID})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = chunks.GetByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}
