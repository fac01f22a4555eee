package repository

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/gen/ent/ingestjob"
	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
)

func mustClaim(t *testing.T, jobs JobRepository, staleAfter time.Duration) *entity.IngestJob {
	t.Helper()
	job, err := jobs.ClaimNext(context.Background(), staleAfter)
	require.NoError(t, err)
	require.NotNil(t, job)
	return job
}

func TestRegisterObjectIdempotent(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	ctx := context.Background()

	created, err := jobs.RegisterObject(ctx, "documents", "doc.pdf", "etag-1", 100)
	require.NoError(t, err)
	assert.True(t, created)

	// Re-observing the same object must be a DB-level no-op, not a
	// read-then-write check.
	created, err = jobs.RegisterObject(ctx, "documents", "doc.pdf", "etag-1", 100)
	require.NoError(t, err)
	assert.False(t, created)

	n, err := client.IngestJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestClaimNextEmptyQueue(t *testing.T) {
	jobs := NewJobRepository(openTestClient(t), testLogger())

	job, err := jobs.ClaimNext(context.Background(), 10*time.Minute)
	require.NoError(t, err)
	assert.Nil(t, job)
}

func TestClaimNextClaimsOldestPending(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	ctx := context.Background()

	_, err := jobs.RegisterObject(ctx, "documents", "first.pdf", "", 1)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)
	_, err = jobs.RegisterObject(ctx, "documents", "second.pdf", "", 1)
	require.NoError(t, err)

	job, err := jobs.ClaimNext(ctx, 10*time.Minute)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, "first.pdf", job.ObjectKey)
	assert.Equal(t, constants.JobStatusInProgress, job.Status)
	assert.Equal(t, 1, job.Attempts)
	require.NotNil(t, job.ClaimedAt)
}

func TestClaimNextAtMostOneWinner(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	ctx := context.Background()

	_, err := jobs.RegisterObject(ctx, "documents", "contested.pdf", "", 1)
	require.NoError(t, err)

	const claimants = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []*entity.IngestJob
	)
	for i := 0; i < claimants; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			job, err := jobs.ClaimNext(ctx, 10*time.Minute)
			require.NoError(t, err)
			if job != nil {
				mu.Lock()
				winners = append(winners, job)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1, "exactly one claimant may win the job")
	assert.Equal(t, 1, winners[0].Attempts)

	row, err := client.IngestJob.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusInProgress), row.Status)
	assert.Equal(t, 1, row.Attempts)
}

func TestClaimNextReclaimsStaleExactlyOnce(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	ctx := context.Background()

	_, err := jobs.RegisterObject(ctx, "documents", "slow.pdf", "", 1)
	require.NoError(t, err)

	stale := mustClaim(t, jobs, 10*time.Minute)
	time.Sleep(120 * time.Millisecond)

	// The abandoned claim is past staleness; a new worker takes it over.
	reclaimed, err := jobs.ClaimNext(ctx, 50*time.Millisecond)
	require.NoError(t, err)
	require.NotNil(t, reclaimed)
	assert.Equal(t, stale.ID, reclaimed.ID)
	assert.Equal(t, 2, reclaimed.Attempts)

	// The fresh claim is not runnable again.
	again, err := jobs.ClaimNext(ctx, 50*time.Millisecond)
	require.NoError(t, err)
	assert.Nil(t, again)

	// The first worker's claim token is dead: its late ERROR transition
	// must not overwrite the new owner.
	err = jobs.MarkError(ctx, stale, constants.StageEmbed, "late failure")
	assert.ErrorIs(t, err, common.ErrClaimLost)

	row, err := client.IngestJob.Query().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusInProgress), row.Status)
	assert.Nil(t, row.ErrorMessage)
}

func TestMarkErrorRecordsStageAndTruncatesMessage(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	ctx := context.Background()

	_, err := jobs.RegisterObject(ctx, "documents", "bad.pdf", "", 1)
	require.NoError(t, err)
	job := mustClaim(t, jobs, 10*time.Minute)

	long := strings.Repeat("é", maxErrorMessageLen+500)
	require.NoError(t, jobs.MarkError(ctx, job, constants.StageExtract, long))

	row, err := client.IngestJob.Query().Where(ingestjob.ID(job.ID)).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusError), row.Status)
	require.NotNil(t, row.FailureStage)
	assert.Equal(t, string(constants.StageExtract), *row.FailureStage)
	require.NotNil(t, row.ErrorMessage)
	assert.True(t, utf8.ValidString(*row.ErrorMessage))
	assert.Equal(t, maxErrorMessageLen, utf8.RuneCountInString(*row.ErrorMessage))
	require.NotNil(t, row.FinishedAt)
}

func TestGetByID(t *testing.T) {
	client := openTestClient(t)
	jobs := NewJobRepository(client, testLogger())
	ctx := context.Background()

	_, err := jobs.RegisterObject(ctx, "documents", "doc.pdf", "etag", 42)
	require.NoError(t, err)
	claimed := mustClaim(t, jobs, 10*time.Minute)

	got, err := jobs.GetByID(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, "doc.pdf", got.ObjectKey)
	assert.Equal(t, constants.JobStatusInProgress, got.Status)

	_, err = jobs.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, common.ErrNotFound)
}
