package export

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
)

type testJobs struct {
	jobs []*entity.IngestJob
}

func (j *testJobs) RegisterObject(ctx context.Context, bucket, key, etag string, size int64) (bool, error) {
	return false, nil
}

func (j *testJobs) ClaimNext(ctx context.Context, staleAfter time.Duration) (*entity.IngestJob, error) {
	return nil, nil
}

func (j *testJobs) MarkError(ctx context.Context, job *entity.IngestJob, stage constants.Stage, message string) error {
	return nil
}

func (j *testJobs) GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestJob, error) {
	return nil, nil
}

func (j *testJobs) ListRecent(ctx context.Context, limit int) ([]*entity.IngestJob, error) {
	return j.jobs, nil
}

func (j *testJobs) CountByStatus(ctx context.Context) (map[constants.JobStatus]int, error) {
	return nil, nil
}

func TestExportJobsXLSX(t *testing.T) {
	stage := constants.StageEmbed
	msg := "model not loaded"
	finished := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	repo := &testJobs{jobs: []*entity.IngestJob{
		{
			ID:         uuid.New(),
			ObjectKey:  "report.pdf",
			Status:     constants.JobStatusDone,
			Attempts:   1,
			ChunkCount: 7,
			CreatedAt:  finished.Add(-time.Hour),
			FinishedAt: &finished,
		},
		{
			ID:           uuid.New(),
			ObjectKey:    "broken.pdf",
			Status:       constants.JobStatusError,
			Attempts:     2,
			FailureStage: &stage,
			ErrorMessage: &msg,
			CreatedAt:    finished.Add(-time.Hour),
		},
	}}
	svc := NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	data, err := svc.ExportJobsXLSX(context.Background(), 20)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Jobs")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two jobs

	assert.Equal(t, "Job ID", rows[0][0])
	assert.Equal(t, "report.pdf", rows[1][1])
	assert.Equal(t, "DONE", rows[1][2])
	assert.Equal(t, "broken.pdf", rows[2][1])
	assert.Equal(t, "EMBED", rows[2][5])
	assert.Equal(t, "model not loaded", rows[2][6])
}

func TestTruncateKeepsRuneBoundaries(t *testing.T) {
	s := strings.Repeat("ü", 100)

	got := truncate(s, 10)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 10, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "…"))

	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "", truncate("", 5))
}
