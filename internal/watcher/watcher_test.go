package watcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/internal/entity"
	"github.com/knowledgepipe/knowledgepipe/internal/objectstore"
)

type testStore struct {
	objects []objectstore.ObjectInfo
	err     error
}

func (s *testStore) List(ctx context.Context, prefix string) ([]objectstore.ObjectInfo, error) {
	return s.objects, s.err
}

func (s *testStore) Fetch(ctx context.Context, key string) ([]byte, error) { return nil, nil }

func (s *testStore) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	return nil
}

type testJobs struct {
	registered map[string]int
}

func (j *testJobs) RegisterObject(ctx context.Context, bucket, key, etag string, size int64) (bool, error) {
	if j.registered == nil {
		j.registered = map[string]int{}
	}
	j.registered[key]++
	return j.registered[key] == 1, nil
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
	return nil, nil
}

func (j *testJobs) CountByStatus(ctx context.Context) (map[constants.JobStatus]int, error) {
	return nil, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunOnceFiltersUnsupportedTypes(t *testing.T) {
	store := &testStore{objects: []objectstore.ObjectInfo{
		{Key: "report.pdf", Size: 100},
		{Key: "notes.md", Size: 10},
		{Key: "readme.txt", Size: 5},
		{Key: "photo.jpg", Size: 999},
		{Key: "archive.zip", Size: 999},
	}}
	jobs := &testJobs{}
	w := New(store, jobs, "", time.Minute, testLogger())

	w.runOnce(context.Background(), "documents")

	assert.Len(t, jobs.registered, 3)
	assert.Contains(t, jobs.registered, "report.pdf")
	assert.Contains(t, jobs.registered, "notes.md")
	assert.Contains(t, jobs.registered, "readme.txt")
	assert.NotContains(t, jobs.registered, "photo.jpg")
}

func TestRunOnceIsIdempotentAcrossTicks(t *testing.T) {
	store := &testStore{objects: []objectstore.ObjectInfo{{Key: "doc.pdf", Size: 1}}}
	jobs := &testJobs{}
	w := New(store, jobs, "", time.Minute, testLogger())

	w.runOnce(context.Background(), "documents")
	w.runOnce(context.Background(), "documents")

	// Registration happens both times; the repository decides it is a no-op.
	assert.Equal(t, 2, jobs.registered["doc.pdf"])
}

func TestRunOnceSurvivesListingFailure(t *testing.T) {
	store := &testStore{err: errors.New("bucket unavailable")}
	jobs := &testJobs{}
	w := New(store, jobs, "", time.Minute, testLogger())

	w.runOnce(context.Background(), "documents")

	assert.Empty(t, jobs.registered)
}
