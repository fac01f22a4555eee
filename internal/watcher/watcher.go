package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/knowledgepipe/knowledgepipe/constants"
	"github.com/knowledgepipe/knowledgepipe/internal/objectstore"
	"github.com/knowledgepipe/knowledgepipe/internal/repository"
)

// Watcher polls the ingest bucket and registers a job for every supported
// object it has not seen. Registration is idempotent, so re-observing an
// object across ticks is harmless.
type Watcher struct {
	store    objectstore.Store
	jobs     repository.JobRepository
	prefix   string
	interval time.Duration
	logger   *slog.Logger
}

func New(store objectstore.Store, jobs repository.JobRepository, prefix string, interval time.Duration, logger *slog.Logger) *Watcher {
	return &Watcher{store: store, jobs: jobs, prefix: prefix, interval: interval, logger: logger}
}

// Run polls until ctx is cancelled. A failed listing is logged and retried
// on the next tick; it never stops the watcher.
func (w *Watcher) Run(ctx context.Context, bucket string) {
	w.logger.Info("watcher started", "bucket", bucket, "prefix", w.prefix, "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.runOnce(ctx, bucket)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watcher stopping")
			return
		case <-ticker.C:
			w.runOnce(ctx, bucket)
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context, bucket string) {
	objects, err := w.store.List(ctx, w.prefix)
	if err != nil {
		w.logger.Error("bucket listing failed", "bucket", bucket, "error", err)
		return
	}

	var registered int
	for _, obj := range objects {
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(obj.Key)), ".")
		if !constants.IsSupportedFileType(ext) {
			continue
		}
		created, err := w.jobs.RegisterObject(ctx, bucket, obj.Key, obj.ETag, obj.Size)
		if err != nil {
			w.logger.Error("registration failed", "object_key", obj.Key, "error", err)
			continue
		}
		if created {
			registered++
		}
	}
	if registered > 0 {
		w.logger.Info("watcher pass complete", "observed", len(objects), "registered", registered)
	}
}
