package main

import (
	"context"
	"log/slog"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/knowledgepipe/knowledgepipe/internal/common"
	"github.com/knowledgepipe/knowledgepipe/internal/objectstore"
	"github.com/knowledgepipe/knowledgepipe/internal/watcher"
)

// dropsync watches local drop folders and uploads supported files into the
// ingest bucket, where the pipeline picks them up.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if len(os.Args) < 2 {
		logger.Error("usage: dropsync <dir> [dir...]")
		os.Exit(1)
	}
	roots := os.Args[1:]

	cfg := common.LoadConfig()
	if cfg.ObjectStore.AccessKey == "" || cfg.ObjectStore.SecretKey == "" {
		logger.Error("MINIO_ACCESS_KEY and MINIO_SECRET_KEY are required")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := objectstore.NewMinioStore(ctx, cfg.ObjectStore, logger)
	if err != nil {
		logger.Error("object store setup failed", "error", err)
		os.Exit(1)
	}

	events, errs, err := watcher.WatchLocal(ctx, watcher.LocalConfig{
		Roots:       roots,
		InitialScan: true,
		Debounce:    500 * time.Millisecond,
	}, logger)
	if err != nil {
		logger.Error("watcher setup failed", "error", err)
		os.Exit(1)
	}
	logger.Info("dropsync started", "roots", strings.Join(roots, ","), "bucket", cfg.ObjectStore.Bucket)

	for {
		select {
		case <-ctx.Done():
			logger.Info("dropsync stopping")
			return
		case err, ok := <-errs:
			if ok && err != nil {
				logger.Error("watch error", "error", err)
			}
		case path, ok := <-events:
			if !ok {
				return
			}
			if err := upload(ctx, store, cfg.ObjectStore.Prefix, path, logger); err != nil {
				logger.Error("upload failed", "path", path, "error", err)
			}
		}
	}
}

func upload(ctx context.Context, store objectstore.Store, prefix, path string, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	key := filepath.Base(path)
	if prefix != "" {
		key = strings.TrimSuffix(prefix, "/") + "/" + key
	}
	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := store.Upload(ctx, key, f, info.Size(), contentType); err != nil {
		return err
	}
	logger.Info("synced file", "path", path, "object_key", key)
	return nil
}
