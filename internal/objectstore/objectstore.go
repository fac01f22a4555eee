package objectstore

import (
	"context"
	"io"
)

// ObjectInfo describes one stored object as seen by a listing.
type ObjectInfo struct {
	Key  string
	ETag string
	Size int64
}

// Store is the ingest bucket. List feeds the watcher; Fetch feeds the
// pipeline; Upload feeds the drop-folder syncer.
type Store interface {
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	Fetch(ctx context.Context, key string) ([]byte, error)
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
}
