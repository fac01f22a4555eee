package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchLocalEmitsSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := WatchLocal(ctx, LocalConfig{
		Roots:    []string{dir},
		Debounce: 5 * time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.zip"), []byte("x"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case p := <-events:
			assert.NotEqual(t, "skip.zip", filepath.Base(p))
			if filepath.Base(p) == "note.txt" {
				return
			}
		case err := <-errs:
			require.NoError(t, err)
		case <-deadline:
			t.Fatal("note.txt was never emitted")
		}
	}
}

// A rapid concurrent burst with a short debounce exercises the flush path
// interleaving with new events; every supported file must still surface.
func TestWatchLocalSurvivesWriteBurst(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const writers, perWriter = 4, 10

	events, errs, err := WatchLocal(ctx, LocalConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	}, testLogger())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				name := filepath.Join(dir, fmt.Sprintf("doc-%d-%d.md", w, i))
				_ = os.WriteFile(name, []byte("body"), 0o644)
			}
		}(w)
	}
	wg.Wait()

	seen := map[string]struct{}{}
	deadline := time.After(10 * time.Second)
	for len(seen) < writers*perWriter {
		select {
		case p := <-events:
			seen[filepath.Base(p)] = struct{}{}
		case err := <-errs:
			require.NoError(t, err)
		case <-deadline:
			t.Fatalf("only %d of %d files emitted", len(seen), writers*perWriter)
		}
	}
}
