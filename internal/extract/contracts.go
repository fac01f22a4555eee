package extract

import (
	"context"
	"time"
)

// Result is the extracted plain text plus how it was obtained.
type Result struct {
	Text     string
	Pages    int
	Method   string
	Duration time.Duration
	Warnings []string
}

// TextExtractor turns a fetched object into plain text. The filename
// carries the extension that selects the extraction path.
type TextExtractor interface {
	Extract(ctx context.Context, filename string, data []byte) (Result, error)
}
