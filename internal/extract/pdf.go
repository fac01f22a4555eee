package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// pdfExtract shells out to pdftotext. Stdin is not an option with poppler
// when layout mode is on, so the payload goes through a temp file.
func (e *extractor) pdfExtract(ctx context.Context, data []byte) (Result, error) {
	start := time.Now()

	tmp, err := os.CreateTemp("", "ingest-*.pdf")
	if err != nil {
		return Result{}, fmt.Errorf("temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return Result{}, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return Result{}, fmt.Errorf("close temp file: %w", err)
	}

	out, err := e.runner.Run(ctx, e.pdftotext,
		"-layout", "-enc", "UTF-8", "-eol", "unix",
		tmp.Name(), "-")
	if err != nil {
		return Result{}, fmt.Errorf("pdftotext: %w", err)
	}

	text := string(out)
	res := Result{
		Text:     text,
		Pages:    1 + strings.Count(text, "\f"),
		Method:   "pdftotext",
		Duration: time.Since(start),
	}
	if strings.TrimSpace(text) == "" {
		res.Warnings = append(res.Warnings, "no extractable text, document may be scanned")
	}
	return res, nil
}

func isPDF(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}
