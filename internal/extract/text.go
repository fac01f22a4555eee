package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/knowledgepipe/knowledgepipe/constants"
)

type extractor struct {
	runner    Runner
	pdftotext string
	logger    *slog.Logger
}

// NewExtractor builds the extraction dispatcher. pdftotextBin is the
// poppler binary to shell out to for PDFs.
func NewExtractor(runner Runner, pdftotextBin string, logger *slog.Logger) TextExtractor {
	return &extractor{runner: runner, pdftotext: pdftotextBin, logger: logger}
}

func (e *extractor) Extract(ctx context.Context, filename string, data []byte) (Result, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	if !constants.IsSupportedFileType(ext) {
		return Result{}, fmt.Errorf("unsupported file type %q", ext)
	}

	var res Result
	var err error
	if isPDF(filename) {
		res, err = e.pdfExtract(ctx, data)
	} else {
		res, err = plainExtract(data)
	}
	if err != nil {
		return Result{}, err
	}

	e.logger.Debug("extracted text",
		"file", filename, "method", res.Method,
		"pages", res.Pages, "chars", len(res.Text), "duration", res.Duration)
	return res, nil
}

// plainExtract handles txt and md payloads, which are already text.
func plainExtract(data []byte) (Result, error) {
	start := time.Now()
	if !utf8.Valid(data) {
		return Result{}, fmt.Errorf("payload is not valid UTF-8")
	}
	return Result{
		Text:     string(data),
		Pages:    1,
		Method:   "passthrough",
		Duration: time.Since(start),
	}, nil
}
