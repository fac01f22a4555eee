package extract

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	out  []byte
	err  error
	args []string
}

func (r *stubRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	r.args = append([]string{name}, args...)
	return r.out, r.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestExtractPlainText(t *testing.T) {
	e := NewExtractor(&stubRunner{}, "pdftotext", testLogger())

	res, err := e.Extract(context.Background(), "notes.txt", []byte("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", res.Text)
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, "passthrough", res.Method)
}

func TestExtractMarkdown(t *testing.T) {
	e := NewExtractor(&stubRunner{}, "pdftotext", testLogger())

	res, err := e.Extract(context.Background(), "README.md", []byte("# Title\nbody"))
	require.NoError(t, err)
	assert.Equal(t, "# Title\nbody", res.Text)
}

func TestExtractRejectsInvalidUTF8(t *testing.T) {
	e := NewExtractor(&stubRunner{}, "pdftotext", testLogger())

	_, err := e.Extract(context.Background(), "bad.txt", []byte{0xff, 0xfe, 0x00})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestExtractRejectsUnsupportedExtension(t *testing.T) {
	e := NewExtractor(&stubRunner{}, "pdftotext", testLogger())

	_, err := e.Extract(context.Background(), "data.csv", []byte("a,b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestExtractPDFCountsPages(t *testing.T) {
	runner := &stubRunner{out: []byte("page one\fpage two\fpage three")}
	e := NewExtractor(runner, "pdftotext", testLogger())

	res, err := e.Extract(context.Background(), "doc.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Pages)
	assert.Equal(t, "pdftotext", res.Method)

	require.NotEmpty(t, runner.args)
	assert.Equal(t, "pdftotext", runner.args[0])
	assert.Contains(t, runner.args, "-layout")
}

func TestExtractPDFEmptyTextWarns(t *testing.T) {
	runner := &stubRunner{out: []byte("   \n")}
	e := NewExtractor(runner, "pdftotext", testLogger())

	res, err := e.Extract(context.Background(), "scan.pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
}

func TestExtractPDFRunnerFailure(t *testing.T) {
	runner := &stubRunner{err: errors.New("exit status 1")}
	e := NewExtractor(runner, "pdftotext", testLogger())

	_, err := e.Extract(context.Background(), "doc.pdf", []byte("%PDF-1.4"))
	require.Error(t, err)
}
