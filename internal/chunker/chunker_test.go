package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChunker(t *testing.T, size, overlap int) *Chunker {
	t.Helper()
	c, err := New(size, overlap)
	if err != nil {
		t.Skipf("tokenizer unavailable: %v", err)
	}
	return c
}

func TestNewRejectsBadPolicy(t *testing.T) {
	_, err := New(0, 0)
	require.Error(t, err)

	_, err = New(100, 100)
	require.Error(t, err)

	_, err = New(100, -1)
	require.Error(t, err)
}

func TestSplitIsDeterministic(t *testing.T) {
	c := newTestChunker(t, 100, 20)
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 40)

	first, err := c.Split(text)
	require.NoError(t, err)
	second, err := c.Split(text)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Text, second[i].Text)
		assert.Equal(t, first[i].TokenCount, second[i].TokenCount)
	}
}

func TestSplitRespectsSize(t *testing.T) {
	c := newTestChunker(t, 100, 20)
	text := strings.Repeat("word ", 500)

	pieces, err := c.Split(text)
	require.NoError(t, err)
	require.Greater(t, len(pieces), 1)
	for _, p := range pieces {
		assert.LessOrEqual(t, len(p.Text), 100)
		assert.Positive(t, p.TokenCount)
	}
}

func TestSplitWhitespaceOnlyYieldsNothing(t *testing.T) {
	c := newTestChunker(t, 100, 20)

	pieces, err := c.Split("   \n\t  ")
	require.NoError(t, err)
	assert.Empty(t, pieces)
}

func TestSplitShortTextSinglePiece(t *testing.T) {
	c := newTestChunker(t, 1000, 100)

	pieces, err := c.Split("just a short note")
	require.NoError(t, err)
	require.Len(t, pieces, 1)
	assert.Equal(t, "just a short note", pieces[0].Text)
}
