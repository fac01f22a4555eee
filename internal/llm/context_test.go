package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knowledgepipe/knowledgepipe/internal/entity"
	"github.com/knowledgepipe/knowledgepipe/internal/search"
)

type wordCounter struct{}

func (wordCounter) CountTokens(text string) int {
	return len(strings.Fields(text))
}

func match(text string, tokens int) search.Match {
	return search.Match{Chunk: entity.Chunk{Text: text, TokenCount: tokens}}
}

func TestBuildContextRespectsBudget(t *testing.T) {
	matches := []search.Match{
		match("alpha", 10),
		match("beta", 10),
		match("gamma", 10),
	}

	got := BuildContext(matches, 20, wordCounter{})
	assert.Contains(t, got, "alpha")
	assert.Contains(t, got, "beta")
	assert.NotContains(t, got, "gamma")
}

func TestBuildContextAlwaysIncludesFirstMatch(t *testing.T) {
	matches := []search.Match{match("huge chunk", 5000)}

	got := BuildContext(matches, 10, wordCounter{})
	assert.Contains(t, got, "huge chunk")
}

func TestBuildContextCountsWhenTokenCountMissing(t *testing.T) {
	matches := []search.Match{
		match("one two three", 0), // 3 tokens by the counter
		match("four five", 0),     // 2 tokens, over a budget of 4
	}

	got := BuildContext(matches, 4, wordCounter{})
	assert.Contains(t, got, "one two three")
	assert.NotContains(t, got, "four five")
}

func TestBuildContextSeparatesChunks(t *testing.T) {
	matches := []search.Match{match("a", 1), match("b", 1)}

	got := BuildContext(matches, 100, wordCounter{})
	assert.Equal(t, "a\n\n---\n\nb", got)
}

func TestBuildContextEmptyMatches(t *testing.T) {
	assert.Empty(t, BuildContext(nil, 100, wordCounter{}))
}
