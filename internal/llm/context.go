package llm

import (
	"strings"

	"github.com/knowledgepipe/knowledgepipe/internal/search"
)

// TokenCounter reports prompt cost in model tokens.
type TokenCounter interface {
	CountTokens(text string) int
}

// BuildContext concatenates match texts best-first, stopping before the
// token budget is exceeded. At least the first match is always included,
// truncation of a single oversized chunk is left to the model's own limit.
func BuildContext(matches []search.Match, budget int, counter TokenCounter) string {
	var b strings.Builder
	used := 0
	for i, m := range matches {
		cost := m.Chunk.TokenCount
		if cost == 0 {
			cost = counter.CountTokens(m.Chunk.Text)
		}
		if i > 0 && used+cost > budget {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n\n---\n\n")
		}
		b.WriteString(m.Chunk.Text)
		used += cost
	}
	return b.String()
}
