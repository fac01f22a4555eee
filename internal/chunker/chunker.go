package chunker

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
	"github.com/tmc/langchaingo/textsplitter"
)

const tokenEncoding = "cl100k_base"

// Piece is one split of a document, in document order.
type Piece struct {
	Text       string
	TokenCount int
}

// Chunker splits extracted text deterministically. The same text and the
// same policy always yield the same pieces.
type Chunker struct {
	splitter textsplitter.RecursiveCharacter
	enc      *tiktoken.Tiktoken
}

func New(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, size), got %d", overlap)
	}
	enc, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return nil, fmt.Errorf("load %s encoding: %w", tokenEncoding, err)
	}
	return &Chunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(size),
			textsplitter.WithChunkOverlap(overlap),
		),
		enc: enc,
	}, nil
}

// Split returns the ordered pieces of text. Whitespace-only input yields
// no pieces.
func (c *Chunker) Split(text string) ([]Piece, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	parts, err := c.splitter.SplitText(text)
	if err != nil {
		return nil, fmt.Errorf("split text: %w", err)
	}
	pieces := make([]Piece, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		pieces = append(pieces, Piece{
			Text:       part,
			TokenCount: len(c.enc.Encode(part, nil, nil)),
		})
	}
	return pieces, nil
}

// CountTokens exposes the tokenizer for context budgeting.
func (c *Chunker) CountTokens(text string) int {
	return len(c.enc.Encode(text, nil, nil))
}
