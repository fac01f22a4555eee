package llm

import "context"

// Answer is the structured reply of the answer model.
type Answer struct {
	Answer     string  `json:"answer"`
	Confidence float32 `json:"confidence"`
}

// Answerer produces a grounded answer to a question given retrieved
// context text.
type Answerer interface {
	Answer(ctx context.Context, question, contextText string) (Answer, error)
}
