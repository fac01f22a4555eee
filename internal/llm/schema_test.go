package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerValid(t *testing.T) {
	out, err := ParseAnswer(`{"answer": "42", "confidence": 0.9}`)
	require.NoError(t, err)
	assert.Equal(t, "42", out.Answer)
	assert.InDelta(t, 0.9, out.Confidence, 1e-6)
}

func TestParseAnswerTrimsWhitespace(t *testing.T) {
	out, err := ParseAnswer("\n  {\"answer\": \"yes\", \"confidence\": 1}  \n")
	require.NoError(t, err)
	assert.Equal(t, "yes", out.Answer)
}

func TestParseAnswerRejectsNonJSON(t *testing.T) {
	_, err := ParseAnswer("The answer is 42.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not JSON")
}

func TestParseAnswerRejectsMissingFields(t *testing.T) {
	_, err := ParseAnswer(`{"answer": "42"}`)
	require.Error(t, err)
}

func TestParseAnswerRejectsConfidenceOutOfRange(t *testing.T) {
	_, err := ParseAnswer(`{"answer": "42", "confidence": 1.5}`)
	require.Error(t, err)
}

func TestParseAnswerRejectsEmptyAnswer(t *testing.T) {
	_, err := ParseAnswer(`{"answer": "", "confidence": 0.5}`)
	require.Error(t, err)
}

func TestParseAnswerRejectsExtraFields(t *testing.T) {
	_, err := ParseAnswer(`{"answer": "42", "confidence": 0.5, "reasoning": "..."}`)
	require.Error(t, err)
}
