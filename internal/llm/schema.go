package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// answerSchema constrains the model's JSON reply before it is trusted.
const answerSchema = `{
  "type": "object",
  "properties": {
    "answer": {"type": "string", "minLength": 1},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1}
  },
  "required": ["answer", "confidence"],
  "additionalProperties": false
}`

var compiledAnswerSchema = jsonschema.MustCompileString("answer.json", answerSchema)

// ParseAnswer validates raw model output against the answer schema and
// decodes it.
func ParseAnswer(raw string) (Answer, error) {
	raw = strings.TrimSpace(raw)

	var doc any
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return Answer{}, fmt.Errorf("model output is not JSON: %w", err)
	}
	if err := compiledAnswerSchema.Validate(doc); err != nil {
		return Answer{}, fmt.Errorf("model output failed schema validation: %w", err)
	}

	var out Answer
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Answer{}, fmt.Errorf("decode answer: %w", err)
	}
	return out, nil
}
