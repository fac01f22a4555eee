package llm

import "fmt"

const systemPrompt = `You answer questions using only the provided context.
Rules:
- Use only facts found in the context; do not invent information.
- Answer in the same language as the question.
- If the context does not contain the answer, say so plainly.
- Respond with ONLY a JSON object of the form {"answer": "...", "confidence": 0.0-1.0}. No prose outside the JSON.`

func userPrompt(question, contextText string) string {
	return fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextText, question)
}
