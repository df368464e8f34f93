package generate

import "fmt"

// BuildPrompt renders the instruction sent to the model for one generation
// request. The source text is truncated to limit characters before being
// embedded; models have bounded context and the tail adds little.
// Deterministic, no failure path.
func BuildPrompt(mode Mode, text string, count, limit int) string {
	truncated := truncate(text, limit)

	switch mode {
	case ModeQuiz:
		return fmt.Sprintf(`Generate exactly %d multiple-choice quiz questions from the following text.

IMPORTANT: Return ONLY a JSON array of objects. Each object must have exactly these fields:
- "question": A clear, specific question
- "options": An array of exactly 4 answer options
- "correct_answer": The correct option, repeated verbatim from "options"
- "explanation": A one-sentence explanation of the correct answer

Format example:
[
  {"question": "What is...", "options": ["A", "B", "C", "D"], "correct_answer": "B", "explanation": "Because..."}
]

Text to analyze:
%s
`, count, truncated)

	case ModeTest:
		return fmt.Sprintf(`Generate exactly %d test questions from the following text, mixing true/false and short-answer items.

IMPORTANT: Return ONLY a JSON array of objects. Each object must have a "type" field:
- type "true_false": fields "statement" and "answer" ("true" or "false")
- type "short_answer": fields "question" and "answer"

Format example:
[
  {"type": "true_false", "statement": "The sky is green.", "answer": "false"},
  {"type": "short_answer", "question": "What is...", "answer": "It is..."}
]

Text to analyze:
%s
`, count, truncated)

	default:
		return fmt.Sprintf(`Generate exactly %d educational flashcards from the following text.

IMPORTANT: Return ONLY a JSON array of objects. Each object must have exactly two fields:
- "question": A clear, specific question
- "answer": A concise, accurate answer

Format example:
[
  {"question": "What is...", "answer": "It is..."},
  {"question": "How does...", "answer": "It works by..."}
]

Text to analyze:
%s
`, count, truncated)
	}
}

// truncate cuts text to at most limit runes without splitting a UTF-8
// sequence mid-character.
func truncate(text string, limit int) string {
	if limit <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
