package generate

import (
	"fmt"
	"strings"

	"cardsmith/internal/models"
)

// Mode selects which kind of study artifact to generate.
type Mode string

const (
	// ModeFlashcards generates question/answer pairs.
	ModeFlashcards Mode = "flashcards"
	// ModeQuiz generates multiple-choice questions with four options.
	ModeQuiz Mode = "quiz"
	// ModeTest generates a mix of true/false and short-answer questions.
	ModeTest Mode = "test"
)

// ParseMode validates a mode string from a request.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.TrimSpace(raw)) {
	case ModeFlashcards:
		return ModeFlashcards, nil
	case ModeQuiz:
		return ModeQuiz, nil
	case ModeTest:
		return ModeTest, nil
	default:
		return "", fmt.Errorf("mode must be one of %q, %q, %q", ModeFlashcards, ModeQuiz, ModeTest)
	}
}

// schema binds a mode to its record shape: the envelope keys a wrapping
// object may use, and the per-record validation rule. Validation is strict
// about the record shape and returns a reason when a record must be skipped.
type schema struct {
	envelopeKeys []string
	validate     func(item map[string]any) (models.GenerationRecord, error)
}

func schemaFor(mode Mode) schema {
	switch mode {
	case ModeQuiz:
		return schema{
			envelopeKeys: []string{"questions", "quiz"},
			validate:     validateMultipleChoice,
		}
	case ModeTest:
		return schema{
			envelopeKeys: []string{"questions", "test"},
			validate:     validateTestItem,
		}
	default:
		return schema{
			envelopeKeys: []string{"flashcards", "cards"},
			validate:     validateFlashcard,
		}
	}
}

// stringField extracts a trimmed string field; non-string or absent values
// come back empty.
func stringField(item map[string]any, key string) string {
	v, _ := item[key].(string)
	return strings.TrimSpace(v)
}

func validateFlashcard(item map[string]any) (models.GenerationRecord, error) {
	question := stringField(item, "question")
	answer := stringField(item, "answer")
	if question == "" || answer == "" {
		return models.GenerationRecord{}, fmt.Errorf("missing question or answer")
	}
	return models.GenerationRecord{
		Kind:     models.KindFlashcard,
		Question: question,
		Answer:   answer,
	}, nil
}

const optionCount = 4

func validateMultipleChoice(item map[string]any) (models.GenerationRecord, error) {
	question := stringField(item, "question")
	if question == "" {
		return models.GenerationRecord{}, fmt.Errorf("missing question")
	}

	raw, ok := item["options"].([]any)
	if !ok || len(raw) != optionCount {
		return models.GenerationRecord{}, fmt.Errorf("expected exactly %d options", optionCount)
	}
	options := make([]string, 0, optionCount)
	for _, o := range raw {
		s, _ := o.(string)
		s = strings.TrimSpace(s)
		if s == "" {
			return models.GenerationRecord{}, fmt.Errorf("empty option")
		}
		options = append(options, s)
	}

	correct := stringField(item, "correct_answer")
	if correct == "" {
		return models.GenerationRecord{}, fmt.Errorf("missing correct_answer")
	}
	// Membership is case-sensitive on purpose: a mismatch here means the
	// model disagreed with itself about its own option text.
	member := false
	for _, o := range options {
		if o == correct {
			member = true
			break
		}
	}
	if !member {
		return models.GenerationRecord{}, fmt.Errorf("correct_answer is not one of the options")
	}

	return models.GenerationRecord{
		Kind:          models.KindMultipleChoice,
		Question:      question,
		Options:       options,
		CorrectAnswer: correct,
		Explanation:   stringField(item, "explanation"),
	}, nil
}

func validateTestItem(item map[string]any) (models.GenerationRecord, error) {
	switch typ := stringField(item, "type"); typ {
	case "true_false":
		statement := stringField(item, "statement")
		if statement == "" {
			return models.GenerationRecord{}, fmt.Errorf("missing statement")
		}
		answer := strings.ToLower(stringField(item, "answer"))
		if answer != "true" && answer != "false" {
			return models.GenerationRecord{}, fmt.Errorf("answer must be true or false")
		}
		return models.GenerationRecord{
			Kind:        models.KindTrueFalse,
			Statement:   statement,
			Answer:      answer,
			Explanation: stringField(item, "explanation"),
		}, nil
	case "short_answer":
		question := stringField(item, "question")
		answer := stringField(item, "answer")
		if question == "" || answer == "" {
			return models.GenerationRecord{}, fmt.Errorf("missing question or answer")
		}
		return models.GenerationRecord{
			Kind:     models.KindShortAnswer,
			Question: question,
			Answer:   answer,
		}, nil
	default:
		return models.GenerationRecord{}, fmt.Errorf("unknown item type %q", typ)
	}
}
