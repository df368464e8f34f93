package generate

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"cardsmith/internal/models"
)

var (
	// ErrUnparsableResponse means the reply held no syntactically valid JSON.
	ErrUnparsableResponse = errors.New("model returned an unparsable response")
	// ErrUnexpectedStructure means the JSON parsed but was not a record list
	// or a known envelope around one.
	ErrUnexpectedStructure = errors.New("unexpected response structure from model")
	// ErrEmptyResult means parsing succeeded but zero records survived
	// validation. A batch of zero is never returned successfully.
	ErrEmptyResult = errors.New("no valid records could be extracted from model response")
)

var (
	codeFence = regexp.MustCompile("```(?:json)?\\s*\\n?")
	// First JSON-array-of-objects shape anywhere in the text, matching
	// across lines. Recovers the array when the model wraps it in prose.
	arrayOfObjects = regexp.MustCompile(`(?s)\[\s*\{.*?\}\s*\]`)
)

// defence strips markdown code-fence markers anywhere in the text. The model
// may or may not wrap its answer in one.
func defence(text string) string {
	cleaned := codeFence.ReplaceAllString(text, "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	return strings.TrimSpace(cleaned)
}

// Parse turns a raw model reply into validated records for the given mode.
//
// The reply is untrusted and semi-structured: it may carry markdown fences,
// surrounding prose, or an envelope object around the actual list. Parse is
// permissive about all of that surrounding noise and strict about the shape
// of each extracted record. Records failing validation are logged and
// dropped; they never abort the batch unless nothing survives.
func (s *Service) Parse(ctx context.Context, raw string, mode Mode) ([]models.GenerationRecord, error) {
	sc := schemaFor(mode)
	lg := s.logger(ctx)

	text := defence(raw)
	if match := arrayOfObjects.FindString(text); match != "" {
		text = match
	}

	var payload any
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		lg.Error("model reply is not valid json", "err", err, "reply", preview(raw, 500))
		return nil, ErrUnparsableResponse
	}

	items, err := unwrap(payload, sc)
	if err != nil {
		return nil, err
	}

	records := make([]models.GenerationRecord, 0, len(items))
	for i, element := range items {
		item, ok := element.(map[string]any)
		if !ok {
			lg.Warn("skipping record: not an object", "index", i)
			continue
		}
		record, err := sc.validate(item)
		if err != nil {
			lg.Warn("skipping record", "index", i, "reason", err)
			continue
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrEmptyResult
	}
	return records, nil
}

// unwrap normalizes the parsed value to the record list: the list itself, or
// a single envelope object holding the list under a known key.
func unwrap(payload any, sc schema) ([]any, error) {
	switch v := payload.(type) {
	case []any:
		return v, nil
	case map[string]any:
		for _, key := range sc.envelopeKeys {
			inner, ok := v[key]
			if !ok {
				continue
			}
			list, ok := inner.([]any)
			if !ok {
				return nil, ErrUnexpectedStructure
			}
			return list, nil
		}
		return nil, ErrUnexpectedStructure
	default:
		return nil, ErrUnexpectedStructure
	}
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
