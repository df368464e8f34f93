package textutil

import (
	"regexp"
	"strings"
)

// sentenceEnd marks a sentence boundary: terminal punctuation followed by
// whitespace. Known limitation: abbreviations like "Dr." or "e.g." split
// falsely; the heuristic is intentionally kept simple.
var sentenceEnd = regexp.MustCompile(`[.!?]\s+`)

// SplitSentences splits text on sentence-ending punctuation followed by
// whitespace. The punctuation stays with its sentence, the whitespace run is
// dropped.
func SplitSentences(text string) []string {
	var sentences []string
	prev := 0
	for _, loc := range sentenceEnd.FindAllStringIndex(text, -1) {
		sentences = append(sentences, text[prev:loc[0]+1])
		prev = loc[1]
	}
	if prev < len(text) {
		sentences = append(sentences, text[prev:])
	}
	return sentences
}

// Chunk splits text into segments of at most budget characters, packing
// whole sentences greedily and preserving order. A single sentence longer
// than the budget is force-split into fixed-size slices so that no text is
// ever dropped. Re-chunking any produced chunk with the same budget yields
// that chunk unchanged.
func Chunk(text string, budget int) []string {
	if text == "" || budget < 1 {
		return nil
	}

	var chunks []string
	current := ""

	for _, sentence := range SplitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}

		if len(current)+len(sentence)+1 > budget {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			if len(sentence) > budget {
				for i := 0; i < len(sentence); i += budget {
					end := i + budget
					if end > len(sentence) {
						end = len(sentence)
					}
					if piece := strings.TrimSpace(sentence[i:end]); piece != "" {
						chunks = append(chunks, piece)
					}
				}
				current = ""
			} else {
				current = sentence + " "
			}
		} else {
			current += sentence + " "
		}
	}

	if final := strings.TrimSpace(current); final != "" {
		chunks = append(chunks, final)
	}
	return chunks
}
