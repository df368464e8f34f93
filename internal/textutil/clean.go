// Package textutil provides the pure text transformations used by the
// document pipeline: normalization of raw extracted text and sentence-aware
// chunking. Everything here is deterministic and free of I/O.
package textutil

import (
	"regexp"
	"strings"
)

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	pageNumberLine = regexp.MustCompile(`(?m)^\s*\d+\s*$`)

	// Header/footer heuristics. A matching line is removed in its entirety.
	headerFooterPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?mi)^.*\b(chapter|section|page)\s+\d+.*$`), // Chapter 1, Section 2, Page 3
		regexp.MustCompile(`(?mi)^.*\b\d{1,2}/\d{1,2}/\d{4}.*$`),        // dates (MM/DD/YYYY)
		regexp.MustCompile(`(?mi)^.*\b\d{1,2}:\d{2}.*$`),                // times (HH:MM)
		regexp.MustCompile(`(?mi)^.*\b(www\.|http://|https://).*$`),     // URLs
	}

	multiSpace      = regexp.MustCompile(` {2,}`)
	hyphenLineBreak = regexp.MustCompile(`(\w+)-\s*\n\s*(\w+)`)
	strayPunctLine  = regexp.MustCompile(`\n\s*[.,;:!?]+\s*\n`)
	looseNewlines   = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// Clean normalizes raw text extracted from a document: it strips page
// numbers, header/footer noise, rejoins hyphenated line breaks, and
// collapses excess whitespace. Empty input yields an empty string.
//
// Punctuation-only line removal is a single non-overlapping pass, so a run
// of adjacent punctuation-only lines keeps every second line. For such
// inputs a second Clean removes what the first left behind.
func Clean(raw string) string {
	if raw == "" {
		return ""
	}

	text := excessNewlines.ReplaceAllString(raw, "\n\n")
	text = pageNumberLine.ReplaceAllString(text, "")
	for _, pattern := range headerFooterPatterns {
		text = pattern.ReplaceAllString(text, "")
	}
	text = multiSpace.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	text = strings.Join(lines, "\n")

	// "inter-\nnational" -> "international"
	text = hyphenLineBreak.ReplaceAllString(text, "${1}${2}")
	text = strayPunctLine.ReplaceAllString(text, "\n")
	text = looseNewlines.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
