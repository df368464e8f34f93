package textutil_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsmith/internal/textutil"
)

func TestSplitSentences(t *testing.T) {
	got := textutil.SplitSentences("First one. Second one! Third one? Trailing bit")
	assert.Equal(t, []string{"First one.", "Second one!", "Third one?", "Trailing bit"}, got)
}

func TestSplitSentencesAbbreviationLimitation(t *testing.T) {
	// The boundary heuristic has no abbreviation awareness; "Dr." splits.
	got := textutil.SplitSentences("Dr. Smith arrived. He sat.")
	assert.Equal(t, []string{"Dr.", "Smith arrived.", "He sat."}, got)
}

func TestChunkEmptyInput(t *testing.T) {
	assert.Empty(t, textutil.Chunk("", 100))
}

func TestChunkSingleChunkUnderBudget(t *testing.T) {
	got := textutil.Chunk("One short line. Another short line.", 100)
	assert.Equal(t, []string{"One short line. Another short line."}, got)
}

func TestChunkGreedyPacking(t *testing.T) {
	assert.Equal(t, []string{"aa.", "bb.", "cc."}, textutil.Chunk("aa. bb. cc.", 7))
	assert.Equal(t, []string{"aa. bb.", "cc."}, textutil.Chunk("aa. bb. cc.", 8))
}

func TestChunkForceSplitsOversizedSentence(t *testing.T) {
	assert.Equal(t, []string{"abc", "def", "ghi", "j"}, textutil.Chunk("abcdefghij", 3))
}

func TestChunkNoSentencePunctuation(t *testing.T) {
	// A text with no sentence-ending punctuation is one sentence and gets
	// force-split; whitespace at slice edges is trimmed away.
	assert.Equal(t, []string{"hello", "worl", "d"}, textutil.Chunk("hello world", 5))
}

func TestChunkProperties(t *testing.T) {
	text := "Go is expressive. Concurrency is a core concern! Channels connect goroutines? The scheduler multiplexes many goroutines onto a small number of threads."
	squash := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}

	for budget := 1; budget <= 40; budget++ {
		chunks := textutil.Chunk(text, budget)
		require.NotEmpty(t, chunks, "budget %d", budget)

		for _, chunk := range chunks {
			assert.LessOrEqual(t, len(chunk), budget, "budget %d chunk %q", budget, chunk)
			// Re-chunking a produced chunk is a no-op.
			assert.Equal(t, []string{chunk}, textutil.Chunk(chunk, budget), "budget %d", budget)
		}

		// Nothing but whitespace is ever dropped or reordered.
		assert.Equal(t, squash(text), squash(strings.Join(chunks, " ")), "budget %d", budget)
	}
}
