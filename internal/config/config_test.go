package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardsmith/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"CHUNK_SIZE_CHARS", "MAX_TEXT_LENGTH", "MAX_FILE_SIZE_MB",
		"MIN_CARD_COUNT", "DEFAULT_CARD_COUNT", "MAX_CARD_COUNT", "PROMPT_CHAR_LIMIT",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()
	assert.Equal(t, 2000, cfg.ChunkSize)
	assert.Equal(t, 500_000, cfg.MaxTextLength)
	assert.Equal(t, 10, cfg.MaxFileSizeMB)
	assert.Equal(t, 1, cfg.MinCardCount)
	assert.Equal(t, 5, cfg.DefaultCardCount)
	assert.Equal(t, 20, cfg.MaxCardCount)
	assert.Equal(t, 5000, cfg.PromptCharLimit)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverridesAndFallbacks(t *testing.T) {
	t.Setenv("CHUNK_SIZE_CHARS", "1234")
	t.Setenv("MAX_FILE_SIZE_MB", "not-a-number")

	cfg := config.Load()
	assert.Equal(t, 1234, cfg.ChunkSize)
	assert.Equal(t, 10, cfg.MaxFileSizeMB) // falls back on parse failure
}

func TestValidate(t *testing.T) {
	base := config.Load()

	bad := base
	bad.MaxTextLength = 10
	assert.Error(t, bad.Validate())

	bad = base
	bad.DefaultCardCount = 99
	assert.Error(t, bad.Validate())

	bad = base
	bad.ChunkSize = 0
	assert.Error(t, bad.Validate())
}

func TestMaxFileSizeBytes(t *testing.T) {
	cfg := config.Config{MaxFileSizeMB: 10}
	assert.Equal(t, int64(10<<20), cfg.MaxFileSizeBytes())
}
