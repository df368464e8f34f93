package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config stores runtime configuration loaded from environment variables.
// It is constructed once at startup and passed into constructors; nothing
// mutates it afterwards.
type Config struct {
	Port     string
	LogLevel string

	// Provider settings. OpenAI wins when both are configured.
	OpenAIKey      string
	OpenAIEndpoint string
	OpenAIModel    string
	OllamaKey      string
	OllamaHost     string
	OllamaModel    string
	LLMTimeout     time.Duration

	// Text processing limits.
	MaxFileSizeMB int
	MaxTextLength int
	ChunkSize     int

	// Generation limits.
	MinCardCount     int
	DefaultCardCount int
	MaxCardCount     int
	PromptCharLimit  int
}

// Load reads configuration from the environment, providing sensible defaults.
func Load() Config {
	// Load .env file if it exists (useful for development)
	_ = godotenv.Load()
	return Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIEndpoint: getEnv("OPENAI_API_ENDPOINT", "https://api.openai.com/v1"),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OllamaKey:      os.Getenv("OLLAMA_API_KEY"),
		OllamaHost:     getEnv("OLLAMA_HOST", "https://ollama.com"),
		OllamaModel:    getEnv("OLLAMA_MODEL", "gpt-oss:120b-cloud"),
		LLMTimeout:     time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,

		MaxFileSizeMB: getEnvInt("MAX_FILE_SIZE_MB", 10),
		MaxTextLength: getEnvInt("MAX_TEXT_LENGTH", 500_000),
		ChunkSize:     getEnvInt("CHUNK_SIZE_CHARS", 2000),

		MinCardCount:     getEnvInt("MIN_CARD_COUNT", 1),
		DefaultCardCount: getEnvInt("DEFAULT_CARD_COUNT", 5),
		MaxCardCount:     getEnvInt("MAX_CARD_COUNT", 20),
		PromptCharLimit:  getEnvInt("PROMPT_CHAR_LIMIT", 5000),
	}
}

// Validate checks that the configured limits are coherent.
func (c Config) Validate() error {
	if c.MaxFileSizeMB < 1 {
		return fmt.Errorf("MAX_FILE_SIZE_MB must be at least 1, got %d", c.MaxFileSizeMB)
	}
	if c.MaxTextLength < 1000 {
		return fmt.Errorf("MAX_TEXT_LENGTH must be at least 1000, got %d", c.MaxTextLength)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("CHUNK_SIZE_CHARS must be at least 1, got %d", c.ChunkSize)
	}
	if c.PromptCharLimit < 1 {
		return fmt.Errorf("PROMPT_CHAR_LIMIT must be at least 1, got %d", c.PromptCharLimit)
	}
	if c.MinCardCount < 1 {
		return fmt.Errorf("MIN_CARD_COUNT must be at least 1, got %d", c.MinCardCount)
	}
	if c.DefaultCardCount < c.MinCardCount || c.DefaultCardCount > c.MaxCardCount {
		return fmt.Errorf("DEFAULT_CARD_COUNT %d outside [%d, %d]",
			c.DefaultCardCount, c.MinCardCount, c.MaxCardCount)
	}
	return nil
}

// MaxFileSizeBytes converts the configured megabyte limit to bytes.
func (c Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
