// Package generate owns the prompt-to-records pipeline: building the model
// instruction, calling the LLM collaborator, and parsing its reply into
// validated study records.
package generate

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"cardsmith/internal/config"
	"cardsmith/internal/llm"
	"cardsmith/internal/models"
)

type Service struct {
	client llm.Client

	defaultCount    int
	promptCharLimit int

	log *log.Logger
}

// NewService wires a generation service. A nil client is allowed; Generate
// then reports llm.ErrUnavailable, keeping the rest of the API usable.
func NewService(client llm.Client, cfg config.Config, logger *log.Logger) *Service {
	return &Service{
		client:          client,
		defaultCount:    cfg.DefaultCardCount,
		promptCharLimit: cfg.PromptCharLimit,
		log:             logger,
	}
}

// Configured reports whether an LLM provider is available.
func (s *Service) Configured() bool {
	return s.client != nil
}

// logger prefers a request-scoped logger carried in ctx, so generation log
// lines keep the caller's request_id.
func (s *Service) logger(ctx context.Context) *log.Logger {
	if l := log.FromContext(ctx); l != log.Default() {
		return l
	}
	return s.log
}

// Generate produces count validated records of the given mode from text.
// count <= 0 falls back to the configured default; range enforcement is the
// transport layer's concern.
func (s *Service) Generate(ctx context.Context, text string, mode Mode, count int) ([]models.GenerationRecord, error) {
	if s.client == nil {
		return nil, llm.ErrUnavailable
	}
	if count <= 0 {
		count = s.defaultCount
	}

	prompt := BuildPrompt(mode, text, count, s.promptCharLimit)

	lg := s.logger(ctx)
	lg.Info("requesting generation", "mode", mode, "count", count, "text_chars", len(text))
	reply, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("complete prompt: %w", err)
	}

	records, err := s.Parse(ctx, reply, mode)
	if err != nil {
		return nil, err
	}
	lg.Info("generation complete", "mode", mode, "records", len(records))
	return records, nil
}
