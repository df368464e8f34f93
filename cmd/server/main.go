package main

import (
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"cardsmith/internal/api"
	"cardsmith/internal/config"
	"cardsmith/internal/extract"
	"cardsmith/internal/generate"
	"cardsmith/internal/llm"
)

func main() {
	cfg := config.Load()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "cardsmith",
	})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	var client llm.Client
	switch {
	case cfg.OpenAIKey != "":
		client = llm.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIEndpoint, cfg.LLMTimeout)
		logger.Info("using openai provider", "model", cfg.OpenAIModel)
	case cfg.OllamaKey != "":
		ollamaClient, err := llm.NewOllamaClient(cfg.OllamaHost, cfg.OllamaKey, cfg.OllamaModel, cfg.LLMTimeout)
		if err != nil {
			logger.Fatal("configure ollama provider", "err", err)
		}
		client = ollamaClient
		logger.Info("using ollama provider", "host", cfg.OllamaHost, "model", cfg.OllamaModel)
	default:
		logger.Warn("no LLM provider configured; generation endpoint will be unavailable")
	}

	extractor := extract.NewService()
	generator := generate.NewService(client, cfg, logger.With("component", "generate"))
	server := api.NewServer(extractor, generator, cfg, logger.With("component", "api"))

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     server.Handler(),
		ReadTimeout: 15 * time.Second,
		// The write timeout has to cover a full LLM round trip.
		WriteTimeout: cfg.LLMTimeout + 30*time.Second,
	}

	logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed", "err", err)
	}
}
