package llm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	ollama "github.com/ollama/ollama/api"
)

// OllamaClient completes prompts against an Ollama server, local or hosted.
// Hosted Ollama authenticates with a bearer token on every request.
type OllamaClient struct {
	client  *ollama.Client
	model   string
	timeout time.Duration
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(clone)
}

func NewOllamaClient(host, apiKey, model string, timeout time.Duration) (*OllamaClient, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama host %q: %w", host, err)
	}

	httpClient := &http.Client{Timeout: timeout}
	if apiKey != "" {
		httpClient.Transport = &bearerTransport{token: apiKey, base: http.DefaultTransport}
	}

	return &OllamaClient{
		client:  ollama.NewClient(u, httpClient),
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *OllamaClient) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reply strings.Builder
	req := &ollama.ChatRequest{
		Model: c.model,
		Messages: []ollama.Message{
			{Role: "user", Content: prompt},
		},
	}

	err := c.client.Chat(ctx, req, func(resp ollama.ChatResponse) error {
		reply.WriteString(resp.Message.Content)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCommunication, err)
	}
	return reply.String(), nil
}
