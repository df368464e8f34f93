// Package llm abstracts the remote language-model collaborator behind a
// single-call interface. Implementations may stream internally but must hand
// back one fully accumulated string or a terminal error, never a partial
// reply.
package llm

import (
	"context"
	"errors"
)

var (
	// ErrUnavailable is returned when no provider is configured.
	ErrUnavailable = errors.New("llm provider is not configured")

	// ErrCommunication wraps transport-level failures talking to the
	// provider. The reply, if any, was never received in full.
	ErrCommunication = errors.New("llm request failed")
)

// Client produces one complete model reply for one prompt.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a plain function to the Client interface.
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
