// Package llm wraps the external structured-completion providers used by the
// analyze endpoint. Providers are tried in priority order; only providers with
// a configured credential are registered.
package llm

import (
	"context"
	"errors"
)

var ErrNoProviders = errors.New("no llm providers configured")

// Provider is a single completion backend.
type Provider interface {
	// Name returns the provider identifier (e.g. "openai", "gigachat").
	Name() string
	// Complete sends a system+user prompt and returns the raw reply text.
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client holds the configured providers in fallback order.
type Client struct {
	providers []Provider
}

func NewClient(providers ...Provider) *Client {
	return &Client{providers: providers}
}

// Providers returns the fallback chain. Callers that need to validate each
// reply (and treat a malformed one as that provider's failure) iterate this
// directly instead of using Complete.
func (c *Client) Providers() []Provider {
	return c.providers
}

// Complete tries each provider in order and returns the first successful
// reply along with the provider that produced it.
func (c *Client) Complete(ctx context.Context, system, user string) (string, string, error) {
	if len(c.providers) == 0 {
		return "", "", ErrNoProviders
	}

	var lastErr error
	for _, p := range c.providers {
		reply, err := p.Complete(ctx, system, user)
		if err != nil {
			lastErr = err
			continue
		}
		return reply, p.Name(), nil
	}
	return "", "", lastErr
}
