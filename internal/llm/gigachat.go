package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// GigaChatProvider is the secondary completion backend, tried when the
// primary fails or is not configured.
type GigaChatProvider struct {
	client *gigago.Client
	logger *zap.Logger
}

// GigaChatConfig mirrors the GigaChat credential part of the app config.
type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
}

func NewGigaChatProvider(ctx context.Context, cfg GigaChatConfig, logger *zap.Logger) (*GigaChatProvider, error) {
	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	return &GigaChatProvider{client: client, logger: logger}, nil
}

func (p *GigaChatProvider) Name() string { return "gigachat" }

func (p *GigaChatProvider) Complete(ctx context.Context, system, user string) (string, error) {
	model := p.client.GenerativeModel("GigaChat")
	model.SystemInstruction = system
	model.Temperature = 0.3

	resp, err := model.Generate(ctx, []gigago.Message{
		{Role: gigago.RoleUser, Content: user},
	})
	if err != nil {
		return "", fmt.Errorf("gigachat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("gigachat returned no choices")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (p *GigaChatProvider) Close() error {
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
