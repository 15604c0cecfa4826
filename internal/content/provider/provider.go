// Package provider defines the content generation backend used by the gateway.
package provider

//go:generate mockgen -destination=../../mocks/mock_provider.go -package=mocks github.com/kolhesatish/content-app/internal/content/provider Provider

import (
	"context"

	"github.com/kolhesatish/content-app/internal/content/domain"
)

// Request carries the built prompt along with the structured fields it was
// built from, so template-based providers can skip the prompt entirely.
type Request struct {
	Prompt      string
	Platform    domain.Platform
	Topic       string
	ContentType string
	Style       string
	Variations  int
}

func NewRequest(prompt string, req domain.Request) Request {
	return Request{
		Prompt:      prompt,
		Platform:    req.Platform,
		Topic:       req.Topic,
		ContentType: req.ContentType,
		Style:       req.Style,
		Variations:  req.Options.VariationCount(),
	}
}

type Provider interface {
	Name() string
	// Generate returns the provider's raw text output.
	Generate(ctx context.Context, req Request) (string, error)
}
