// Package gemini implements provider.Provider on the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kolhesatish/content-app/internal/content/provider"
	"google.golang.org/genai"
)

const (
	Name         = "gemini"
	DefaultModel = "gemini-2.0-flash"
)

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

type Provider struct {
	client *genai.Client
	model  string
}

var _ provider.Provider = (*Provider)(nil)

func New(ctx context.Context, cfg Config) (*Provider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Provider{client: client, model: cfg.Model}, nil
}

func (p *Provider) Name() string {
	return Name
}

func (p *Provider) Generate(ctx context.Context, req provider.Request) (string, error) {
	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.Prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.9),
		TopK:            genai.Ptr[float32](1),
		TopP:            genai.Ptr[float32](1),
		MaxOutputTokens: 2048,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini returned no content")
	}
	return text, nil
}
