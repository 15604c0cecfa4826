package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kolhesatish/content-app/internal/allowance"
	"github.com/kolhesatish/content-app/internal/content/domain"
	"github.com/kolhesatish/content-app/internal/content/normalizer"
	"github.com/kolhesatish/content-app/internal/content/prompt"
	"github.com/kolhesatish/content-app/internal/content/provider"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
	"github.com/kolhesatish/content-app/internal/metrics"
	"go.uber.org/zap"
)

const (
	DefaultProviderTimeout = 30 * time.Second
	HistoryLimit           = 20
	creditsPerGeneration   = 1
)

type Options struct {
	ProviderTimeout       time.Duration
	RefundOnProviderError bool
}

// Generation is the outcome of a granted request.
type Generation struct {
	Request          domain.Request
	Content          domain.Result
	CreditsRemaining int
}

// Gateway gates generation requests on the account's allowance and turns
// provider output into a domain.Result.
type Gateway struct {
	allowance *allowance.Service
	provider  provider.Provider
	history   domain.GenerationRepository
	opts      Options
	logger    *zap.Logger
}

func NewGateway(allowanceSvc *allowance.Service, p provider.Provider, history domain.GenerationRepository, opts Options, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.ProviderTimeout <= 0 {
		opts.ProviderTimeout = DefaultProviderTimeout
	}
	return &Gateway{
		allowance: allowanceSvc,
		provider:  p,
		history:   history,
		opts:      opts,
		logger:    logger,
	}
}

// Validate trims the topic and fills in defaults for req's platform.
func Validate(req domain.Request) (domain.Request, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.AccountID == "" {
		return req, apperrors.ErrUnauthenticated
	}
	if req.Topic == "" {
		return req, fmt.Errorf("%w: topic is required", apperrors.ErrInvalidRequest)
	}

	switch req.Platform {
	case domain.PlatformInstagram:
		req.ContentType = strings.ToLower(strings.TrimSpace(req.ContentType))
		if !contains(domain.InstagramContentTypes, req.ContentType) {
			return req, fmt.Errorf("%w: contentType must be one of %s",
				apperrors.ErrInvalidRequest, strings.Join(domain.InstagramContentTypes, ", "))
		}
		req.Style = ""
	case domain.PlatformLinkedIn:
		req.Style = strings.ToLower(strings.TrimSpace(req.Style))
		if req.Style == "" {
			req.Style = domain.StyleProfessional
		}
		req.ContentType = domain.ContentTypePost
	default:
		return req, fmt.Errorf("%w: unsupported platform %q", apperrors.ErrInvalidRequest, req.Platform)
	}

	return req, nil
}

// Generate spends one credit and, only if it was granted, calls the provider.
// The spend is committed before the provider call and stands when the call
// fails unless RefundOnProviderError is set.
func (g *Gateway) Generate(ctx context.Context, req domain.Request) (*Generation, error) {
	req, err := Validate(req)
	if err != nil {
		metrics.ObserveGeneration(string(req.Platform), metrics.OutcomeInvalid)
		return nil, err
	}

	granted, state, err := g.allowance.Consume(ctx, req.AccountID, creditsPerGeneration)
	if err != nil {
		return nil, err
	}
	if !granted {
		metrics.ObserveGeneration(string(req.Platform), metrics.OutcomeInsufficientCredits)
		return nil, fmt.Errorf("%w: %d credits left today", apperrors.ErrInsufficientCredits, state.Credits)
	}

	raw, err := g.callProvider(ctx, req)
	if err != nil {
		metrics.ObserveGeneration(string(req.Platform), metrics.OutcomeProviderError)
		return nil, g.providerFailed(ctx, req, err)
	}

	content, fellBack := normalizer.Normalize(raw, req)
	if fellBack {
		metrics.ObserveFallback(string(req.Platform))
		g.logger.Warn("provider output not parseable, using fallback",
			zap.String("provider", g.provider.Name()),
			zap.String("platform", string(req.Platform)))
	}

	g.record(ctx, req, content)
	metrics.ObserveGeneration(string(req.Platform), metrics.OutcomeSuccess)

	return &Generation{Request: req, Content: content, CreditsRemaining: state.Credits}, nil
}

func (g *Gateway) callProvider(ctx context.Context, req domain.Request) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.opts.ProviderTimeout)
	defer cancel()

	start := time.Now()
	raw, err := g.provider.Generate(ctx, provider.NewRequest(prompt.Build(req), req))
	metrics.ObserveProviderCall(g.provider.Name(), err == nil, time.Since(start))

	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w: %v", apperrors.ErrProviderTimeout, err)
	}
	return raw, err
}

func (g *Gateway) providerFailed(ctx context.Context, req domain.Request, cause error) error {
	g.logger.Error("content provider failed",
		zap.String("provider", g.provider.Name()),
		zap.String("account_id", req.AccountID),
		zap.String("platform", string(req.Platform)),
		zap.Error(cause))

	if g.opts.RefundOnProviderError {
		// The request context may already be done; the refund must still land.
		if _, err := g.allowance.Refund(context.WithoutCancel(ctx), req.AccountID, creditsPerGeneration); err != nil {
			g.logger.Error("credit refund failed", zap.String("account_id", req.AccountID), zap.Error(err))
		}
	}

	if errors.Is(cause, apperrors.ErrProviderTimeout) {
		return cause
	}
	return fmt.Errorf("%w: %v", apperrors.ErrProvider, cause)
}

// record appends to the generation log. Failures are logged, not returned.
func (g *Gateway) record(ctx context.Context, req domain.Request, content domain.Result) {
	if g.history == nil {
		return
	}

	rec := &domain.GenerationRecord{
		ID:          uuid.New().String(),
		UserID:      req.AccountID,
		Platform:    req.Platform,
		ContentType: req.ContentType,
		Topic:       req.Topic,
		Content:     content,
		CreatedAt:   time.Now().UTC(),
	}
	if err := g.history.Insert(context.WithoutCancel(ctx), rec); err != nil {
		g.logger.Warn("failed to record generation", zap.String("account_id", req.AccountID), zap.Error(err))
	}
}

// History returns the account's most recent generations, newest first.
func (g *Gateway) History(ctx context.Context, accountID string) ([]domain.GenerationRecord, error) {
	if g.history == nil {
		return []domain.GenerationRecord{}, nil
	}
	records, err := g.history.ListByUser(ctx, accountID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
