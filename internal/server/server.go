// Package server assembles the HTTP application and its dependencies.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kolhesatish/content-app/config"
	"github.com/kolhesatish/content-app/db"
	"github.com/kolhesatish/content-app/internal/allowance"
	allowancepg "github.com/kolhesatish/content-app/internal/allowance/repository/postgres"
	authdomain "github.com/kolhesatish/content-app/internal/auth/domain"
	authhandler "github.com/kolhesatish/content-app/internal/auth/handler"
	authmemory "github.com/kolhesatish/content-app/internal/auth/repository/memory"
	authpg "github.com/kolhesatish/content-app/internal/auth/repository/postgres"
	authservice "github.com/kolhesatish/content-app/internal/auth/service"
	"github.com/kolhesatish/content-app/internal/content/domain"
	contenthandler "github.com/kolhesatish/content-app/internal/content/handler"
	"github.com/kolhesatish/content-app/internal/content/provider"
	"github.com/kolhesatish/content-app/internal/content/provider/gemini"
	"github.com/kolhesatish/content-app/internal/content/provider/template"
	contentmemory "github.com/kolhesatish/content-app/internal/content/repository/memory"
	contentpg "github.com/kolhesatish/content-app/internal/content/repository/postgres"
	contentservice "github.com/kolhesatish/content-app/internal/content/service"
	apperrors "github.com/kolhesatish/content-app/internal/errors"
	"github.com/kolhesatish/content-app/internal/logger"
	"github.com/kolhesatish/content-app/internal/metrics"
	"github.com/kolhesatish/content-app/internal/middleware"
	"github.com/kolhesatish/content-app/internal/response"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout     = 10 * time.Second
	limiterCleanupEvery = time.Minute
	limiterMaxIdle      = 10 * time.Minute
)

// Deps are the services the HTTP layer is built from.
type Deps struct {
	Users   *authservice.UserService
	Gateway *contentservice.Gateway
	Limiter *middleware.RateLimiter
	Logger  *zap.Logger
}

type Server struct {
	app     *fiber.App
	addr    string
	limiter *middleware.RateLimiter
	logger  *zap.Logger
	pool    *pgxpool.Pool
}

// New wires the stores, provider and services described by cfg. Without a
// DB_URL every store is kept in memory.
func New(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	var (
		pool       *pgxpool.Pool
		users      authdomain.UserRepository
		allowances allowance.Store
		history    domain.GenerationRepository
	)

	if cfg.DBURL != "" {
		var err error
		pool, err = db.NewPostgresPool(ctx, cfg.DBURL)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		users = authpg.NewPostgresRepository(pool)
		allowances = allowancepg.NewAllowanceStore(pool)
		history = contentpg.NewGenerationRepository(pool)
		log.Info("using PostgreSQL storage")
	} else {
		mem := allowance.NewMemoryStore()
		users = authmemory.NewUserRepository(mem)
		allowances = mem
		history = contentmemory.NewGenerationRepository()
		log.Warn("DB_URL not set, using in-memory storage")
	}

	p, err := newProvider(ctx, cfg)
	if err != nil {
		if pool != nil {
			pool.Close()
		}
		return nil, err
	}
	log.Info("content provider selected", zap.String("provider", p.Name()))

	allowanceSvc := allowance.NewService(allowances, allowance.SystemClock{},
		allowance.NewPolicy(cfg.DailyGrant, cfg.MaxCredits), log.Named("allowance"))
	tokens := authservice.NewTokenService(cfg.JWTSecret, cfg.TokenExpiryMin)

	deps := Deps{
		Users: authservice.NewUserService(users, tokens, allowanceSvc, log.Named("auth")),
		Gateway: contentservice.NewGateway(allowanceSvc, p, history, contentservice.Options{
			ProviderTimeout:       time.Duration(cfg.ProviderTimeoutSec) * time.Second,
			RefundOnProviderError: cfg.RefundOnProviderError,
		}, log.Named("content")),
		Limiter: middleware.NewRateLimiter(float64(cfg.RateLimitRPS), cfg.RateLimitBurst, log.Named("ratelimit")),
		Logger:  log,
	}

	return &Server{
		app:     NewApp(deps),
		addr:    ":" + cfg.Port,
		limiter: deps.Limiter,
		logger:  log,
		pool:    pool,
	}, nil
}

func newProvider(ctx context.Context, cfg *config.Config) (provider.Provider, error) {
	switch cfg.ContentProvider {
	case config.ProviderGemini:
		p, err := gemini.New(ctx, gemini.Config{APIKey: cfg.GeminiAPIKey, Model: cfg.GeminiModel})
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return template.New(), nil
	}
}

// NewApp builds the Fiber application and mounts every route.
func NewApp(deps Deps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})
	app.Use(logger.RequestLogger(log))
	app.Use(metrics.Middleware())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", metrics.Handler())

	authHandler := authhandler.NewAuthHandler(deps.Users)
	authhandler.RegisterRoutes(app, authHandler)
	contenthandler.RegisterRoutes(app, contenthandler.NewContentHandler(deps.Gateway),
		authHandler.RequireAuth(), deps.Limiter.Handler())

	return app
}

// errorHandler renders errors that escape the handlers, such as unknown
// routes, in the same envelope the handlers use.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		kind := apperrors.KindInternal
		switch {
		case fe.Code == fiber.StatusNotFound:
			kind = apperrors.KindNotFound
		case fe.Code < fiber.StatusInternalServerError:
			kind = apperrors.KindInvalidRequest
		}
		return c.Status(fe.Code).JSON(fiber.Map{"success": false, "error": kind, "message": fe.Message})
	}
	return response.Error(c, err)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	stop := make(chan struct{})
	s.limiter.StartCleanup(limiterCleanupEvery, limiterMaxIdle, stop)
	defer close(stop)
	defer func() {
		if s.pool != nil {
			s.pool.Close()
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server listening", zap.String("addr", s.addr))
		if err := s.app.Listen(s.addr); err != nil {
			return fmt.Errorf("listen %s: %w", s.addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	})

	return g.Wait()
}
