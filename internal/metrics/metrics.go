package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "content_app",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "content_app",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
		[]string{"method", "route"},
	)

	generations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "content_app",
			Subsystem: "content",
			Name:      "generations_total",
			Help:      "Generation requests by platform and outcome.",
		},
		[]string{"platform", "outcome"},
	)

	providerDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "content_app",
			Subsystem: "provider",
			Name:      "call_duration_seconds",
			Help:      "Duration of content provider calls.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10), // 50ms to ~25s
		},
		[]string{"provider", "success"},
	)

	normalizerFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "content_app",
			Subsystem: "content",
			Name:      "normalizer_fallbacks_total",
			Help:      "Provider outputs that could not be parsed and were replaced by fallback variations.",
		},
		[]string{"platform"},
	)
)

// Generation outcomes.
const (
	OutcomeSuccess             = "success"
	OutcomeInsufficientCredits = "insufficient_credits"
	OutcomeProviderError       = "provider_error"
	OutcomeInvalid             = "invalid"
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		generations,
		providerDuration,
		normalizerFallbacks,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler exposes the registry on a Fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
}

// Middleware records request counts and latencies by route template.
func Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Path() == "/metrics" {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		route := c.Route().Path

		httpRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		httpDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

func ObserveGeneration(platform, outcome string) {
	generations.WithLabelValues(platform, outcome).Inc()
}

func ObserveProviderCall(provider string, success bool, d time.Duration) {
	providerDuration.WithLabelValues(provider, strconv.FormatBool(success)).Observe(d.Seconds())
}

func ObserveFallback(platform string) {
	normalizerFallbacks.WithLabelValues(platform).Inc()
}
