package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"demonym/internal/platform/health"
	"demonym/internal/platform/metrics"
	"demonym/internal/platform/middleware"
)

// RouterConfig carries the wiring the router needs beyond the handler.
type RouterConfig struct {
	JWTSigningKey  string
	RequestTimeout time.Duration
	Metrics        *metrics.Metrics
	Health         *health.Handler
}

// NewRouter wires all public endpoints with the middleware stack.
func NewRouter(h *Handler, logger *slog.Logger, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.ContentTypeJSON)
	if cfg.Metrics != nil {
		r.Use(latency(cfg.Metrics))
	}

	// Nationality choice list and lookup
	r.Get("/nationalities", h.handleListNationalities)
	r.Get("/nationalities/{code}", h.handleResolveNationality)

	// Persons directory; writes need a bearer token
	r.Get("/persons", h.handleListPersons)
	r.Get("/persons/{id}", h.handleGetPerson)
	r.With(middleware.RequireBearer(cfg.JWTSigningKey, logger)).
		Post("/persons", h.handleCreatePerson)

	if cfg.Health != nil {
		cfg.Health.Register(r)
	}
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// latency records per-endpoint request duration using the route pattern so
// parameterized paths do not explode label cardinality.
func latency(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			pattern := chi.RouteContext(r.Context()).RoutePattern()
			if pattern == "" {
				pattern = r.URL.Path
			}
			m.EndpointLatency.WithLabelValues(pattern).Observe(time.Since(start).Seconds())
		})
	}
}
