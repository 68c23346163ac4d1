package httpapi

import (
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/session"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterConfig struct {
	Metrics     *metrics.Metrics
	Gatherer    prometheus.Gatherer
	Limiter     *middleware.Limiter
	Tokens      *session.Tokens
	CORSOrigins []string
}

// NewRouter wires the handler, the middleware chain and /metrics.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	router := mux.NewRouter()

	if cfg.Gatherer != nil {
		router.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	h.RegisterRoutes(router)

	router.Use(logger.RequestIDMiddleware)
	router.Use(middleware.Recovery)
	router.Use(middleware.Session(cfg.Tokens))
	router.Use(middleware.AccessLog(cfg.Metrics))
	if cfg.Limiter != nil {
		router.Use(cfg.Limiter.Middleware)
	}

	return middleware.CORS(cfg.CORSOrigins)(router)
}
