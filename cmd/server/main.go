package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/httpapi"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/middleware"
	"storefront/internal/order"
	"storefront/internal/session"
	"storefront/internal/storage"
	"storefront/internal/storefront"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

const (
	sessionTTL      = 7 * 24 * time.Hour
	shutdownTimeout = 10 * time.Second
	sweepInterval   = time.Minute
)

var (
	openStorageFunc = storage.Open
	startServerFunc = serve
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	persist, closeStorage, err := openStorageFunc(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.L().Warn("failed to close storage", zap.Error(err))
		}
	}()

	limiter := middleware.NewLimiter()
	go limiter.Run(ctx, sweepInterval)

	handler := newServer(ctx, cfg, persist, limiter)

	addr := ":" + cfg.AppPort
	logger.L().Info("storefront API listening",
		zap.String("addr", addr),
		zap.String("env", cfg.AppEnv),
		zap.String("storage", cfg.StorageDriver),
	)
	return startServerFunc(ctx, addr, handler)
}

// newServer builds the store over persist and returns the full HTTP stack.
func newServer(ctx context.Context, cfg *config.Config, persist storage.Store, limiter *middleware.Limiter) http.Handler {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	store := storefront.New(ctx, catalog.Default(), persist,
		storefront.WithShippingPolicy(order.ShippingPolicy{
			FreeThreshold: cfg.FreeShippingThreshold,
			FlatFee:       cfg.FlatShippingFee,
		}),
		storefront.WithProcessor(order.DelayProcessor{Delay: cfg.OrderProcessingDelay}),
		storefront.WithMetrics(m),
	)

	var tokens *session.Tokens
	if cfg.JWTSecret != "" {
		tokens = session.NewTokens(cfg.JWTSecret, sessionTTL)
	} else {
		logger.L().Warn("JWT_SECRET not set; session tokens disabled")
	}

	h := httpapi.NewHandler(store, tokens, cfg.AppEnv == "production")
	return httpapi.NewRouter(h, httpapi.RouterConfig{
		Metrics:     m,
		Gatherer:    reg,
		Limiter:     limiter,
		Tokens:      tokens,
		CORSOrigins: cfg.CORSAllowedOrigins,
	})
}

// serve runs until ctx ends, then drains in-flight requests.
func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.L().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
