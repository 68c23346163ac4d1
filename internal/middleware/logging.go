package middleware

import (
	"net/http"
	"strconv"
	"time"

	"storefront/internal/logger"
	"storefront/internal/metrics"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// responseRecorder captures the status code written by the handler.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// AccessLog logs every request and records it in m. Routes are labelled
// by their mux template so ids do not explode metric cardinality.
func AccessLog(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rec, r)

			duration := time.Since(start)
			route := routeTemplate(r)
			m.HTTPRequest(r.Method, route, strconv.Itoa(rec.statusCode), duration.Seconds())

			logger.FromCtx(r.Context()).Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("route", route),
				zap.Int("status", rec.statusCode),
				zap.Duration("duration", duration),
				zap.String("remote_ip", r.RemoteAddr),
			)
		})
	}
}

func routeTemplate(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if tpl, err := current.GetPathTemplate(); err == nil {
			return tpl
		}
	}
	return "unmatched"
}

// Recovery turns a handler panic into a 500.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromCtx(r.Context()).Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
				)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
