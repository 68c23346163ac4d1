package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/session"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestSession(t *testing.T) {
	tokens := session.NewTokens("test-secret", time.Hour)
	id := session.Identity{ID: 1, Name: "John Doe", Email: "john@example.com"}
	valid, err := tokens.Issue(id)
	require.NoError(t, err)

	tests := []struct {
		name    string
		prepare func(r *http.Request)
		wantID  bool
	}{
		{name: "Missing token", prepare: func(r *http.Request) {}},
		{name: "Invalid token", prepare: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer invalid-token")
		}},
		{name: "Bearer token", wantID: true, prepare: func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer "+valid)
		}},
		{name: "Cookie token", wantID: true, prepare: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: session.CookieName, Value: valid})
		}},
		{name: "Foreign secret", prepare: func(r *http.Request) {
			other, _ := session.NewTokens("other-secret", time.Hour).Issue(id)
			r.Header.Set("Authorization", "Bearer "+other)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reached bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				got, ok := session.FromContext(r.Context())
				assert.Equal(t, tt.wantID, ok)
				userID, hasUser := logger.UserIDFrom(r.Context())
				assert.Equal(t, tt.wantID, hasUser)
				if tt.wantID {
					assert.Equal(t, id, got)
					assert.Equal(t, int64(1), userID)
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()

			Session(tokens)(next).ServeHTTP(w, req)

			assert.True(t, reached, "session middleware never blocks")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestLimiter(t *testing.T) {
	t.Run("Strict tier for checkout", func(t *testing.T) {
		l := NewLimiter()
		handler := l.Middleware(http.HandlerFunc(okHandler))

		codes := make([]int, 0, burstStrict+1)
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest(http.MethodPost, "/orders", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		for _, c := range codes[:burstStrict] {
			assert.Equal(t, http.StatusOK, c)
		}
		assert.Equal(t, http.StatusTooManyRequests, codes[burstStrict])

		// General tier has its own bucket.
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Separate clients", func(t *testing.T) {
		l := NewLimiter()
		handler := l.Middleware(http.HandlerFunc(okHandler))

		var last int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest(http.MethodPost, "/session", nil)
			req.Header.Set("X-Device-ID", "a")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			last = w.Code
		}
		require.Equal(t, http.StatusTooManyRequests, last)

		req := httptest.NewRequest(http.MethodPost, "/session", nil)
		req.Header.Set("X-Device-ID", "b")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Sweep drops idle buckets", func(t *testing.T) {
		l := NewLimiter()
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return now }

		l.get("ip:1:general", limitGeneral, burstGeneral)
		now = now.Add(time.Minute)
		l.get("ip:2:general", limitGeneral, burstGeneral)
		now = now.Add(visitorTTL)

		l.Sweep()
		assert.Len(t, l.visitors, 1)
		assert.Contains(t, l.visitors, "ip:2:general")
	})
}

func TestClientIdentity(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.RemoteAddr = "10.0.0.9:5555"
	assert.Equal(t, "ip:10.0.0.9", clientIdentity(req))

	req.Header.Set("X-Device-ID", "tablet")
	assert.Equal(t, "device:tablet", clientIdentity(req))

	ctx := session.WithIdentity(req.Context(), session.Identity{ID: 42, Name: "Ada"})
	assert.Equal(t, "user:42", clientIdentity(req.WithContext(ctx)))
}

func TestLimiter_SignedInShoppersShareBucketAcrossDevices(t *testing.T) {
	tokens := session.NewTokens("test-secret", time.Hour)
	token, err := tokens.Issue(session.Identity{ID: 7, Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)

	l := NewLimiter()
	handler := Session(tokens)(l.Middleware(http.HandlerFunc(okHandler)))

	var last int
	for i := 0; i < burstStrict+1; i++ {
		req := httptest.NewRequest(http.MethodPost, "/orders", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("X-Device-ID", fmt.Sprintf("device-%d", i))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
	assert.Contains(t, l.visitors, "user:7:strict")
}

func TestResolveRateTier(t *testing.T) {
	tests := []struct {
		method, path, tier string
	}{
		{http.MethodPost, "/orders", "strict"},
		{http.MethodPost, "/session/register", "strict"},
		{http.MethodGet, "/orders", "general"},
		{http.MethodPost, "/cart/items", "general"},
	}
	for _, tt := range tests {
		_, _, tier := resolveRateTier(httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.tier, tier, tt.method+" "+tt.path)
	}
}

func TestAccessLog(t *testing.T) {
	core, observed := observer.New(zapcore.InfoLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	router := mux.NewRouter()
	router.Use(AccessLog(m))
	router.HandleFunc("/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/products/42", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	entries := observed.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/products/42", fields["path"])
	assert.Equal(t, "/products/{id}", fields["route"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])

	count, err := testutil.GatherAndCount(reg, "storefront_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecovery(t *testing.T) {
	core, observed := observer.New(zapcore.ErrorLevel)
	restore := logger.Replace(zap.New(core))
	defer restore()

	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, observed.FilterMessage("panic recovered").Len())
}

func TestCORS(t *testing.T) {
	handler := CORS([]string{"http://localhost:3000"})(http.HandlerFunc(okHandler))

	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/cart/items", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
		assert.True(t, w.Code == http.StatusOK || w.Code == http.StatusNoContent)
	})

	t.Run("Normal request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		req.Header.Set("Origin", "http://evil.test")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
