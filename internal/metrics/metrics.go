package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the storefront's Prometheus collectors. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	cartMutations     *prometheus.CounterVec
	wishlistToggles   *prometheus.CounterVec
	ordersPlaced      prometheus.Counter
	ordersRejected    *prometheus.CounterVec
	orderTotal        prometheus.Histogram
	persistenceErrors *prometheus.CounterVec
	httpRequests      *prometheus.CounterVec
	httpLatency       *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		cartMutations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_cart_mutations_total",
				Help: "Cart mutations by operation",
			},
			[]string{"op"},
		),
		wishlistToggles: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_wishlist_toggles_total",
				Help: "Wishlist toggles by resulting membership",
			},
			[]string{"result"},
		),
		ordersPlaced: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "storefront_orders_placed_total",
				Help: "Orders committed to history",
			},
		),
		ordersRejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_orders_rejected_total",
				Help: "Order submissions that did not commit, by reason",
			},
			[]string{"reason"},
		),
		orderTotal: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "storefront_order_total_dollars",
				Help:    "Order totals in dollars",
				Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500},
			},
		),
		persistenceErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_persistence_errors_total",
				Help: "Persistence adapter failures by operation and key",
			},
			[]string{"op", "key"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_http_requests_total",
				Help: "HTTP requests by method, route and status",
			},
			[]string{"method", "route", "status"},
		),
		httpLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	if reg != nil {
		reg.MustRegister(
			m.cartMutations,
			m.wishlistToggles,
			m.ordersPlaced,
			m.ordersRejected,
			m.orderTotal,
			m.persistenceErrors,
			m.httpRequests,
			m.httpLatency,
		)
	}

	return m
}

func (m *Metrics) CartMutation(op string) {
	if m == nil {
		return
	}
	m.cartMutations.WithLabelValues(op).Inc()
}

func (m *Metrics) WishlistToggle(result string) {
	if m == nil {
		return
	}
	m.wishlistToggles.WithLabelValues(result).Inc()
}

func (m *Metrics) OrderPlaced(total float64) {
	if m == nil {
		return
	}
	m.ordersPlaced.Inc()
	m.orderTotal.Observe(total)
}

func (m *Metrics) OrderRejected(reason string) {
	if m == nil {
		return
	}
	m.ordersRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) PersistenceError(op, key string) {
	if m == nil {
		return
	}
	m.persistenceErrors.WithLabelValues(op, key).Inc()
}

func (m *Metrics) HTTPRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(seconds)
}
