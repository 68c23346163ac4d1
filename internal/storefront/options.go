package storefront

import (
	"time"

	"storefront/internal/clock"
	"storefront/internal/metrics"
	"storefront/internal/order"
)

// DefaultProcessingDelay mirrors the storefront's simulated checkout wait.
const DefaultProcessingDelay = 3 * time.Second

type Option func(*Store)

func WithShippingPolicy(p order.ShippingPolicy) Option {
	return func(s *Store) { s.policy = p }
}

func WithClock(c clock.Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithProcessor(p order.Processor) Option {
	return func(s *Store) { s.processor = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}
