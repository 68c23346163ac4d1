package storefront

import (
	"context"
	"fmt"
	"sync"

	"storefront/internal/logger"
	"storefront/internal/order"

	"go.uber.org/zap"
)

// Pending is an order submission awaiting its processing delay.
type Pending struct {
	draft order.Order
	done  chan struct{}

	mu     sync.Mutex
	result *order.Order
	err    error
}

func newPending(draft order.Order) *Pending {
	return &Pending{draft: draft, done: make(chan struct{})}
}

// Draft is the order as priced at submission.
func (p *Pending) Draft() order.Order {
	return p.draft
}

// Done is closed once the order has committed or failed.
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the submission resolves or ctx ends. Ending ctx does
// not stop the commit.
func (p *Pending) Wait(ctx context.Context) (*order.Order, error) {
	select {
	case <-p.done:
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.result, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (p *Pending) finish(o *order.Order, err error) {
	p.mu.Lock()
	p.result, p.err = o, err
	p.mu.Unlock()
	close(p.done)
}

// PlaceOrder submits the cart for checkout. Form validation happens
// upstream. Only one submission may be in flight; the cart is read again
// and cleared when processing completes, and the new order is prepended
// to history in the same step.
func (s *Store) PlaceOrder(ctx context.Context) (*Pending, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "store"),
		zap.String("method", "PlaceOrder"),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		log.Warn("order submission rejected", zap.Error(ErrOrderInFlight))
		s.metrics.OrderRejected("in_flight")
		return nil, ErrOrderInFlight
	}

	draft, err := order.Build(order.NewID(s.clock), s.cart.Lines(), s.products, s.policy, s.clock.Now())
	if err != nil {
		log.Warn("order submission rejected", zap.Error(ErrCartEmpty))
		s.metrics.OrderRejected("empty_cart")
		return nil, ErrCartEmpty
	}

	p := newPending(*draft)
	s.pending = p

	log.Info("order submitted",
		zap.String("order_id", draft.ID),
		zap.Int("item_count", draft.ItemCount()),
		zap.String("total", draft.Total.String()),
	)

	go s.complete(context.WithoutCancel(ctx), p)
	return p, nil
}

// OrderInFlight reports whether a submission is still processing.
func (s *Store) OrderInFlight() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// PendingOrder returns the in-flight submission, if any.
func (s *Store) PendingOrder() (*Pending, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.pending != nil
}

func (s *Store) complete(ctx context.Context, p *Pending) {
	log := logger.FromCtx(ctx).With(zap.String("order_id", p.draft.ID))

	draft := p.draft
	procErr := s.processor.Process(ctx, &draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil

	if procErr != nil {
		err := fmt.Errorf("%w: %w", order.ErrProcessingFailed, procErr)
		log.Error("order processing failed", zap.Error(err))
		s.metrics.OrderRejected("processing_failed")
		p.finish(nil, err)
		return
	}

	o, err := order.Build(p.draft.ID, s.cart.Lines(), s.products, s.policy, s.clock.Now())
	if err != nil {
		log.Warn("cart emptied before order committed")
		s.metrics.OrderRejected("empty_cart")
		p.finish(nil, ErrCartEmpty)
		return
	}

	s.orders.Prepend(*o)
	s.cart.Clear()
	s.saveOrders(ctx)
	s.saveCart(ctx)
	s.metrics.OrderPlaced(o.Total.Float64())

	log.Info("order placed",
		zap.String("total", o.Total.String()),
		zap.Int("history", s.orders.Len()),
	)
	p.finish(o, nil)
}
