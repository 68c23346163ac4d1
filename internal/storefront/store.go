// Package storefront owns the shopper's cart, wishlist, order history and
// session identity, mirroring each collection into a storage.Store on
// every mutation.
package storefront

import (
	"context"
	"sync"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/clock"
	"storefront/internal/logger"
	"storefront/internal/metrics"
	"storefront/internal/money"
	"storefront/internal/order"
	"storefront/internal/session"
	"storefront/internal/storage"
	"storefront/internal/wishlist"

	"go.uber.org/zap"
)

// Store is the commerce state for one browsing session. All methods are
// safe for concurrent use and run one at a time.
type Store struct {
	mu sync.Mutex

	products  *catalog.Catalog
	persist   storage.Store
	policy    order.ShippingPolicy
	clock     clock.Clock
	processor order.Processor
	metrics   *metrics.Metrics

	cart       *cart.Cart
	wishlist   *wishlist.Wishlist
	orders     *order.History
	user       *session.Identity
	theme      Theme
	comparison []int
	recent     []int

	pending *Pending
}

// Summary is the cart's derived read view.
type Summary struct {
	Items     []cart.View  `json:"items"`
	ItemCount int          `json:"itemCount"`
	Subtotal  money.Amount `json:"subtotal"`
	Shipping  money.Amount `json:"shipping"`
	Total     money.Amount `json:"total"`
}

// New builds a store over products and restores persisted state from persist.
func New(ctx context.Context, products *catalog.Catalog, persist storage.Store, opts ...Option) *Store {
	s := &Store{
		products:  products,
		persist:   persist,
		policy:    order.DefaultShippingPolicy(),
		clock:     clock.NewRealClock(),
		processor: order.DelayProcessor{Delay: DefaultProcessingDelay},
		cart:      cart.New(),
		wishlist:  wishlist.New(),
		orders:    order.NewHistory(),
		theme:     ThemeLight,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.restore(ctx)

	logger.FromCtx(ctx).Info("storefront state restored",
		zap.Int("cart_lines", s.cart.Len()),
		zap.Int("wishlist", s.wishlist.Len()),
		zap.Int("orders", s.orders.Len()),
		zap.Bool("signed_in", s.user != nil),
	)

	return s
}

// Catalog returns the product catalog the store resolves ids against.
func (s *Store) Catalog() *catalog.Catalog {
	return s.products
}

func (s *Store) requireProduct(id int) (catalog.Product, error) {
	p, ok := s.products.Get(id)
	if !ok {
		return catalog.Product{}, ErrUnknownProduct
	}
	return p, nil
}

// resolve maps ids to products, skipping unknown ones.
func (s *Store) resolve(ids []int) []catalog.Product {
	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products.Get(id); ok {
			out = append(out, p)
		}
	}
	return out
}

// AddToCart increments the product's quantity by one, inserting a line if needed.
func (s *Store) AddToCart(ctx context.Context, productID int) (cart.Line, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "store"),
		zap.String("method", "AddToCart"),
		zap.Int("product_id", productID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.requireProduct(productID)
	if err != nil {
		log.Warn("add to cart rejected", zap.Error(err))
		return cart.Line{}, err
	}

	line := s.cart.Add(p.ID)
	s.saveCart(ctx)
	s.metrics.CartMutation("add")

	log.Debug("added to cart", zap.Int("quantity", line.Quantity))
	return line, nil
}

// RemoveFromCart deletes the product's line. Missing lines are ignored.
func (s *Store) RemoveFromCart(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.Remove(productID) {
		return
	}
	s.saveCart(ctx)
	s.metrics.CartMutation("remove")
}

// SetCartQuantity adjusts an existing line; quantity <= 0 removes it.
// Products not already in the cart are ignored.
func (s *Store) SetCartQuantity(ctx context.Context, productID, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cart.SetQuantity(productID, quantity) {
		return
	}
	s.saveCart(ctx)
	if quantity <= 0 {
		s.metrics.CartMutation("remove")
		return
	}
	s.metrics.CartMutation("set_quantity")
}

// CartLines returns the cart in insertion order.
func (s *Store) CartLines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// CartItemCount sums the quantities of all cart lines.
func (s *Store) CartItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.ItemCount()
}

// CartSubtotal prices the cart at current catalog prices.
func (s *Store) CartSubtotal() money.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Subtotal(s.products)
}

// ShippingCost applies the shipping policy to subtotal.
func (s *Store) ShippingCost(subtotal money.Amount) money.Amount {
	return s.policy.Cost(subtotal)
}

// CartTotal is the cart subtotal plus shipping.
func (s *Store) CartTotal() money.Amount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy.Total(s.cart.Subtotal(s.products))
}

func (s *Store) CartSummary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

func (s *Store) summaryLocked() Summary {
	subtotal := s.cart.Subtotal(s.products)
	shipping := s.policy.Cost(subtotal)
	return Summary{
		Items:     s.cart.Views(s.products),
		ItemCount: s.cart.ItemCount(),
		Subtotal:  subtotal,
		Shipping:  shipping,
		Total:     subtotal.Add(shipping),
	}
}

// ToggleWishlist flips the product's membership and returns the new state.
func (s *Store) ToggleWishlist(ctx context.Context, productID int) (wishlist.Membership, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireProduct(productID); err != nil {
		logger.FromCtx(ctx).Warn("wishlist toggle rejected", zap.Int("product_id", productID), zap.Error(err))
		return "", err
	}

	m := s.wishlist.Toggle(productID)
	s.saveWishlist(ctx)
	s.metrics.WishlistToggle(string(m))
	return m, nil
}

// RemoveFromWishlist is idempotent.
func (s *Store) RemoveFromWishlist(ctx context.Context, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.wishlist.Remove(productID) {
		return
	}
	s.saveWishlist(ctx)
	s.metrics.WishlistToggle(string(wishlist.Removed))
}

// InWishlist reports whether the product is wished.
func (s *Store) InWishlist(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

// Wishlist returns the wished products in insertion order.
func (s *Store) Wishlist() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolve(s.wishlist.IDs())
}

// Orders returns the history, most recent first.
func (s *Store) Orders() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.All()
}

// Order looks up a placed order by id.
func (s *Store) Order(id string) (order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders.Get(id)
}
