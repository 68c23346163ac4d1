package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/logger"
	"storefront/internal/order"
	"storefront/internal/session"

	"go.uber.org/zap"
)

// restore reads every key once. Absent or unreadable values leave the
// collection empty.
func (s *Store) restore(ctx context.Context) {
	var cartRecords []cart.Record
	if s.load(ctx, KeyCart, &cartRecords) {
		s.cart = cart.New(cart.FromRecords(cartRecords)...)
	}

	var wished []catalog.Product
	if s.load(ctx, KeyWishlist, &wished) {
		for _, p := range wished {
			if _, ok := s.products.Get(p.ID); ok && !s.wishlist.Contains(p.ID) {
				s.wishlist.Toggle(p.ID)
			}
		}
	}

	var user *session.Identity
	if s.load(ctx, KeyUser, &user) && user != nil {
		s.user = user
	}

	var orders []order.Order
	if s.load(ctx, KeyOrders, &orders) {
		s.orders = order.NewHistory(orders...)
	}

	s.theme = s.loadTheme(ctx)

	var compared []int
	if s.load(ctx, KeyComparison, &compared) {
		s.comparison = s.knownIDs(compared, maxComparison)
	}

	var viewed []int
	if s.load(ctx, KeyRecentlyViewed, &viewed) {
		s.recent = s.knownIDs(viewed, maxRecentlyViewed)
	}
}

func (s *Store) knownIDs(ids []int, limit int) []int {
	out := make([]int, 0, limit)
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if len(out) == limit {
			break
		}
		if _, ok := s.products.Get(id); !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// load decodes key into dst. It reports false when the value is absent,
// the adapter failed, or the value does not parse.
func (s *Store) load(ctx context.Context, key string, dst interface{}) bool {
	log := logger.FromCtx(ctx).With(zap.String("key", key))

	data, err := s.persist.Load(ctx, key)
	if err != nil {
		log.Warn("failed to load stored value", zap.Error(err))
		s.metrics.PersistenceError("load", key)
		return false
	}
	if data == nil {
		return false
	}

	if err := json.Unmarshal(data, dst); err != nil {
		log.Warn("discarding stored value",
			zap.Error(fmt.Errorf("%w: %w", ErrPersistenceRead, err)),
		)
		s.metrics.PersistenceError("decode", key)
		return false
	}
	return true
}

func (s *Store) loadTheme(ctx context.Context) Theme {
	data, err := s.persist.Load(ctx, KeyTheme)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to load stored value", zap.String("key", KeyTheme), zap.Error(err))
		s.metrics.PersistenceError("load", KeyTheme)
		return ThemeLight
	}
	if data == nil {
		return ThemeLight
	}

	t := Theme(strings.TrimSpace(string(data)))
	if !t.Valid() {
		// Earlier builds wrote the theme as a JSON string.
		_ = json.Unmarshal(data, &t)
	}
	if !t.Valid() {
		logger.FromCtx(ctx).Warn("discarding stored value",
			zap.String("key", KeyTheme),
			zap.Error(fmt.Errorf("%w: theme %q", ErrPersistenceRead, string(data))),
		)
		s.metrics.PersistenceError("decode", KeyTheme)
		return ThemeLight
	}
	return t
}

// save serialises v under key. Failures are logged; the in-memory state
// stays authoritative for the session.
func (s *Store) save(ctx context.Context, key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.saveFailed(ctx, key, err)
		return
	}
	s.saveRaw(ctx, key, data)
}

func (s *Store) saveRaw(ctx context.Context, key string, data []byte) {
	if err := s.persist.Save(ctx, key, data); err != nil {
		s.saveFailed(ctx, key, err)
	}
}

func (s *Store) saveFailed(ctx context.Context, key string, err error) {
	logger.FromCtx(ctx).Error("failed to persist collection", zap.String("key", key), zap.Error(err))
	s.metrics.PersistenceError("save", key)
}

// saveTheme writes the bare word, not a JSON string.
func (s *Store) saveTheme(ctx context.Context) {
	s.saveRaw(ctx, KeyTheme, []byte(s.theme))
}

func (s *Store) saveCart(ctx context.Context) {
	s.save(ctx, KeyCart, cart.ToRecords(s.cart.Lines(), s.products))
}

func (s *Store) saveWishlist(ctx context.Context) {
	s.save(ctx, KeyWishlist, s.resolve(s.wishlist.IDs()))
}

func (s *Store) saveUser(ctx context.Context) {
	s.save(ctx, KeyUser, s.user)
}

func (s *Store) saveOrders(ctx context.Context) {
	s.save(ctx, KeyOrders, s.orders.All())
}
