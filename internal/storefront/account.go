package storefront

import (
	"context"

	"storefront/internal/catalog"
	"storefront/internal/logger"
	"storefront/internal/session"

	"go.uber.org/zap"
)

// Login replaces the session identity. Callers vouch for the identity;
// no credentials are checked here.
func (s *Store) Login(ctx context.Context, id session.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &id
	s.saveUser(ctx)
	logger.FromCtx(ctx).Info("session started", zap.Int64("user_id", id.ID))
}

// Logout clears the session identity; a no-op when nobody is signed in.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return
	}
	s.user = nil
	s.saveUser(ctx)
}

// User returns the signed-in identity, if any.
func (s *Store) User() (session.Identity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return session.Identity{}, false
	}
	return *s.user, true
}

// Theme returns the current display theme.
func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme stores t, rejecting anything but light or dark.
func (s *Store) SetTheme(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return ErrInvalidTheme
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = t
	s.saveTheme(ctx)
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Store) ToggleTheme(ctx context.Context) Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	s.saveTheme(ctx)
	return s.theme
}

// ToggleComparison adds or removes a product from the comparison list,
// which holds at most three products. Reports whether it was added.
func (s *Store) ToggleComparison(ctx context.Context, productID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireProduct(productID); err != nil {
		return false, err
	}

	for i, id := range s.comparison {
		if id == productID {
			s.comparison = append(s.comparison[:i], s.comparison[i+1:]...)
			s.save(ctx, KeyComparison, s.comparison)
			return false, nil
		}
	}

	if len(s.comparison) >= maxComparison {
		return false, ErrComparisonFull
	}
	s.comparison = append(s.comparison, productID)
	s.save(ctx, KeyComparison, s.comparison)
	return true, nil
}

// Comparison returns the compared products in the order they were added.
func (s *Store) Comparison() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolve(s.comparison)
}

// RecordView moves the product to the front of the recently viewed list,
// keeping the five most recent.
func (s *Store) RecordView(ctx context.Context, productID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.requireProduct(productID); err != nil {
		return err
	}

	recent := make([]int, 0, maxRecentlyViewed)
	recent = append(recent, productID)
	for _, id := range s.recent {
		if len(recent) == maxRecentlyViewed {
			break
		}
		if id != productID {
			recent = append(recent, id)
		}
	}
	s.recent = recent
	s.save(ctx, KeyRecentlyViewed, s.recent)
	return nil
}

// RecentlyViewed returns up to five products, most recent first.
func (s *Store) RecentlyViewed() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resolve(s.recent)
}

// Register builds a fresh identity from the sign-up form and signs it in.
func (s *Store) Register(ctx context.Context, in session.RegisterInput) (session.Identity, error) {
	id, err := session.RegisterIdentity(in, s.clock.Now())
	if err != nil {
		return session.Identity{}, err
	}
	s.Login(ctx, id)
	return id, nil
}
