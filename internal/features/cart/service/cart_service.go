package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"storefront/internal/core/logger"
	"storefront/internal/features/cart/domain"
	"storefront/internal/features/cart/ports"
	catalog "storefront/internal/features/catalog/domain"

	"go.uber.org/zap"
)

// sessionCart is the in-memory cart of one session. mu serializes mutations
// and the persistence write that mirrors them.
type sessionCart struct {
	mu       sync.Mutex
	cart     *domain.Cart
	loaded   bool
	lastSeen time.Time // guarded by the service mutex
}

// CartService owns the in-memory carts and mirrors every mutation to the repository.
type CartService struct {
	repo     ports.CartRepository
	products ports.ProductLookup
	rules    domain.PricingRules
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionCart
}

// NewCartService creates a new CartService.
func NewCartService(repo ports.CartRepository, products ports.ProductLookup, rules domain.PricingRules) *CartService {
	return &CartService{
		repo:     repo,
		products: products,
		rules:    rules,
		now:      time.Now,
		sessions: make(map[string]*sessionCart),
	}
}

// Get returns the current cart view.
func (s *CartService) Get(ctx context.Context, sessionID string) (domain.View, error) {
	var view domain.View
	s.withCart(ctx, sessionID, func(c *domain.Cart) bool {
		view = c.View()
		return false
	})
	return view, nil
}

// AddLine resolves the product and merges quantity units into the cart.
func (s *CartService) AddLine(ctx context.Context, sessionID string, productID catalog.ProductID, quantity int) (domain.View, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return domain.View{}, fmt.Errorf("service: failed to resolve product %s: %w", productID, err)
	}

	var (
		view   domain.View
		addErr error
	)
	s.withCart(ctx, sessionID, func(c *domain.Cart) bool {
		addErr = c.AddLine(*product, quantity)
		view = c.View()
		return addErr == nil
	})
	return view, addErr
}

// RemoveLine deletes a line; removing a missing line is not an error.
func (s *CartService) RemoveLine(ctx context.Context, sessionID string, productID catalog.ProductID) (domain.View, error) {
	var view domain.View
	s.withCart(ctx, sessionID, func(c *domain.Cart) bool {
		c.RemoveLine(productID)
		view = c.View()
		return true
	})
	return view, nil
}

// SetQuantity updates a line; a quantity below 1 removes it.
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID catalog.ProductID, quantity int) (domain.View, error) {
	var view domain.View
	s.withCart(ctx, sessionID, func(c *domain.Cart) bool {
		c.SetQuantity(productID, quantity)
		view = c.View()
		return true
	})
	return view, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) (domain.View, error) {
	var view domain.View
	s.withCart(ctx, sessionID, func(c *domain.Cart) bool {
		c.Clear()
		view = c.View()
		return true
	})
	return view, nil
}

// Snapshot freezes the cart for checkout.
func (s *CartService) Snapshot(ctx context.Context, sessionID string) (domain.Snapshot, error) {
	var snap domain.Snapshot
	s.withCart(ctx, sessionID, func(c *domain.Cart) bool {
		snap = c.Snapshot()
		return false
	})
	return snap, nil
}

// EvictIdle drops in-memory carts not touched for maxIdle. Their persisted
// copy is reloaded on the next request.
func (s *CartService) EvictIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sc := range s.sessions {
		if !sc.mu.TryLock() {
			continue
		}
		if sc.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
		}
		sc.mu.Unlock()
	}
	return evicted
}

// withCart runs fn under the session lock. When fn reports a mutation the
// resulting lines are persisted before the lock is released.
func (s *CartService) withCart(ctx context.Context, sessionID string, fn func(c *domain.Cart) (mutated bool)) {
	sc := s.session(sessionID)

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if !sc.loaded {
		sc.cart = s.load(ctx, sessionID)
		sc.loaded = true
	}

	if fn(sc.cart) {
		s.persist(ctx, sessionID, sc.cart.Lines())
	}
}

// session looks up or creates the cart entry. lastSeen is only written
// under s.mu so EvictIdle never drops an entry a caller is about to lock.
func (s *CartService) session(sessionID string) *sessionCart {
	s.mu.Lock()
	defer s.mu.Unlock()

	sc, ok := s.sessions[sessionID]
	if !ok {
		sc = &sessionCart{}
		s.sessions[sessionID] = sc
	}
	sc.lastSeen = s.now()
	return sc
}

func (s *CartService) load(ctx context.Context, sessionID string) *domain.Cart {
	lines, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		logger.ForSession("cart", sessionID).Warn("Cart storage unavailable, starting empty", zap.Error(err))
		return domain.NewCart(s.rules)
	}
	return domain.Restore(s.rules, lines)
}

func (s *CartService) persist(ctx context.Context, sessionID string, lines []domain.Line) {
	if err := s.repo.Save(context.WithoutCancel(ctx), sessionID, lines); err != nil {
		logger.ForSession("cart", sessionID).Warn("Failed to persist cart", zap.Int("lines", len(lines)), zap.Error(err))
	}
}
