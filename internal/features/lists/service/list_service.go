package service

import (
	"context"
	"errors"
	"sync"

	"storefront/internal/core/logger"
	catalog "storefront/internal/features/catalog/domain"
	"storefront/internal/features/lists/domain"
	"storefront/internal/features/lists/ports"

	"go.uber.org/zap"
)

// ListService manages favorites and the compare list of each session.
type ListService struct {
	repo     ports.ListRepository
	products ports.ProductLookup
	locks    sync.Map
}

// NewListService creates a new ListService.
func NewListService(repo ports.ListRepository, products ports.ProductLookup) *ListService {
	return &ListService{repo: repo, products: products}
}

// Get returns the list with its products resolved.
func (s *ListService) Get(ctx context.Context, kind domain.Kind, sessionID string) (domain.View, error) {
	unlock := s.lock(kind, sessionID)
	list := s.load(ctx, kind, sessionID)
	unlock()

	return s.view(ctx, list), nil
}

// Toggle adds or removes a product. Adding a fifth product to the compare
// list returns domain.ErrCompareFull and leaves the list unchanged.
func (s *ListService) Toggle(ctx context.Context, kind domain.Kind, sessionID string, id catalog.ProductID) (domain.View, error) {
	unlock := s.lock(kind, sessionID)
	list := s.load(ctx, kind, sessionID)
	if _, err := list.Toggle(id); err != nil {
		unlock()
		return s.view(ctx, list), err
	}
	s.persist(ctx, list, sessionID)
	unlock()

	return s.view(ctx, list), nil
}

// Clear empties the list.
func (s *ListService) Clear(ctx context.Context, kind domain.Kind, sessionID string) (domain.View, error) {
	unlock := s.lock(kind, sessionID)
	list := domain.NewList(kind, nil)
	s.persist(ctx, list, sessionID)
	unlock()

	return s.view(ctx, list), nil
}

func (s *ListService) lock(kind domain.Kind, sessionID string) func() {
	m, _ := s.locks.LoadOrStore(string(kind)+":"+sessionID, &sync.Mutex{})
	mu := m.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *ListService) load(ctx context.Context, kind domain.Kind, sessionID string) *domain.List {
	ids, err := s.repo.Load(ctx, kind, sessionID)
	if err != nil {
		logger.ForSession("lists", sessionID).Warn("List storage unavailable, using empty list",
			zap.String("kind", string(kind)), zap.Error(err))
	}
	return domain.NewList(kind, ids)
}

func (s *ListService) persist(ctx context.Context, list *domain.List, sessionID string) {
	if err := s.repo.Save(context.WithoutCancel(ctx), list.Kind, sessionID, list.IDs); err != nil {
		logger.ForSession("lists", sessionID).Warn("Failed to persist list",
			zap.String("kind", string(list.Kind)), zap.Error(err))
	}
}

func (s *ListService) view(ctx context.Context, list *domain.List) domain.View {
	v := domain.View{
		Kind:     list.Kind,
		IDs:      list.IDs,
		Products: make([]catalog.Product, 0, len(list.IDs)),
	}
	if list.Kind == domain.Compare {
		v.Max = domain.MaxCompare
	}

	for _, id := range list.IDs {
		p, err := s.products.GetProduct(ctx, id)
		if err != nil {
			if !errors.Is(err, catalog.ErrProductNotFound) {
				logger.Get().Warn("Failed to resolve list product", zap.String("product_id", string(id)), zap.Error(err))
			}
			continue
		}
		v.Products = append(v.Products, *p)
	}
	return v
}
