package service

import (
	"context"
	"errors"
	"testing"

	catalog "storefront/internal/features/catalog/domain"
	"storefront/internal/features/lists/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockListRepository is a mock implementation of ports.ListRepository.
type MockListRepository struct {
	mock.Mock
}

func (m *MockListRepository) Load(ctx context.Context, kind domain.Kind, sessionID string) ([]catalog.ProductID, error) {
	args := m.Called(ctx, kind, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.ProductID), args.Error(1)
}

func (m *MockListRepository) Save(ctx context.Context, kind domain.Kind, sessionID string, ids []catalog.ProductID) error {
	args := m.Called(ctx, kind, sessionID, ids)
	return args.Error(0)
}

// MockProductLookup is a mock implementation of ports.ProductLookup.
type MockProductLookup struct {
	mock.Mock
}

func (m *MockProductLookup) GetProduct(ctx context.Context, id catalog.ProductID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func TestListService_ToggleFavorite(t *testing.T) {
	ctx := context.Background()
	repo := new(MockListRepository)
	products := new(MockProductLookup)
	svc := NewListService(repo, products)

	repo.On("Load", ctx, domain.Favorites, "sess-1").Return([]catalog.ProductID{"1"}, nil).Once()
	repo.On("Save", mock.Anything, domain.Favorites, "sess-1", []catalog.ProductID{"1", "2"}).Return(nil).Once()
	products.On("GetProduct", ctx, catalog.ProductID("1")).Return(&catalog.Product{ID: "1"}, nil)
	products.On("GetProduct", ctx, catalog.ProductID("2")).Return(nil, catalog.ErrProductNotFound)

	view, err := svc.Toggle(ctx, domain.Favorites, "sess-1", "2")
	require.NoError(t, err)
	assert.Equal(t, []catalog.ProductID{"1", "2"}, view.IDs)
	assert.Len(t, view.Products, 1)
	assert.Zero(t, view.Max)
	repo.AssertExpectations(t)
}

func TestListService_CompareFull(t *testing.T) {
	ctx := context.Background()
	repo := new(MockListRepository)
	products := new(MockProductLookup)
	svc := NewListService(repo, products)

	repo.On("Load", ctx, domain.Compare, "sess-1").Return([]catalog.ProductID{"1", "2", "3", "4"}, nil).Once()
	products.On("GetProduct", ctx, mock.Anything).Return(&catalog.Product{}, nil)

	view, err := svc.Toggle(ctx, domain.Compare, "sess-1", "5")
	assert.ErrorIs(t, err, domain.ErrCompareFull)
	assert.Len(t, view.IDs, 4)
	assert.Equal(t, domain.MaxCompare, view.Max)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestListService_StorageErrorsAreSoft(t *testing.T) {
	ctx := context.Background()
	repo := new(MockListRepository)
	products := new(MockProductLookup)
	svc := NewListService(repo, products)

	repo.On("Load", ctx, domain.Compare, "sess-1").Return(nil, errors.New("redis down")).Once()
	repo.On("Save", mock.Anything, domain.Compare, "sess-1", mock.Anything).Return(errors.New("redis down")).Once()
	products.On("GetProduct", ctx, catalog.ProductID("7")).Return(nil, errors.New("timeout"))

	view, err := svc.Toggle(ctx, domain.Compare, "sess-1", "7")
	require.NoError(t, err)
	assert.Equal(t, []catalog.ProductID{"7"}, view.IDs)
	assert.Empty(t, view.Products)
}

func TestListService_Clear(t *testing.T) {
	ctx := context.Background()
	repo := new(MockListRepository)
	svc := NewListService(repo, new(MockProductLookup))

	repo.On("Save", mock.Anything, domain.Compare, "sess-1", []catalog.ProductID{}).Return(nil).Once()

	view, err := svc.Clear(ctx, domain.Compare, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, view.IDs)
	repo.AssertExpectations(t)
}
