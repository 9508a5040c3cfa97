package service

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/features/catalog/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductProvider is a mock implementation of ports.ProductProvider.
type MockProductProvider struct {
	mock.Mock
}

func (m *MockProductProvider) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductProvider) GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func TestCatalogService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		provider := new(MockProductProvider)
		svc := NewCatalogService(provider)
		provider.On("ListProducts", ctx).Return([]domain.Product{
			{ID: "1", Name: "Taladro", Brand: "Bosch", UnitPrice: decimal.NewFromInt(250000)},
			{ID: "2", Name: "Martillo", Brand: "Stanley", UnitPrice: decimal.NewFromInt(35000)},
		}, nil).Once()

		listing, err := svc.ListProducts(ctx, domain.Filter{Category: "Bosch"})
		require.NoError(t, err)
		assert.Equal(t, 1, listing.Total)
		assert.Equal(t, []string{"Bosch", "Stanley"}, listing.Categories)
		provider.AssertExpectations(t)
	})

	t.Run("ProviderError", func(t *testing.T) {
		provider := new(MockProductProvider)
		svc := NewCatalogService(provider)
		provider.On("ListProducts", ctx).Return(nil, errors.New("timeout")).Once()

		listing, err := svc.ListProducts(ctx, domain.Filter{})
		assert.Error(t, err)
		assert.Nil(t, listing)
	})
}

func TestCatalogService_GetProduct(t *testing.T) {
	ctx := context.Background()
	provider := new(MockProductProvider)
	svc := NewCatalogService(provider)

	_, err := svc.GetProduct(ctx, "")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	provider.On("GetProduct", ctx, domain.ProductID("7")).Return(&domain.Product{ID: "7"}, nil).Once()
	product, err := svc.GetProduct(ctx, "7")
	require.NoError(t, err)
	assert.Equal(t, domain.ProductID("7"), product.ID)
	provider.AssertExpectations(t)
}
