package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() []Product {
	return []Product{
		{ID: "1", Name: "Taladro Percutor", Brand: "Bosch", UnitPrice: decimal.NewFromInt(250000), Stock: 4, Rating: 4.5},
		{ID: "2", Name: "Martillo", Brand: "Stanley", UnitPrice: decimal.NewFromInt(35000), Stock: 20, Rating: 3},
		{ID: "3", Name: "Sierra Circular", Brand: "Bosch", UnitPrice: decimal.NewFromInt(410000), Stock: 0},
		{ID: "4", Name: "Destornillador", Brand: "Truper", UnitPrice: decimal.NewFromInt(12000), Stock: 50, Rating: 5},
	}
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func ids(products []Product) []ProductID {
	out := make([]ProductID, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		expected []ProductID
	}{
		{name: "No filter", filter: Filter{}, expected: []ProductID{"1", "2", "3", "4"}},
		{name: "Search by name is case-insensitive", filter: Filter{Search: "MARTI"}, expected: []ProductID{"2"}},
		{name: "Search matches brand", filter: Filter{Search: "bosch"}, expected: []ProductID{"1", "3"}},
		{name: "Category all", filter: Filter{Category: AllCategories}, expected: []ProductID{"1", "2", "3", "4"}},
		{name: "Category by brand", filter: Filter{Category: "Truper"}, expected: []ProductID{"4"}},
		{name: "Inclusive price range", filter: Filter{MinPrice: price(35000), MaxPrice: price(250000)}, expected: []ProductID{"1", "2"}},
		{name: "Minimum rating", filter: Filter{MinRating: 4}, expected: []ProductID{"1", "4"}},
		{name: "Combined", filter: Filter{Search: "o", Category: "Bosch", MaxPrice: price(300000)}, expected: []ProductID{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(tt.filter.Apply(sampleCatalog())))
		})
	}
}

func TestNewListing_Facets(t *testing.T) {
	listing := NewListing(sampleCatalog(), Filter{Category: "Stanley"})

	assert.Equal(t, 1, listing.Total)
	assert.Equal(t, []string{"Bosch", "Stanley", "Truper"}, listing.Categories)
	assert.True(t, listing.PriceRange.Min.Equal(decimal.NewFromInt(12000)))
	assert.True(t, listing.PriceRange.Max.Equal(decimal.NewFromInt(410000)))
}

func TestPriceRangeOf_Empty(t *testing.T) {
	r := PriceRangeOf(nil)
	assert.True(t, r.Min.IsZero())
	assert.True(t, r.Max.IsZero())
}

func TestProduct_DecodesBackendFormat(t *testing.T) {
	raw := `{"ID_Producto": 17, "Nombre": "Llave Inglesa", "Marca": "Stanley", "precio_unitario": "45000.50", "cantidad": 3}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, ProductID("17"), p.ID)
	assert.True(t, p.UnitPrice.Equal(decimal.RequireFromString("45000.50")))
	assert.Equal(t, 3, p.Stock)
	assert.True(t, p.InStock())
}

func TestProductID_JSON(t *testing.T) {
	numeric, err := json.Marshal(ProductID("42"))
	require.NoError(t, err)
	assert.Equal(t, `42`, string(numeric))

	opaque, err := json.Marshal(ProductID("sku-42"))
	require.NoError(t, err)
	assert.Equal(t, `"sku-42"`, string(opaque))

	var id ProductID
	require.NoError(t, json.Unmarshal([]byte(`"sku-42"`), &id))
	assert.Equal(t, ProductID("sku-42"), id)
}
