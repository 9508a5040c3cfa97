package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AllCategories selects every brand.
const AllCategories = "all"

// Filter narrows a product listing. Zero values disable each criterion.
type Filter struct {
	Search    string
	Category  string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	MinRating float64
}

// Matches reports whether p satisfies every active criterion. Price bounds are inclusive.
func (f Filter) Matches(p Product) bool {
	if !p.matchesSearch(f.Search) {
		return false
	}
	if f.Category != "" && f.Category != AllCategories && p.Brand != f.Category {
		return false
	}
	if f.MinPrice != nil && p.UnitPrice.LessThan(*f.MinPrice) {
		return false
	}
	if f.MaxPrice != nil && p.UnitPrice.GreaterThan(*f.MaxPrice) {
		return false
	}
	if f.MinRating > 0 && p.Rating < f.MinRating {
		return false
	}
	return true
}

// Apply returns the products matching f, preserving order.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// PriceRange is the cheapest and most expensive price in a listing.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Listing is a filtered product page plus facets computed over the full catalog.
type Listing struct {
	Products   []Product  `json:"products"`
	Categories []string   `json:"categories"`
	PriceRange PriceRange `json:"price_range"`
	Total      int        `json:"total"`
}

// NewListing filters all and computes facets over the unfiltered catalog.
func NewListing(all []Product, f Filter) *Listing {
	filtered := f.Apply(all)
	return &Listing{
		Products:   filtered,
		Categories: Categories(all),
		PriceRange: PriceRangeOf(all),
		Total:      len(filtered),
	}
}

// Categories returns the sorted distinct brands.
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	out := make([]string, 0)
	for _, p := range products {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; ok {
			continue
		}
		seen[p.Brand] = struct{}{}
		out = append(out, p.Brand)
	}
	sort.Strings(out)
	return out
}

// PriceRangeOf returns the min and max unit price; both are zero for an empty catalog.
func PriceRangeOf(products []Product) PriceRange {
	if len(products) == 0 {
		return PriceRange{Min: decimal.Zero, Max: decimal.Zero}
	}
	r := PriceRange{Min: products[0].UnitPrice, Max: products[0].UnitPrice}
	for _, p := range products[1:] {
		r.Min = decimal.Min(r.Min, p.UnitPrice)
		r.Max = decimal.Max(r.Max, p.UnitPrice)
	}
	return r
}
