package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrProductNotFound is returned when the catalog has no product with the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductID is the backend's opaque product identifier.
// The backend sends it as a JSON number; strings are accepted too.
type ProductID string

// UnmarshalJSON accepts both numeric and string IDs.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ProductID(n.String())
	return nil
}

// MarshalJSON writes numeric IDs back as numbers so the backend sees its own format.
func (id ProductID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ProductID) numeric() bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Product is a catalog entry as served by GET /api/productos.
type Product struct {
	// ID is the unique product identifier.
	ID ProductID `json:"ID_Producto"`
	// Name is the display name.
	Name string `json:"Nombre"`
	// Brand doubles as the product category in the storefront.
	Brand string `json:"Marca"`
	// Description is the long product description.
	Description string `json:"descripcion,omitempty"`
	// ImageURL points at the main product picture.
	ImageURL string `json:"imagen_url,omitempty"`
	// UnitPrice is the price in store currency.
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	// Stock is the number of units available.
	Stock int `json:"cantidad"`
	// Rating is the average review score (0 when unrated).
	Rating float64 `json:"rating,omitempty"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// matchesSearch does a case-insensitive substring match on name or brand.
func (p Product) matchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term)
}
