package domain

import (
	"errors"
	"slices"

	catalog "storefront/internal/features/catalog/domain"
)

// MaxCompare is the largest number of products that can be compared side by side.
const MaxCompare = 4

// ErrCompareFull is returned when adding a fifth product to the compare list.
var ErrCompareFull = errors.New("compare list is full")

// Kind names a per-session product list.
type Kind string

const (
	Favorites Kind = "favorites"
	Compare   Kind = "compare"
)

// List is an ordered set of product IDs.
type List struct {
	Kind Kind                `json:"kind"`
	IDs  []catalog.ProductID `json:"ids"`
}

// NewList builds a list from persisted IDs, dropping blanks and duplicates.
// A compare list is truncated to MaxCompare.
func NewList(kind Kind, ids []catalog.ProductID) *List {
	l := &List{Kind: kind, IDs: []catalog.ProductID{}}
	for _, id := range ids {
		if id == "" || l.Contains(id) {
			continue
		}
		if kind == Compare && len(l.IDs) == MaxCompare {
			break
		}
		l.IDs = append(l.IDs, id)
	}
	return l
}

// Contains reports whether id is in the list.
func (l *List) Contains(id catalog.ProductID) bool {
	return slices.Contains(l.IDs, id)
}

// Toggle adds id when absent and removes it when present. It reports whether
// id is in the list afterwards.
func (l *List) Toggle(id catalog.ProductID) (bool, error) {
	if i := slices.Index(l.IDs, id); i >= 0 {
		l.IDs = slices.Delete(l.IDs, i, i+1)
		return false, nil
	}
	if l.Kind == Compare && len(l.IDs) >= MaxCompare {
		return false, ErrCompareFull
	}
	l.IDs = append(l.IDs, id)
	return true, nil
}

// Clear empties the list.
func (l *List) Clear() {
	l.IDs = []catalog.ProductID{}
}

// View is a list with the products it references resolved from the catalog.
// IDs no longer in the catalog are left out of Products.
type View struct {
	Kind     Kind                `json:"kind"`
	IDs      []catalog.ProductID `json:"ids"`
	Products []catalog.Product   `json:"products"`
	Max      int                 `json:"max,omitempty"`
}
