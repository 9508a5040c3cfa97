package domain

import (
	"errors"

	catalog "storefront/internal/features/catalog/domain"

	"github.com/shopspring/decimal"
)

// ErrOutOfStock is returned when adding a product that has no units available.
var ErrOutOfStock = errors.New("product is out of stock")

// Line is one product-and-quantity entry in the cart.
type Line struct {
	// ProductID is the unique key of the line within the cart.
	ProductID catalog.ProductID `json:"productId"`
	// Name is a display snapshot taken when the line was created.
	Name string `json:"name"`
	// UnitPrice is the price snapshot taken when the line was created.
	UnitPrice decimal.Decimal `json:"unitPrice"`
	// Quantity is always between 1 and AvailableStock.
	Quantity int `json:"quantity"`
	// AvailableStock is the stock seen at the last mutation.
	AvailableStock int `json:"availableStock"`
}

// LineTotal is UnitPrice × Quantity.
func (l Line) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an in-memory list of lines keyed by product. It is not safe for
// concurrent use; callers serialize access per session.
type Cart struct {
	lines []Line
	rules PricingRules
}

// NewCart returns an empty cart priced with rules.
func NewCart(rules PricingRules) *Cart {
	return &Cart{rules: rules}
}

// Restore rebuilds a cart from persisted lines. Lines that break the
// quantity invariants are repaired (clamped) or dropped.
func Restore(rules PricingRules, lines []Line) *Cart {
	c := NewCart(rules)
	for _, l := range lines {
		if l.ProductID == "" || c.index(l.ProductID) >= 0 {
			continue
		}
		if l.Quantity > l.AvailableStock {
			l.Quantity = l.AvailableStock
		}
		if l.Quantity < 1 || l.UnitPrice.IsNegative() {
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// AddLine merges quantity units of product into the cart. Quantities are
// silently clamped to the product's stock; an existing line never decreases.
// A new line gets at least one unit.
func (c *Cart) AddLine(product catalog.Product, quantity int) error {
	if i := c.index(product.ID); i >= 0 {
		line := &c.lines[i]
		next := line.Quantity
		if quantity > 0 {
			next = min(line.Quantity+quantity, product.Stock)
		}
		if next < line.Quantity {
			next = line.Quantity
		}
		line.Quantity = next
		if product.Stock >= next {
			line.AvailableStock = product.Stock
		}
		return nil
	}

	if product.Stock < 1 {
		return ErrOutOfStock
	}

	c.lines = append(c.lines, Line{
		ProductID:      product.ID,
		Name:           product.Name,
		UnitPrice:      product.UnitPrice,
		Quantity:       max(1, min(quantity, product.Stock)),
		AvailableStock: product.Stock,
	})
	return nil
}

// RemoveLine deletes the line for id. Removing a missing line is a no-op.
func (c *Cart) RemoveLine(id catalog.ProductID) {
	if i := c.index(id); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity sets the quantity of an existing line, clamped to its stock.
// A quantity below 1 removes the line.
func (c *Cart) SetQuantity(id catalog.ProductID, quantity int) {
	if quantity < 1 {
		c.RemoveLine(id)
		return
	}
	if i := c.index(id); i >= 0 {
		c.lines[i].Quantity = min(quantity, c.lines[i].AvailableStock)
	}
}

// Clear removes all lines.
func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for id, if present.
func (c *Cart) Line(id catalog.ProductID) (Line, bool) {
	if i := c.index(id); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Count is the total number of units across lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Totals recomputes the price breakdown from the current lines.
func (c *Cart) Totals() Totals {
	return c.rules.Price(c.lines)
}

// Snapshot freezes the cart for checkout.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		Lines:  c.Lines(),
		Totals: c.Totals(),
	}
}

// View is the read model returned to the storefront.
func (c *Cart) View() View {
	return View{
		Lines:                 c.Lines(),
		Totals:                c.Totals(),
		Count:                 c.Count(),
		FreeShippingThreshold: c.rules.FreeShippingThreshold,
	}
}

func (c *Cart) index(id catalog.ProductID) int {
	for i := range c.lines {
		if c.lines[i].ProductID == id {
			return i
		}
	}
	return -1
}

// Snapshot is an immutable copy of the cart's lines and totals.
type Snapshot struct {
	Lines  []Line `json:"lines"`
	Totals Totals `json:"totals"`
}

// IsEmpty reports whether the snapshot has no lines.
func (s Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}

// View is the cart as shown on the cart page.
type View struct {
	Lines                 []Line          `json:"lines"`
	Totals                Totals          `json:"totals"`
	Count                 int             `json:"count"`
	FreeShippingThreshold decimal.Decimal `json:"free_shipping_threshold"`
}
