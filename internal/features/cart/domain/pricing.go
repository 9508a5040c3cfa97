package domain

import "github.com/shopspring/decimal"

// PricingRules are the fixed business constants of the storefront.
type PricingRules struct {
	// ShippingFee is charged when 0 < subtotal < FreeShippingThreshold.
	ShippingFee decimal.Decimal
	// FreeShippingThreshold is the subtotal from which shipping is free.
	FreeShippingThreshold decimal.Decimal
	// TaxRate applies to subtotal plus shipping.
	TaxRate decimal.Decimal
}

// DefaultPricingRules are the Colombian storefront defaults: $15.000 shipping,
// free from $100.000, 19% IVA.
func DefaultPricingRules() PricingRules {
	return PricingRules{
		ShippingFee:           decimal.NewFromInt(15000),
		FreeShippingThreshold: decimal.NewFromInt(100000),
		TaxRate:               decimal.RequireFromString("0.19"),
	}
}

// NewPricingRules builds rules from configuration floats.
func NewPricingRules(shippingFee, freeShippingThreshold, taxRate float64) PricingRules {
	return PricingRules{
		ShippingFee:           decimal.NewFromFloat(shippingFee),
		FreeShippingThreshold: decimal.NewFromFloat(freeShippingThreshold),
		TaxRate:               decimal.NewFromFloat(taxRate),
	}
}

// Totals is the derived price breakdown of a cart. It is never stored.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shipping_fee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// Price computes totals for lines under r. All arithmetic is exact; rounding
// is left to presentation.
func (r PricingRules) Price(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.LineTotal())
	}

	shipping := decimal.Zero
	if subtotal.IsPositive() && subtotal.LessThan(r.FreeShippingThreshold) {
		shipping = r.ShippingFee
	}

	tax := subtotal.Add(shipping).Mul(r.TaxRate)

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: shipping,
		Tax:         tax,
		Total:       subtotal.Add(shipping).Add(tax),
	}
}
