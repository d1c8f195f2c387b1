package checkout

import (
	"github.com/passandplay/gamestore/core/cart"
	"github.com/shopspring/decimal"
)

// Pricing holds the rates applied on top of the cart subtotal.
type Pricing struct {
	TaxRate          decimal.Decimal
	FreeShippingOver decimal.Decimal
	ShippingFee      decimal.Decimal
}

func DefaultPricing() Pricing {
	return Pricing{
		TaxRate:          decimal.RequireFromString("0.07"),
		FreeShippingOver: decimal.NewFromInt(50),
		ShippingFee:      decimal.RequireFromString("5.99"),
	}
}

type Summary struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// FreeShipping reports whether the order ships at no cost.
func (s Summary) FreeShipping() bool {
	return s.Shipping.IsZero()
}

// Summarize computes the order amounts from the current cart contents.
// Shipping is free only when the subtotal is strictly above the threshold.
func (p Pricing) Summarize(c *cart.Cart) Summary {
	sub := c.Total()
	tax := sub.Mul(p.TaxRate)

	ship := p.ShippingFee
	if sub.GreaterThan(p.FreeShippingOver) {
		ship = decimal.Zero
	}

	return Summary{
		Subtotal: sub,
		Tax:      tax,
		Shipping: ship,
		Total:    sub.Add(tax).Add(ship),
	}
}

// SummaryView is a Summary rounded to cents for display.
type SummaryView struct {
	Subtotal     string `json:"subtotal"`
	Tax          string `json:"tax"`
	Shipping     string `json:"shipping"`
	FreeShipping bool   `json:"freeShipping"`
	Total        string `json:"total"`
}

func (s Summary) View() SummaryView {
	return SummaryView{
		Subtotal:     s.Subtotal.StringFixed(2),
		Tax:          s.Tax.StringFixed(2),
		Shipping:     s.Shipping.StringFixed(2),
		FreeShipping: s.FreeShipping(),
		Total:        s.Total.StringFixed(2),
	}
}
