// internal/domain/cart/pricing.go
package cart

import "github.com/shopspring/decimal"

// Pricing rules. A unit price strictly above 50 gets a flat 20% off,
// rounded to cents. Shipping is a step function of the discounted
// subtotal; a subtotal of exactly 10 ships free.
var (
	discountThreshold = decimal.NewFromInt(50)
	discountFactor    = decimal.RequireFromString("0.8")

	freeShippingLimit = decimal.NewFromInt(10)
	midBandLimit      = decimal.NewFromInt(40)
	highBandLimit     = decimal.NewFromInt(90)
	topBandLimit      = decimal.NewFromInt(120)

	shippingLow  = decimal.RequireFromString("7.99")
	shippingMid  = decimal.RequireFromString("4.99")
	shippingHigh = decimal.RequireFromString("3.99")
	shippingTop  = decimal.RequireFromString("2.99")
)

// DiscountedUnitPrice returns the effective unit price after the flat
// discount. Prices at or below the threshold are returned unchanged.
func DiscountedUnitPrice(unitPrice decimal.Decimal) decimal.Decimal {
	if unitPrice.GreaterThan(discountThreshold) {
		return unitPrice.Mul(discountFactor).Round(2)
	}
	return unitPrice
}

// ShippingFee returns the shipping fee for a given cart subtotal.
func ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	switch {
	case subtotal.LessThanOrEqual(freeShippingLimit):
		return decimal.Zero
	case subtotal.LessThan(midBandLimit):
		return shippingLow
	case subtotal.LessThan(highBandLimit):
		return shippingMid
	case subtotal.LessThan(topBandLimit):
		return shippingHigh
	default:
		return shippingTop
	}
}

// ComputeTotals derives the cart subtotal, shipping fee and total from
// the given line items. It is pure: the same items always produce the
// same totals.
func ComputeTotals(items []LineItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := DiscountedUnitPrice(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	fee := ShippingFee(subtotal)

	return Totals{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
	}
}
