// internal/domain/cart/pricing_test.go
package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func item(price string, qty int) LineItem {
	return LineItem{
		ProductID: "p-" + price,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestDiscountedUnitPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  string
	}{
		{"below threshold unchanged", "49.99", "49.99"},
		{"exactly at threshold unchanged", "50", "50"},
		{"above threshold gets 20 percent off", "60", "48"},
		{"discount rounds to cents", "59.99", "47.99"}, // 47.992 -> 47.99
		{"just above threshold", "50.01", "40.01"},     // 40.008 -> 40.01
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiscountedUnitPrice(decimal.RequireFromString(tt.price))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestShippingFee(t *testing.T) {
	tests := []struct {
		name     string
		subtotal string
		want     string
	}{
		{"empty cart ships free", "0", "0"},
		{"exactly 10 ships free", "10", "0"},
		{"just above 10", "10.01", "7.99"},
		{"just below 40", "39.99", "7.99"},
		{"exactly 40", "40", "4.99"},
		{"just below 90", "89.99", "4.99"},
		{"exactly 90", "90", "3.99"},
		{"just below 120", "119.99", "3.99"},
		{"exactly 120", "120", "2.99"},
		{"large subtotal", "999.99", "2.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShippingFee(decimal.RequireFromString(tt.subtotal))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestComputeTotals(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		totals := ComputeTotals(nil)
		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.ShippingFee.IsZero())
		assert.True(t, totals.Total.IsZero())
	})

	t.Run("discount applied per unit before multiplying", func(t *testing.T) {
		// 60 discounts to 48, two units make 96, which lands in the
		// 3.99 shipping band.
		totals := ComputeTotals([]LineItem{item("60", 2)})
		assert.Equal(t, "96", totals.Subtotal.String())
		assert.Equal(t, "3.99", totals.ShippingFee.String())
		assert.Equal(t, "99.99", totals.Total.String())
	})

	t.Run("mixed discounted and full price lines", func(t *testing.T) {
		totals := ComputeTotals([]LineItem{
			item("20", 1), // no discount
			item("55", 1), // discounts to 44
		})
		assert.Equal(t, "64", totals.Subtotal.String())
		assert.Equal(t, "4.99", totals.ShippingFee.String())
		assert.Equal(t, "68.99", totals.Total.String())
	})

	t.Run("pure function", func(t *testing.T) {
		items := []LineItem{item("60", 2), item("5", 3)}
		first := ComputeTotals(items)
		second := ComputeTotals(items)
		assert.True(t, first.Total.Equal(second.Total))
		assert.True(t, first.Subtotal.Equal(second.Subtotal))
	})
}
