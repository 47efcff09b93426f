// internal/domain/cart/entity.go
package cart

import "github.com/shopspring/decimal"

// LineItem represents one product's presence in the cart. Display
// metadata is copied from the catalog at add-time and is not refreshed,
// so it may go stale relative to the catalog.
type LineItem struct {
	ProductID   string          `json:"productId"`
	Name        string          `json:"name"`
	ImageURL    string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Totals holds the derived pricing of a cart. It is computed on demand
// and never stored.
type Totals struct {
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}
