// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one cart line frozen into an order, priced with any
// discount already applied.
type LineItem struct {
	ProductID       string          `json:"productId"`
	Name            string          `json:"name"`
	ImageURL        string          `json:"image"`
	Category        string          `json:"category"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"price"`
	DiscountedPrice decimal.Decimal `json:"discountedPrice"`
	Quantity        int             `json:"quantity"`
}

// Order is the checkout snapshot submitted to the order service. Once
// accepted it is owned by that service; the gateway keeps no copy.
type Order struct {
	Items        []LineItem      `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	ShippingFee  decimal.Decimal `json:"shippingFee"`
	PlacedAt     time.Time       `json:"placedAt"`
	DeliveryDate time.Time       `json:"deliveryDate"`
}

// Summary is one entry of a user's order history as returned by the
// order service.
type Summary struct {
	OrderID      string    `json:"orderId"`
	TotalAmount  float64   `json:"totalAmount"`
	PlacedAt     time.Time `json:"placedAt"`
	DeliveryDate time.Time `json:"deliveryDate"`
}
