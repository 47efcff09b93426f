// internal/infrastructure/remote/orders.go
package remote

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/order"
)

// OrdersClient talks to the order-placement service. It implements
// cart.OrderPlacer.
type OrdersClient struct {
	c *client
}

// NewOrdersClient creates a client for the remote order service.
func NewOrdersClient(cfg config.RemoteConfig, log *logrus.Logger) *OrdersClient {
	return &OrdersClient{
		c: newClient(cfg.OrdersBaseURL, cfg.RequestTimeout, log.WithField("remote", "orders")),
	}
}

// Order service wire shapes. Money crosses the wire as JSON numbers.
type orderItemPayload struct {
	ProductID       string  `json:"productId"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Quantity        int     `json:"quantity"`
}

type orderPayload struct {
	Items        []orderItemPayload `json:"items"`
	TotalAmount  float64            `json:"totalAmount"`
	ShippingFee  float64            `json:"shippingFee"`
	PlacedAt     string             `json:"placedAt"`
	DeliveryDate string             `json:"deliveryDate"`
}

// Place submits a finalized order. Success or failure only; there are
// no partial-success semantics.
func (oc *OrdersClient) Place(ctx context.Context, credential string, o *order.Order) error {
	payload := orderPayload{
		Items:        make([]orderItemPayload, len(o.Items)),
		TotalAmount:  o.TotalAmount.InexactFloat64(),
		ShippingFee:  o.ShippingFee.InexactFloat64(),
		PlacedAt:     o.PlacedAt.Format("2006-01-02T15:04:05.000Z07:00"),
		DeliveryDate: o.DeliveryDate.Format("2006-01-02T15:04:05.000Z07:00"),
	}
	for i, item := range o.Items {
		payload.Items[i] = orderItemPayload{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Image:           item.ImageURL,
			Category:        item.Category,
			Description:     item.Description,
			Price:           item.UnitPrice.InexactFloat64(),
			DiscountedPrice: item.DiscountedPrice.InexactFloat64(),
			Quantity:        item.Quantity,
		}
	}
	return oc.c.doJSON(ctx, http.MethodPost, "/orders", credential, payload, nil)
}

// History lists the credential's past orders, newest first as returned
// by the order service.
func (oc *OrdersClient) History(ctx context.Context, credential string) ([]order.Summary, error) {
	var summaries []order.Summary
	if err := oc.c.doJSON(ctx, http.MethodGet, "/orders/history", credential, nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}
