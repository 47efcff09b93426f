// internal/infrastructure/remote/cartstore.go
package remote

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/cart"
)

// CartStoreClient is the remote cart store: an eventually-consistent
// replica of the session's cart, keyed by the user's credential. It
// implements cart.Store.
type CartStoreClient struct {
	c *client
}

// NewCartStoreClient creates a client for the remote cart store.
func NewCartStoreClient(cfg config.RemoteConfig, log *logrus.Logger) *CartStoreClient {
	return &CartStoreClient{
		c: newClient(cfg.CartStoreBaseURL, cfg.RequestTimeout, log.WithField("remote", "cart-store")),
	}
}

// cartStoreItem is the cart store's wire shape for one line item.
type cartStoreItem struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Quantity    int     `json:"quantity"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

type syncRequest struct {
	Items []cartStoreItem `json:"items"`
}

// Fetch retrieves the credential's remote cart snapshot.
func (cs *CartStoreClient) Fetch(ctx context.Context, credential string) ([]cart.LineItem, error) {
	var remote []cartStoreItem
	if err := cs.c.doJSON(ctx, http.MethodGet, "/cart", credential, nil, &remote); err != nil {
		return nil, err
	}

	items := make([]cart.LineItem, len(remote))
	for i, r := range remote {
		items[i] = cart.LineItem{
			ProductID:   r.ProductID,
			Name:        r.Name,
			ImageURL:    r.Image,
			Category:    r.Category,
			Description: r.Description,
			UnitPrice:   decimal.NewFromFloat(r.Price),
			Quantity:    r.Quantity,
		}
	}
	return items, nil
}

// Replace uploads the full item list, overwriting the remote cart. The
// store applies it with full-replace semantics, so the call is
// idempotent.
func (cs *CartStoreClient) Replace(ctx context.Context, credential string, items []cart.LineItem) error {
	req := syncRequest{Items: make([]cartStoreItem, len(items))}
	for i, item := range items {
		req.Items[i] = cartStoreItem{
			ProductID:   item.ProductID,
			Name:        item.Name,
			Price:       item.UnitPrice.InexactFloat64(),
			Image:       item.ImageURL,
			Quantity:    item.Quantity,
			Category:    item.Category,
			Description: item.Description,
		}
	}
	return cs.c.doJSON(ctx, http.MethodPost, "/cart/sync", credential, req, nil)
}
