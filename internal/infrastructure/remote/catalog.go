// internal/infrastructure/remote/catalog.go
package remote

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/catalog"
)

// CatalogClient talks to the read-only product catalog service and its
// admin management surface.
type CatalogClient struct {
	c *client
}

// NewCatalogClient creates a client for the remote catalog service.
func NewCatalogClient(cfg config.RemoteConfig, log *logrus.Logger) *CatalogClient {
	return &CatalogClient{
		c: newClient(cfg.CatalogBaseURL, cfg.RequestTimeout, log.WithField("remote", "catalog")),
	}
}

// Products lists the catalog.
func (cc *CatalogClient) Products(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := cc.c.doJSON(ctx, http.MethodGet, "/products", "", nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single catalog product by id.
func (cc *CatalogClient) Product(ctx context.Context, id string) (*catalog.Product, error) {
	var product catalog.Product
	if err := cc.c.doJSON(ctx, http.MethodGet, "/products/"+id, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// AdminProducts lists the catalog through the admin surface.
func (cc *CatalogClient) AdminProducts(ctx context.Context, credential string) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := cc.c.doJSON(ctx, http.MethodGet, "/admin/products", credential, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct adds a product to the catalog.
func (cc *CatalogClient) CreateProduct(ctx context.Context, credential string, input catalog.ProductInput) (*catalog.Product, error) {
	var product catalog.Product
	if err := cc.c.doJSON(ctx, http.MethodPost, "/admin/products", credential, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct replaces a catalog product's fields.
func (cc *CatalogClient) UpdateProduct(ctx context.Context, credential, id string, input catalog.ProductInput) (*catalog.Product, error) {
	var product catalog.Product
	if err := cc.c.doJSON(ctx, http.MethodPut, "/admin/products/"+id, credential, input, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a catalog product.
func (cc *CatalogClient) DeleteProduct(ctx context.Context, credential, id string) error {
	return cc.c.doJSON(ctx, http.MethodDelete, "/admin/products/"+id, credential, nil, nil)
}
