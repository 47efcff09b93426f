// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/ekart-storefront/internal/infrastructure/remote"
)

// ProductHandler proxies the public catalog surface.
type ProductHandler struct {
	catalogClient *remote.CatalogClient
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogClient *remote.CatalogClient) *ProductHandler {
	return &ProductHandler{
		catalogClient: catalogClient,
	}
}

// remoteErrorStatus maps a collaborator failure to a response status.
// Remote 404s pass through; everything else is a bad gateway.
func remoteErrorStatus(err error) int {
	var statusErr *remote.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.catalogClient.Products(c.Request.Context())
	if err != nil {
		c.JSON(remoteErrorStatus(err), gin.H{
			"error": "Failed to retrieve products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.catalogClient.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(remoteErrorStatus(err), gin.H{
			"error": "Product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product retrieved successfully",
		"data":    product,
	})
}
