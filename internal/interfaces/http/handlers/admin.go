// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/ekart-storefront/internal/domain/catalog"
	"github.com/your-org/ekart-storefront/internal/infrastructure/remote"
	"github.com/your-org/ekart-storefront/internal/interfaces/http/middleware"
)

// AdminProductHandler proxies the catalog's product-management surface.
// Route middleware has already checked the role claim by the time these
// run; the credential is still forwarded so the catalog service can do
// its own enforcement.
type AdminProductHandler struct {
	catalogClient *remote.CatalogClient
}

// NewAdminProductHandler creates a new admin product handler
func NewAdminProductHandler(catalogClient *remote.CatalogClient) *AdminProductHandler {
	return &AdminProductHandler{
		catalogClient: catalogClient,
	}
}

// ListProducts handles GET /admin/products
func (h *AdminProductHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogClient.AdminProducts(c.Request.Context(), middleware.GetCredentialFromContext(c))
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

// CreateProduct handles POST /admin/products
func (h *AdminProductHandler) CreateProduct(c *gin.Context) {
	var input catalog.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogClient.CreateProduct(c.Request.Context(), middleware.GetCredentialFromContext(c), input)
	if err != nil {
		c.JSON(remoteErrorStatus(err), gin.H{
			"error": "Failed to create product",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"data":    product,
	})
}

// UpdateProduct handles PUT /admin/products/:id
func (h *AdminProductHandler) UpdateProduct(c *gin.Context) {
	var input catalog.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogClient.UpdateProduct(c.Request.Context(), middleware.GetCredentialFromContext(c), c.Param("id"), input)
	if err != nil {
		c.JSON(remoteErrorStatus(err), gin.H{
			"error": "Failed to update product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product updated successfully",
		"data":    product,
	})
}

// DeleteProduct handles DELETE /admin/products/:id
func (h *AdminProductHandler) DeleteProduct(c *gin.Context) {
	err := h.catalogClient.DeleteProduct(c.Request.Context(), middleware.GetCredentialFromContext(c), c.Param("id"))
	if err != nil {
		c.JSON(remoteErrorStatus(err), gin.H{
			"error": "Failed to delete product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product deleted successfully",
	})
}
