// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/ekart-storefront/internal/domain/cart"
	"github.com/your-org/ekart-storefront/internal/infrastructure/remote"
	"github.com/your-org/ekart-storefront/internal/interfaces/http/middleware"
)

// CartHandler exposes the session's cart manager over HTTP.
type CartHandler struct {
	carts         *cart.Registry
	catalogClient *remote.CatalogClient
}

// NewCartHandler creates a new cart handler
func NewCartHandler(carts *cart.Registry, catalogClient *remote.CatalogClient) *CartHandler {
	return &CartHandler{
		carts:         carts,
		catalogClient: catalogClient,
	}
}

// AddToCartRequest represents an add to cart request
type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// cartItemDTO is the gateway's JSON shape for one cart line.
type cartItemDTO struct {
	ProductID       string  `json:"productId"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Quantity        int     `json:"quantity"`
}

type cartTotalsDTO struct {
	Subtotal    float64 `json:"subtotal"`
	ShippingFee float64 `json:"shippingFee"`
	Total       float64 `json:"total"`
}

func cartResponse(m *cart.Manager) gin.H {
	items := m.Items()
	totals := cart.ComputeTotals(items)

	dtos := make([]cartItemDTO, len(items))
	for i, item := range items {
		dtos[i] = cartItemDTO{
			ProductID:       item.ProductID,
			Name:            item.Name,
			Image:           item.ImageURL,
			Category:        item.Category,
			Description:     item.Description,
			Price:           item.UnitPrice.InexactFloat64(),
			DiscountedPrice: cart.DiscountedUnitPrice(item.UnitPrice).InexactFloat64(),
			Quantity:        item.Quantity,
		}
	}

	return gin.H{
		"items": dtos,
		"totals": cartTotalsDTO{
			Subtotal:    totals.Subtotal.Round(2).InexactFloat64(),
			ShippingFee: totals.ShippingFee.InexactFloat64(),
			Total:       totals.Total.Round(2).InexactFloat64(),
		},
	}
}

func (h *CartHandler) manager(c *gin.Context) *cart.Manager {
	return h.carts.Get(middleware.GetSessionIDFromContext(c))
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse(h.manager(c)),
	})
}

// AddToCart handles POST /cart/items. The product's display metadata
// and price are copied from the catalog at this point and frozen into
// the line item.
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalogClient.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(remoteErrorStatus(err), gin.H{
			"error": "Product not found",
		})
		return
	}

	m := h.manager(c)
	m.AddToCart(*product, middleware.GetCredentialFromContext(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse(m),
	})
}

// IncrementQuantity handles POST /cart/items/:id/increment
func (h *CartHandler) IncrementQuantity(c *gin.Context) {
	m := h.manager(c)

	err := m.IncrementQuantity(c.Param("id"), middleware.GetCredentialFromContext(c))
	if err != nil {
		if errors.Is(err, cart.ErrQuantityCapReached) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Maximum quantity per product reached",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse(m),
	})
}

// DecrementQuantity handles POST /cart/items/:id/decrement
func (h *CartHandler) DecrementQuantity(c *gin.Context) {
	m := h.manager(c)
	m.DecrementQuantity(c.Param("id"), middleware.GetCredentialFromContext(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse(m),
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	m := h.manager(c)
	m.RemoveFromCart(c.Param("id"), middleware.GetCredentialFromContext(c))

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse(m),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	m := h.manager(c)
	m.ClearCart()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
		"data":    cartResponse(m),
	})
}
