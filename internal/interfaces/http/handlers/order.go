// internal/interfaces/http/handlers/order.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/ekart-storefront/internal/infrastructure/remote"
	"github.com/your-org/ekart-storefront/internal/interfaces/http/middleware"
)

// OrderHandler proxies the order history surface.
type OrderHandler struct {
	ordersClient *remote.OrdersClient
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(ordersClient *remote.OrdersClient) *OrderHandler {
	return &OrderHandler{
		ordersClient: ordersClient,
	}
}

// GetHistory handles GET /orders/history
func (h *OrderHandler) GetHistory(c *gin.Context) {
	summaries, err := h.ordersClient.History(c.Request.Context(), middleware.GetCredentialFromContext(c))
	if err != nil {
		c.JSON(remoteErrorStatus(err), gin.H{
			"error": "Failed to retrieve order history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order history retrieved successfully",
		"data":    summaries,
	})
}
