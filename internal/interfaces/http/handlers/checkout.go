// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/ekart-storefront/internal/domain/cart"
	"github.com/your-org/ekart-storefront/internal/domain/order"
	"github.com/your-org/ekart-storefront/internal/interfaces/http/middleware"
)

// CheckoutHandler converts a session's cart into a submitted order.
type CheckoutHandler struct {
	carts *cart.Registry
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(carts *cart.Registry) *CheckoutHandler {
	return &CheckoutHandler{
		carts: carts,
	}
}

type orderItemDTO struct {
	ProductID       string  `json:"productId"`
	Name            string  `json:"name"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discountedPrice"`
	Quantity        int     `json:"quantity"`
}

type orderDTO struct {
	Items        []orderItemDTO `json:"items"`
	TotalAmount  float64        `json:"totalAmount"`
	ShippingFee  float64        `json:"shippingFee"`
	PlacedAt     string         `json:"placedAt"`
	DeliveryDate string         `json:"deliveryDate"`
}

func toOrderDTO(o *order.Order) orderDTO {
	dto := orderDTO{
		Items:        make([]orderItemDTO, len(o.Items)),
		TotalAmount:  o.TotalAmount.Round(2).InexactFloat64(),
		ShippingFee:  o.ShippingFee.InexactFloat64(),
		PlacedAt:     o.PlacedAt.Format("2006-01-02T15:04:05Z07:00"),
		DeliveryDate: o.DeliveryDate.Format("2006-01-02T15:04:05Z07:00"),
	}
	for i, item := range o.Items {
		dto.Items[i] = orderItemDTO{
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
	return dto
}

// Checkout handles POST /checkout. A missing credential is rejected
// here without contacting the order service; any submission failure
// leaves the cart intact and is reported generically.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	m := h.carts.Get(middleware.GetSessionIDFromContext(c))

	o, err := m.Checkout(c.Request.Context(), middleware.GetCredentialFromContext(c))
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrAuthRequired):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Please login to place an order",
			})
		case errors.Is(err, cart.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Failed to place order. Please try again.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data":    toOrderDTO(o),
	})
}
