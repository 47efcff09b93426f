// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/ekart-storefront/internal/domain/cart"
	"github.com/your-org/ekart-storefront/internal/infrastructure/remote"
	"github.com/your-org/ekart-storefront/internal/interfaces/http/middleware"
)

// AuthHandler proxies login/register to the auth service and hooks the
// session's cart into the login flow.
type AuthHandler struct {
	authClient *remote.AuthClient
	carts      *cart.Registry
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authClient *remote.AuthClient, carts *cart.Registry) *AuthHandler {
	return &AuthHandler{
		authClient: authClient,
		carts:      carts,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles POST /auth/login. On success the session's cart is
// pulled from the remote store before the response is returned, so
// the replace happens before any further mutations are accepted.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	result, err := h.authClient.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, remote.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Login is temporarily unavailable",
		})
		return
	}

	sessionID := middleware.GetSessionIDFromContext(c)
	h.carts.Get(sessionID).Pull(c.Request.Context(), result.Token)

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"token": result.Token,
			"role":  result.Role,
		},
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.authClient.Register(c.Request.Context(), req.Name, req.Email, req.Password); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Registration is temporarily unavailable",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Account created successfully",
	})
}

// Logout handles POST /auth/logout. The session's local cart is
// dropped; the remote replica is left as-is for the next login's pull.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := middleware.GetSessionIDFromContext(c)
	h.carts.Drop(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
