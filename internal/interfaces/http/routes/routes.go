// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/cart"
	"github.com/your-org/ekart-storefront/internal/infrastructure/remote"
	"github.com/your-org/ekart-storefront/internal/interfaces/http/handlers"
	"github.com/your-org/ekart-storefront/internal/interfaces/http/middleware"
)

// Services bundles the collaborators the route handlers work against.
type Services struct {
	Carts   *cart.Registry
	Auth    *remote.AuthClient
	Catalog *remote.CatalogClient
	Orders  *remote.OrdersClient
}

// SetupRoutes wires the storefront API onto the router group.
func SetupRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	SetupAuthRoutes(rg, svc)
	SetupProductRoutes(rg, svc)
	SetupCartRoutes(rg, svc, cfg)
	SetupOrderRoutes(rg, svc, cfg)
	SetupAdminRoutes(rg, svc, cfg)
}

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, svc *Services) {
	authHandler := handlers.NewAuthHandler(svc.Auth, svc.Carts)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/logout", authHandler.Logout)
	}
}

// SetupProductRoutes sets up the public catalog routes
func SetupProductRoutes(rg *gin.RouterGroup, svc *Services) {
	productHandler := handlers.NewProductHandler(svc.Catalog)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart and checkout routes. Auth is optional:
// the cart works for guests, and checkout does its own local rejection
// so an unauthenticated attempt never reaches the order service.
func SetupCartRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(svc.Carts, svc.Catalog)
	checkoutHandler := handlers.NewCheckoutHandler(svc.Carts)

	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.POST("/items/:id/increment", cartHandler.IncrementQuantity)
		cartGroup.POST("/items/:id/decrement", cartHandler.DecrementQuantity)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		checkout.POST("", checkoutHandler.Checkout)
	}
}

// SetupOrderRoutes sets up order history routes
func SetupOrderRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(svc.Orders)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("/history", orderHandler.GetHistory)
	}
}

// SetupAdminRoutes sets up admin related routes
func SetupAdminRoutes(rg *gin.RouterGroup, svc *Services, cfg *config.Config) {
	adminHandler := handlers.NewAdminProductHandler(svc.Catalog)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg)) // Require authentication
	admin.Use(middleware.AdminMiddleware())   // Require the admin role claim
	{
		products := admin.Group("/products")
		{
			products.GET("", adminHandler.ListProducts)
			products.POST("", adminHandler.CreateProduct)
			products.PUT("/:id", adminHandler.UpdateProduct)
			products.DELETE("/:id", adminHandler.DeleteProduct)
		}
	}
}
