// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/ekart-storefront/internal/config"
	"github.com/your-org/ekart-storefront/internal/domain/cart"
	"github.com/your-org/ekart-storefront/internal/infrastructure/database/redis"
	"github.com/your-org/ekart-storefront/internal/infrastructure/remote"
	"github.com/your-org/ekart-storefront/internal/interfaces/http"
	"github.com/your-org/ekart-storefront/internal/interfaces/http/routes"
	"github.com/your-org/ekart-storefront/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		logg.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		logg.Fatalf("Redis health check failed: %v", err)
	}

	// Remote backend clients
	authClient := remote.NewAuthClient(cfg.Remote, logg)
	catalogClient := remote.NewCatalogClient(cfg.Remote, logg)
	cartStoreClient := remote.NewCartStoreClient(cfg.Remote, logg)
	ordersClient := remote.NewOrdersClient(cfg.Remote, logg)

	// Per-session cart managers
	carts := cart.NewRegistry(cartStoreClient, ordersClient, cfg.Cart, logg)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go carts.Sweep(sweepCtx)

	logg.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, logg, redisClient.GetClient(), &routes.Services{
		Carts:   carts,
		Auth:    authClient,
		Catalog: catalogClient,
		Orders:  ordersClient,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logg.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logg.Info("✅ Server shutdown completed")
}
