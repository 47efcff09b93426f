// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront gateway
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Remote   RemoteConfig
	Cart     CartConfig
	JWT      JWTConfig
	Security SecurityConfig
	Redis    RedisConfig
	Logging  LoggingConfig
}

// AppConfig contains application-level configuration
type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Debug       bool
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// RemoteConfig contains the base URLs of the backing storefront services
type RemoteConfig struct {
	AuthBaseURL      string
	CatalogBaseURL   string
	CartStoreBaseURL string
	OrdersBaseURL    string
	RequestTimeout   time.Duration
}

// CartConfig contains cart manager tuning
type CartConfig struct {
	SyncDebounce     time.Duration
	QuantityCap      int
	DeliveryLeadDays int
	SessionTTL       time.Duration
	SweepInterval    time.Duration
}

// JWTConfig contains bearer token verification configuration
type JWTConfig struct {
	Secret string
}

// SecurityConfig contains security-related configuration
type SecurityConfig struct {
	RateLimitPerMinute int
	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string
	TrustedProxies     []string
}

// RedisConfig contains Redis configuration (rate limiting)
type RedisConfig struct {
	Host         string
	Port         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment variables")
	}

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "E Kart Storefront"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			Debug:       getEnvAsBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Port:         getEnv("APP_PORT", "8080"),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getEnvAsDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Remote: RemoteConfig{
			AuthBaseURL:      getEnv("AUTH_SERVICE_URL", "http://localhost:5001"),
			CatalogBaseURL:   getEnv("CATALOG_SERVICE_URL", "http://localhost:5002"),
			CartStoreBaseURL: getEnv("CART_STORE_URL", "http://localhost:5003"),
			OrdersBaseURL:    getEnv("ORDER_SERVICE_URL", "http://localhost:5004"),
			RequestTimeout:   getEnvAsDuration("REMOTE_REQUEST_TIMEOUT", 10*time.Second),
		},
		Cart: CartConfig{
			SyncDebounce:     getEnvAsDuration("CART_SYNC_DEBOUNCE", 500*time.Millisecond),
			QuantityCap:      getEnvAsInt("CART_QUANTITY_CAP", 6),
			DeliveryLeadDays: getEnvAsInt("CART_DELIVERY_LEAD_DAYS", 5),
			SessionTTL:       getEnvAsDuration("CART_SESSION_TTL", 24*time.Hour),
			SweepInterval:    getEnvAsDuration("CART_SWEEP_INTERVAL", 10*time.Minute),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-in-production"),
		},
		Security: SecurityConfig{
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
			CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:3001"}),
			CORSAllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
			CORSAllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Origin", "Content-Type", "Accept", "Authorization"}),
			TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
		},
		Redis: RedisConfig{
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getEnvAsInt("REDIS_DB", 0),
			PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "debug"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate JWT secret
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	// Validate remote service URLs
	if c.Remote.AuthBaseURL == "" {
		return fmt.Errorf("AUTH_SERVICE_URL is required")
	}
	if c.Remote.CatalogBaseURL == "" {
		return fmt.Errorf("CATALOG_SERVICE_URL is required")
	}
	if c.Remote.CartStoreBaseURL == "" {
		return fmt.Errorf("CART_STORE_URL is required")
	}
	if c.Remote.OrdersBaseURL == "" {
		return fmt.Errorf("ORDER_SERVICE_URL is required")
	}

	// Validate cart tuning
	if c.Cart.SyncDebounce <= 0 {
		return fmt.Errorf("CART_SYNC_DEBOUNCE must be positive")
	}
	if c.Cart.QuantityCap < 1 {
		return fmt.Errorf("CART_QUANTITY_CAP must be at least 1")
	}

	// Validate Redis configuration
	if c.Redis.Host == "" {
		return fmt.Errorf("REDIS_HOST is required")
	}

	// Validate server port
	if c.Server.Port == "" {
		return fmt.Errorf("APP_PORT is required")
	}

	return nil
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
