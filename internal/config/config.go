package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers selectable via STORAGE_DRIVER
const (
	StorageDriverMemory = "memory"
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string

	// CMS access for recipe lookups
	CMSEndpoint string
	CMSToken    string

	// Meal plan persistence
	StorageDriver string
	StoragePath   string

	// Recipe cache tuning
	RecipeCacheSize int
	RecipeCacheTTL  time.Duration

	// Shared secret for the cache revalidation endpoint
	RevalidateSecret string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		CMSEndpoint:      getEnv("CMS_ENDPOINT", ""),
		CMSToken:         getEnv("CMS_TOKEN", ""),
		StorageDriver:    getEnv("STORAGE_DRIVER", StorageDriverMemory),
		StoragePath:      getEnv("STORAGE_PATH", "data"),
		RevalidateSecret: getEnv("REVALIDATE_SECRET", ""),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	sizeStr := getEnv("RECIPE_CACHE_SIZE", "256")
	size, err := strconv.Atoi(sizeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RECIPE_CACHE_SIZE value: %w", err)
	}
	cfg.RecipeCacheSize = size

	ttlStr := getEnv("RECIPE_CACHE_TTL", "24h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RECIPE_CACHE_TTL value: %w", err)
	}
	cfg.RecipeCacheTTL = ttl

	switch cfg.StorageDriver {
	case StorageDriverMemory, StorageDriverFile, StorageDriverSQLite:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER value: %q", cfg.StorageDriver)
	}

	// Recipe lookups need a CMS to talk to
	if cfg.CMSEndpoint == "" {
		return nil, fmt.Errorf("CMS_ENDPOINT environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
