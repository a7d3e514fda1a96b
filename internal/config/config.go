package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when the environment provides nothing.
const (
	DefaultNATSURL        = "nats://127.0.0.1:4222"
	DefaultBiddingPort    = ":8081"
	DefaultCatalogPort    = ":8082"
	DefaultBiddingBaseURL = "http://127.0.0.1:8081"
	DefaultCatalogBaseURL = "http://127.0.0.1:8082"
	DefaultMaxDeliver     = 5
	DefaultBidRetention   = 30 * 24 * time.Hour
)

// BiddingConfig holds the bidding service's runtime configuration.
type BiddingConfig struct {
	Port           string
	NATSURL        string
	CatalogBaseURL string
	MaxDeliver     int
	BidRetention   time.Duration
}

// CatalogConfig holds the catalog service's runtime configuration.
// DatabaseURL is optional; when empty the in-memory product store is used.
type CatalogConfig struct {
	Port           string
	NATSURL        string
	BiddingBaseURL string
	DatabaseURL    string
	MaxDeliver     int
}

// LoadBidding reads the bidding service configuration from the environment,
// loading a .env file first if one is present.
func LoadBidding() BiddingConfig {
	_ = godotenv.Load()

	return BiddingConfig{
		Port:           getEnv("BIDDING_PORT", DefaultBiddingPort),
		NATSURL:        getEnv("NATS_URL", DefaultNATSURL),
		CatalogBaseURL: getEnv("CATALOG_SERVICE_URL", DefaultCatalogBaseURL),
		MaxDeliver:     getEnvInt("EVENT_MAX_DELIVER", DefaultMaxDeliver),
		BidRetention:   getEnvDuration("BID_RETENTION", DefaultBidRetention),
	}
}

// LoadCatalog reads the catalog service configuration from the environment,
// loading a .env file first if one is present.
func LoadCatalog() CatalogConfig {
	_ = godotenv.Load()

	return CatalogConfig{
		Port:           getEnv("CATALOG_PORT", DefaultCatalogPort),
		NATSURL:        getEnv("NATS_URL", DefaultNATSURL),
		BiddingBaseURL: getEnv("BIDDING_SERVICE_URL", DefaultBiddingBaseURL),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MaxDeliver:     getEnvInt("EVENT_MAX_DELIVER", DefaultMaxDeliver),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
