package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string
	APIKey      string // optional API key; empty disables auth

	// Database settings. An empty DBHost selects the in-memory ledger.
	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	// SeedDemoData loads sample users and claims into the in-memory ledger.
	SeedDemoData bool

	// LeaderboardCacheTTLSeconds bounds staleness of the cached leaderboard.
	LeaderboardCacheTTLSeconds int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		ServiceName: getEnv("SERVICE_NAME", "callbeta"),
		Version:     getEnv("VERSION", "dev"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		APIKey:      getEnv("API_KEY", ""),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", ""),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "callbeta"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	seed, err := strconv.ParseBool(getEnv("SEED_DEMO_DATA", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DEMO_DATA value: %w", err)
	}
	cfg.SeedDemoData = seed

	ttlStr := getEnv("LEADERBOARD_CACHE_TTL_SECONDS", "30")
	ttl, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid LEADERBOARD_CACHE_TTL_SECONDS value: %w", err)
	}
	cfg.LeaderboardCacheTTLSeconds = ttl

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// UsePostgres reports whether a PostgreSQL ledger is configured.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
