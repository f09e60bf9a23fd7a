package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the service configuration, sourced from the environment.
type Config struct {
	Port          string
	GinMode       string
	DataDir       string
	AuditWorkers  int
	RateLimit     float64
	RateLimitSize float64
}

// Load reads .env files when present, then the environment.
func Load() *Config {
	// Prefer a development override, then the regular .env.
	if err := godotenv.Load(".env.development"); err != nil {
		_ = godotenv.Load()
	}

	return &Config{
		Port:          getEnv("PORT", "8082"),
		GinMode:       getEnv("GIN_MODE", "release"),
		DataDir:       getEnv("DATA_DIR", "data"),
		AuditWorkers:  getEnvInt("AUDIT_WORKERS", 8),
		RateLimit:     getEnvFloat("RATE_LIMIT", 2),
		RateLimitSize: getEnvFloat("RATE_LIMIT_BUCKET", 5),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
