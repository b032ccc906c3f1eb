package config

import (
	"os"
	"strconv"

	"github.com/fliphawk/flipship-backend/internal/modules/pricing"
)

// Config is the process configuration, resolved once at startup. The
// markup percentage is fixed for the catalog instance's lifetime.
type Config struct {
	Port          string
	DatabaseURL   string
	MarkupPercent float64

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
}

// Load reads configuration from the environment, applying defaults for
// everything optional. DATABASE_URL left empty disables the archive.
func Load() Config {
	return Config{
		Port:          getEnv("APP_PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MarkupPercent: getEnvFloat("MARKUP_PERCENT", pricing.DefaultMarkupPercent),

		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
