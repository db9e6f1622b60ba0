package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
	// AllowAnonymousLocations restores the early behaviour where anyone
	// could add a location. Off by default; location creation then
	// requires a verified identity, like item creation.
	AllowAnonymousLocations bool
}

// Load loads configuration from a local .env file (if present) and
// environment variables. The token-signing secret has no fallback:
// refusing to start beats signing tokens with a known default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	return &Config{
		ServerPort:              port,
		DatabasePath:            getEnv("DATABASE_PATH", "./marketplace.db"),
		JWTSecret:               secret,
		TokenTTL:                ttl,
		AllowAnonymousLocations: getEnv("ALLOW_ANONYMOUS_LOCATIONS", "false") == "true",
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
