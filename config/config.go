package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment variables
type Config struct {
	PGURL    string
	AVKey    string
	Port     string
	LogLevel string
}

// Load reads configuration from a .env file (if present) and the
// environment. Values already set in the environment win over the file.
//
// PG_URL and AV_KEY are both optional: they select the holdings backend.
// With PG_URL set, fund data comes from Postgres; otherwise with AV_KEY
// set, from Alpha Vantage; with neither, from the built-in static dataset.
func Load() (*Config, error) {
	// Best effort: absence of a .env file is not an error.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		PGURL:    os.Getenv("PG_URL"),
		AVKey:    os.Getenv("AV_KEY"),
		Port:     port,
		LogLevel: os.Getenv("LOG_LEVEL"),
	}, nil
}
