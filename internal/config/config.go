package config

import (
	"os"
)

// Config holds everything the API reads from the environment.
type Config struct {
	Port        string
	DatabaseDSN string
}

// Load reads the environment, falling back to local-dev defaults.
// main calls godotenv.Load() first so a .env file works too.
func Load() Config {
	return Config{
		Port:        getString("PORT", "8080"),
		DatabaseDSN: getString("DATABASE_DSN", "host=localhost user=postgres password=password dbname=kasijobz port=5432 sslmode=disable"),
	}
}

// getString retrieves an environment variable or returns a fallback when unset.
func getString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
