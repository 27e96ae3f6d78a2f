package config

import (
	"os"
)

// Config holds the runtime configuration of the API server. Everything is
// optional; the defaults give a working local setup.
type Config struct {
	ServerPort string
	LogLevel   string
}

// Load reads configuration from the environment.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
