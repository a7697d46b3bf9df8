package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings shared by every subcommand.
type Config struct {
	File     string
	Theme    string
	LogLevel string
}

// Load reads an optional .env from the working directory, then the
// environment. Variables already set in the environment win over .env.
func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		File:     getEnv("RESTAURANT_FILE", "restaurant.json"),
		Theme:    strings.ToLower(getEnv("RESTAURANT_THEME", "classic")),
		LogLevel: strings.ToLower(getEnv("RESTAURANT_LOG_LEVEL", "warn")),
	}, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
