package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// GitHub Models inference
	GitHubToken string
	Model       string
	BaseURL     string // empty means the default GitHub Models endpoint

	// Game settings
	MaxRounds  int
	TrendCount int

	// Trends
	TrendsGeo string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken: getEnv("GITHUB_TOKEN", ""),
		Model:       getEnv("VIRALFAIL_MODEL", "openai/gpt-4.1-mini"),
		BaseURL:     getEnv("VIRALFAIL_BASE_URL", ""),
		TrendsGeo:   getEnv("TRENDS_GEO", "US"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	maxRounds, err := strconv.Atoi(getEnv("VIRALFAIL_MAX_ROUNDS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid VIRALFAIL_MAX_ROUNDS: %w", err)
	}
	if maxRounds < 1 {
		return nil, fmt.Errorf("VIRALFAIL_MAX_ROUNDS must be at least 1")
	}
	cfg.MaxRounds = maxRounds

	trendCount, err := strconv.Atoi(getEnv("TREND_COUNT", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid TREND_COUNT: %w", err)
	}
	if trendCount < 1 {
		return nil, fmt.Errorf("TREND_COUNT must be at least 1")
	}
	cfg.TrendCount = trendCount

	return cfg, nil
}

// ValidateForPlay checks configuration needed to run a game session.
func (c *Config) ValidateForPlay() error {
	if c.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN is required: create a .env file with a GitHub PAT (get one at https://github.com/settings/tokens)")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
