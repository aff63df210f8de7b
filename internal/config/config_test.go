package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Empty(t, cfg.GitHubToken)
		assert.Equal(t, "openai/gpt-4.1-mini", cfg.Model)
		assert.Empty(t, cfg.BaseURL)
		assert.Equal(t, 3, cfg.MaxRounds)
		assert.Equal(t, 10, cfg.TrendCount)
		assert.Equal(t, "US", cfg.TrendsGeo)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("GITHUB_TOKEN", "ghp_test")
		os.Setenv("VIRALFAIL_MODEL", "openai/gpt-4o")
		os.Setenv("VIRALFAIL_MAX_ROUNDS", "5")
		os.Setenv("TRENDS_GEO", "GB")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "ghp_test", cfg.GitHubToken)
		assert.Equal(t, "openai/gpt-4o", cfg.Model)
		assert.Equal(t, 5, cfg.MaxRounds)
		assert.Equal(t, "GB", cfg.TrendsGeo)
	})

	t.Run("invalid max rounds", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("VIRALFAIL_MAX_ROUNDS", "notanumber")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "VIRALFAIL_MAX_ROUNDS")
	})

	t.Run("zero max rounds rejected", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("VIRALFAIL_MAX_ROUNDS", "0")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("invalid trend count", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("TREND_COUNT", "-2")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "TREND_COUNT")
	})
}

func TestConfig_ValidateForPlay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{GitHubToken: "ghp_test"}
		assert.NoError(t, cfg.ValidateForPlay())
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.ValidateForPlay()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "GITHUB_TOKEN")
	})
}
