// ABOUTME: Centralized configuration for the nutrition tracker
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the nutrition system
type Config struct {
	// Charm settings
	CharmHost   string
	CharmDBName string
	AutoSync    bool

	// OpenAI settings
	OpenAIKey  string
	ChatModel  string
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration

	// Storage settings
	DBPath     string
	CorpusPath string

	// Planning settings
	RetrievalTopK  int
	CalorieFloor   float64
	ScaleThreshold float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		CharmHost:      getEnv("CHARM_HOST", "cloud.charm.sh"),
		CharmDBName:    getEnv("CHARM_DB", "nutritrack"),
		AutoSync:       getEnvBool("CHARM_AUTO_SYNC", true),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("NUTRITRACK_OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		DBPath:         os.Getenv("NUTRITRACK_DB_PATH"),
		CorpusPath:     getEnv("NUTRITRACK_CORPUS", "data/recipes.csv"),
		RetrievalTopK:  getEnvInt("NUTRITRACK_TOP_K", 6),
		CalorieFloor:   getEnvFloat("NUTRITRACK_CALORIE_FLOOR", 1200),
		ScaleThreshold: getEnvFloat("NUTRITRACK_SCALE_THRESHOLD", 0.8),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ScaleThreshold < 0 || c.ScaleThreshold > 1 {
		return fmt.Errorf("NUTRITRACK_SCALE_THRESHOLD must be 0-1, got %f", c.ScaleThreshold)
	}
	if c.CalorieFloor < 0 {
		return fmt.Errorf("NUTRITRACK_CALORIE_FLOOR must be non-negative, got %f", c.CalorieFloor)
	}
	if c.RetrievalTopK < 1 {
		return fmt.Errorf("NUTRITRACK_TOP_K must be at least 1, got %d", c.RetrievalTopK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
