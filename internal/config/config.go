// Package config provides configuration for the advisor engine.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the engine configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// Database
	DatabaseURL string

	// Generation service
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnvInt("PORT", 8080),
		DatabaseURL: getEnv("DATABASE_URL", "file:advisor.db?cache=shared&mode=rwc&_journal_mode=WAL"),
		LLMBaseURL:  getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMAPIKey:   getEnv("LLM_API_KEY", ""),
		LLMModel:    getEnv("LLM_MODEL", "gpt-4"),
		LLMTimeout:  time.Duration(getEnvInt("LLM_TIMEOUT_MS", 60000)) * time.Millisecond,
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
