package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	LogLevel string `json:"log_level"`
	Version  string `json:"version"`

	// Strategy selects the initial processing strategy for the demo binary.
	Strategy string `json:"strategy"`

	// Simulated processing delays per strategy. Urgent has none by contract.
	StandardDelay   time.Duration `json:"standard_delay"`
	BackgroundDelay time.Duration `json:"background_delay"`
}

// LoadConfig loads configuration from environment variables with sensible defaults
func LoadConfig() (*Config, error) {
	cfg := &Config{
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		Version:         getEnvString("VERSION", "1.0.0"),
		Strategy:        getEnvString("STRATEGY", "standard"),
		StandardDelay:   getEnvDuration("STANDARD_DELAY", 1*time.Second),
		BackgroundDelay: getEnvDuration("BACKGROUND_DELAY", 100*time.Millisecond),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Helper functions for environment variable parsing
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// validate performs basic validation of the configuration
func (c *Config) validate() error {
	// Validate and normalize LogLevel
	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
	}
	upperLevel := strings.ToUpper(strings.TrimSpace(c.LogLevel))
	if !validLevels[upperLevel] {
		return fmt.Errorf("invalid log level '%s': must be DEBUG, INFO, WARN, or ERROR", c.LogLevel)
	}
	c.LogLevel = upperLevel

	// Validate Version
	if strings.TrimSpace(c.Version) == "" {
		return fmt.Errorf("version cannot be empty")
	}
	c.Version = strings.TrimSpace(c.Version)

	// Validate and normalize Strategy
	validStrategies := map[string]bool{
		"urgent": true, "standard": true, "background": true,
	}
	lowerStrategy := strings.ToLower(strings.TrimSpace(c.Strategy))
	if !validStrategies[lowerStrategy] {
		return fmt.Errorf("invalid strategy '%s': must be urgent, standard, or background", c.Strategy)
	}
	c.Strategy = lowerStrategy

	// Validate delays
	if c.StandardDelay < 0 {
		return fmt.Errorf("invalid standard delay %v: must not be negative", c.StandardDelay)
	}
	if c.BackgroundDelay < 0 {
		return fmt.Errorf("invalid background delay %v: must not be negative", c.BackgroundDelay)
	}
	if c.StandardDelay > time.Minute {
		return fmt.Errorf("invalid standard delay %v: must not exceed 1 minute", c.StandardDelay)
	}
	if c.BackgroundDelay > time.Minute {
		return fmt.Errorf("invalid background delay %v: must not exceed 1 minute", c.BackgroundDelay)
	}

	return nil
}
