package groom

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the grooming service settings, loaded from the environment.
// Without an API key the service degrades to local grooming (unless that is
// disabled too).
type Config struct {
	HFAPIKey           string        `envconfig:"HF_API_KEY"`
	BaseURL            string        `envconfig:"HF_BASE_URL" default:"https://api-inference.huggingface.co/models/"`
	Model              string        `envconfig:"HF_MODEL" default:"mistralai/Mistral-7B-Instruct-v0.2"`
	Timeout            time.Duration `envconfig:"AI_SERVICE_TIMEOUT" default:"30s"`
	MaxRetries         int           `envconfig:"AI_MAX_RETRIES" default:"2"`
	RetryDelay         time.Duration `envconfig:"AI_RETRY_DELAY" default:"2s"`
	ExponentialBackoff bool          `envconfig:"AI_EXPONENTIAL_BACKOFF" default:"true"`
	FallbackEnabled    bool          `envconfig:"AI_FALLBACK_ENABLED" default:"true"`
}

// LoadConfig reads the configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load grooming config: %w", err)
	}
	return cfg, nil
}

// HasKey reports whether a HuggingFace API key is configured.
func (c Config) HasKey() bool {
	return strings.TrimSpace(c.HFAPIKey) != ""
}

// Validate checks the configuration and returns a short status message
// describing the mode the service will run in.
func (c Config) Validate() (string, error) {
	if !c.HasKey() {
		if !c.FallbackEnabled {
			return "", errors.New("no AI service key configured and fallback is disabled")
		}
		return "fallback mode: basic grooming only", nil
	}
	if c.Timeout <= 0 {
		return "", errors.New("service timeout must be greater than zero")
	}
	if c.MaxRetries < 0 {
		return "", errors.New("max retries must not be negative")
	}
	return "huggingface grooming enabled", nil
}
