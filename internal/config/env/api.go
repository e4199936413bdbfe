package env

import (
	"errors"
	"fmt"
	"os"
	"time"

	"jobnet_client/internal/config"
)

const (
	apiBaseURLEnvName = "API_BASE_URL"
	apiTimeoutEnvName = "API_TIMEOUT"
)

const defaultAPITimeout = 30 * time.Second

type apiConfig struct {
	baseURL string
	timeout time.Duration
}

func NewAPIConfig() (config.APIConfig, error) {
	baseURL := os.Getenv(apiBaseURLEnvName)
	if len(baseURL) == 0 {
		return nil, errors.New("api base url not found")
	}

	timeout := defaultAPITimeout
	if raw := os.Getenv(apiTimeoutEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid api timeout: %w", err)
		}
		timeout = parsed
	}

	return &apiConfig{
		baseURL: baseURL,
		timeout: timeout,
	}, nil
}

func (cfg *apiConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg *apiConfig) Timeout() time.Duration {
	return cfg.timeout
}
