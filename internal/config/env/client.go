package env

import (
	"fmt"
	"os"

	"jobnet_client/internal/config"

	"gopkg.in/yaml.v3"
)

const defaultPageLimit = 10

type clientYAML struct {
	Client struct {
		PageLimit int    `yaml:"page_limit"`
		LogLevel  string `yaml:"log_level"`
		LogFormat string `yaml:"log_format"`
	} `yaml:"client"`
}

type clientConfig struct {
	pageLimit int
	logLevel  string
	logFormat string
}

// NewClientConfigFromYAML reads client tunables from a yaml file. A missing
// file is not an error; defaults apply.
func NewClientConfigFromYAML(path string) (config.ClientConfig, error) {
	cfg := &clientConfig{
		pageLimit: defaultPageLimit,
		logLevel:  "info",
		logFormat: "console",
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read client config: %w", err)
	}

	var parsed clientYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse client config: %w", err)
	}

	if parsed.Client.PageLimit > 0 {
		cfg.pageLimit = parsed.Client.PageLimit
	}
	if parsed.Client.LogLevel != "" {
		cfg.logLevel = parsed.Client.LogLevel
	}
	if parsed.Client.LogFormat != "" {
		cfg.logFormat = parsed.Client.LogFormat
	}

	return cfg, nil
}

func (cfg *clientConfig) PageLimit() int {
	return cfg.pageLimit
}

func (cfg *clientConfig) LogLevel() string {
	return cfg.logLevel
}

func (cfg *clientConfig) LogFormat() string {
	return cfg.logFormat
}
