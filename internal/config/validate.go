package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.API.validate(); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	if err := c.Retry.validate(); err != nil {
		return fmt.Errorf("retry: %w", err)
	}

	if c.Mock.Latency < 0 {
		return fmt.Errorf("mock: latency must be >= 0 (got %v)", c.Mock.Latency)
	}
	if len(c.Mock.TokenSecret) < 32 {
		return fmt.Errorf("mock: token_secret must be at least 32 characters (got %d)", len(c.Mock.TokenSecret))
	}

	return nil
}

func (a *APIConfig) validate() error {
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", a.Timeout)
	}

	a.BaseURL = strings.TrimRight(strings.TrimSpace(a.BaseURL), "/")
	if a.BaseURL == "" {
		return nil
	}

	u, err := url.Parse(a.BaseURL)
	if err != nil {
		return fmt.Errorf("base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url must use http or https (got %q)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("base_url must include a host")
	}

	return nil
}

func (r *RetryConfig) validate() error {
	if r.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", r.MaxAttempts)
	}
	if r.BaseDelay < 0 {
		return fmt.Errorf("base_delay must be >= 0 (got %v)", r.BaseDelay)
	}
	return nil
}
