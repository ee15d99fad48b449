package config

import (
	"strings"
	"time"
)

// Defaults for durations where zero is a valid setting. Load sets them on the
// struct before reading so an explicit zero survives.
const (
	DefaultRetryBaseDelay = time.Second
	DefaultMockLatency    = 300 * time.Millisecond
)

// Config is the root application configuration.
type Config struct {
	API     APIConfig     `yaml:"api"`
	Retry   RetryConfig   `yaml:"retry"`
	Mock    MockConfig    `yaml:"mock"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// APIConfig holds the REST backend settings.
type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8000"`
	Timeout time.Duration `yaml:"timeout"  env:"API_TIMEOUT"  env-default:"10s"`
	UseMock bool          `yaml:"use_mock" env:"API_USE_MOCK" env-default:"false"`
}

// MockMode reports whether the client should skip the network entirely.
// An empty base URL forces mock mode.
func (c APIConfig) MockMode() bool {
	return c.UseMock || strings.TrimSpace(c.BaseURL) == ""
}

// RetryConfig holds the transport-failure retry policy.
type RetryConfig struct {
	MaxAttempts int           `yaml:"max_attempts" env:"RETRY_MAX_ATTEMPTS" env-default:"3"`
	BaseDelay   time.Duration `yaml:"base_delay"   env:"RETRY_BASE_DELAY"`
}

// MockConfig holds settings for the in-memory mock backend.
type MockConfig struct {
	Latency     time.Duration `yaml:"latency"      env:"MOCK_LATENCY"`
	TokenSecret string        `yaml:"token_secret" env:"MOCK_TOKEN_SECRET" env-default:"cinefluent-mock-signing-key-change-me"`
	TokenTTL    time.Duration `yaml:"token_ttl"    env:"MOCK_TOKEN_TTL"    env-default:"24h"`
}

// StorageConfig holds durable local state settings.
// An empty Path keeps state in memory only.
type StorageConfig struct {
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"cinefluent.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
