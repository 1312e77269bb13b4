package jwt

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/boenne/jwt/internal/security"
)

// Config represents the signing defaults of an Engine
type Config struct {
	// HashKey is the key handed to sign functions
	HashKey string `yaml:"hash_key" json:"hash_key"`

	// TimeToLive is the lifetime of headers built with a zero ttl
	TimeToLive time.Duration `yaml:"time_to_live" json:"time_to_live"`

	// Algorithm names the sign function of headers built without one
	Algorithm string `yaml:"algorithm" json:"algorithm"`

	// RequireStrongKey rejects hash keys that fail the weak key checks
	RequireStrongKey bool `yaml:"require_strong_key" json:"require_strong_key"`
}

// DefaultConfig returns the library defaults
func DefaultConfig() Config {
	return Config{
		HashKey:          DefaultHashKeyValue,
		TimeToLive:       DefaultTimeToLiveValue,
		Algorithm:        DefaultAlgorithmValue,
		RequireStrongKey: false,
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}

	if c.HashKey == "" {
		return fmt.Errorf("%w: hash key must not be empty", ErrInvalidConfig)
	}

	if c.RequireStrongKey && security.IsWeakKey([]byte(c.HashKey)) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrWeakHashKey)
	}

	if c.TimeToLive == 0 {
		return fmt.Errorf("%w: time to live must not be zero", ErrInvalidConfig)
	}

	if strings.TrimSpace(c.Algorithm) == "" {
		return fmt.Errorf("%w: algorithm must not be empty", ErrInvalidConfig)
	}

	return nil
}

// ParseConfig reads a YAML document. Fields it leaves out keep their
// DefaultConfig values. Durations are written like "24h" or "15m".
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}
