package jwt

import (
	"sync"
	"time"
)

// Process-wide defaults used when no Config has been applied
const (
	DefaultHashKeyValue    = "TEMPKEY"
	DefaultTimeToLiveValue = 24 * time.Hour
	DefaultAlgorithmValue  = "HS256"
)

// Settings holds the hash key, time-to-live and algorithm applied when a
// caller does not provide them. It is safe for concurrent use; tokens read
// the values once, when they are created.
type Settings struct {
	mu         sync.RWMutex
	hashKey    string
	timeToLive time.Duration
	algorithm  string
}

// NewSettings returns settings holding the library defaults
func NewSettings() *Settings {
	return &Settings{
		hashKey:    DefaultHashKeyValue,
		timeToLive: DefaultTimeToLiveValue,
		algorithm:  DefaultAlgorithmValue,
	}
}

func (s *Settings) HashKey() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hashKey
}

func (s *Settings) SetHashKey(key string) {
	s.mu.Lock()
	s.hashKey = key
	s.mu.Unlock()
}

func (s *Settings) TimeToLive() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeToLive
}

func (s *Settings) SetTimeToLive(ttl time.Duration) {
	s.mu.Lock()
	s.timeToLive = ttl
	s.mu.Unlock()
}

func (s *Settings) Algorithm() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.algorithm
}

func (s *Settings) SetAlgorithm(algorithm string) {
	s.mu.Lock()
	s.algorithm = algorithm
	s.mu.Unlock()
}

// Snapshot returns all three values as one consistent Config
func (s *Settings) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Config{
		HashKey:    s.hashKey,
		TimeToLive: s.timeToLive,
		Algorithm:  s.algorithm,
	}
}

// Apply validates cfg and replaces all three values at once
func (s *Settings) Apply(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.hashKey = cfg.HashKey
	s.timeToLive = cfg.TimeToLive
	s.algorithm = cfg.Algorithm
	return nil
}

var defaultSettings = NewSettings()

// DefaultSettings returns the process-wide settings used by the
// package-level functions
func DefaultSettings() *Settings {
	return defaultSettings
}

// DefaultHashKey returns the key used to sign new tokens
func DefaultHashKey() string { return defaultSettings.HashKey() }

// SetDefaultHashKey changes the key used for tokens created from now on
func SetDefaultHashKey(key string) { defaultSettings.SetHashKey(key) }

// DefaultTimeToLive returns the lifetime given to headers built with a zero ttl
func DefaultTimeToLive() time.Duration { return defaultSettings.TimeToLive() }

// SetDefaultTimeToLive changes the lifetime given to headers built with a zero ttl
func SetDefaultTimeToLive(ttl time.Duration) { defaultSettings.SetTimeToLive(ttl) }

// DefaultAlgorithm returns the algorithm given to headers built without one
func DefaultAlgorithm() string { return defaultSettings.Algorithm() }

// SetDefaultAlgorithm changes the algorithm given to headers built without one
func SetDefaultAlgorithm(algorithm string) { defaultSettings.SetAlgorithm(algorithm) }
