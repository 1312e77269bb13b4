package jwt

import (
	"time"
)

// The package-level functions below use an Engine bound to DefaultRegistry
// and DefaultSettings, so registrations and default changes made through
// the package are visible to them immediately.

var stdEngine = NewEngine()

func defaultEngine() *Engine {
	return stdEngine
}

// Create signs header and payload into a new Token using the default
// hash key and registry.
func Create(header Header, payload Payload) (Token, error) {
	return stdEngine.Create(header, payload)
}

// Parse decodes a token string. Failures match ErrMalformedToken.
func Parse(tokenString string) (Token, error) {
	return stdEngine.Parse(tokenString)
}

// Validate reports why tokenString is not valid, or nil if it is
func Validate(tokenString string, checkExpiration bool) error {
	return stdEngine.Validate(tokenString, checkExpiration)
}

// IsValid reports whether tokenString is valid. It never fails.
func IsValid(tokenString string, checkExpiration bool) bool {
	return stdEngine.IsValid(tokenString, checkExpiration)
}

// Issue creates and encodes a token for subject. A zero ttl selects
// DefaultTimeToLive.
func Issue(subject string, ttl time.Duration) (string, error) {
	return stdEngine.Issue(subject, ttl)
}

// Configure applies cfg to the process-wide settings
func Configure(cfg Config) error {
	return stdEngine.Configure(cfg)
}
