package jwt

import (
	"time"
)

// TokenType is the value of the typ header field
const TokenType = "JWT"

// Header carries the algorithm and validity window of a token.
// Field order is the serialization order the signature commits to.
type Header struct {
	Algorithm string `json:"alg,omitempty"` // Name of a registered signing function
	ExpiresAt int64  `json:"expat"`         // Expiry, Unix seconds
	IssuedAt  int64  `json:"iat"`           // Issue time, Unix seconds
	Type      string `json:"typ"`           // Forced to "JWT" when a token is created
}

// NewHeader builds a header issued now using the process-wide defaults.
// A zero ttl selects DefaultTimeToLive and an empty algorithm selects
// DefaultAlgorithm. Negative ttls produce headers that have already expired.
func NewHeader(ttl time.Duration, algorithm string) Header {
	return defaultEngine().NewHeader(ttl, algorithm)
}

// HasExpired reports whether ExpiresAt lies before the current second
func (h Header) HasExpired() bool {
	return hasExpired(h.ExpiresAt, utcNow())
}

// Payload carries the claims of a token
type Payload struct {
	Subject string `json:"sub,omitempty"` // Identifier of the token holder
}

// NewPayload returns a payload for subject
func NewPayload(subject string) Payload {
	return Payload{Subject: subject}
}
