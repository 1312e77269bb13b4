package jwt

import (
	"time"
)

// Clock returns the current time. Engines read it once per operation.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// unixSeconds drops the sub-second part of t
func unixSeconds(t time.Time) int64 {
	return t.Unix()
}

// expiresAt returns the expiry timestamp for a token issued at issuedAt
func expiresAt(issuedAt time.Time, ttl time.Duration) int64 {
	return unixSeconds(issuedAt.Add(ttl))
}

func hasExpired(expiresAt int64, now time.Time) bool {
	return expiresAt < unixSeconds(now)
}
