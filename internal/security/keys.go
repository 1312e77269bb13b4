package security

import (
	"bytes"
	"strings"
)

const minKeyLength = 16

var weakPatterns = [...]string{
	"password", "secret", "tempkey", "changeme", "default", "example",
	"qwerty", "letmein", "12345678", "abcdefgh", "admin", "test",
}

// IsWeakKey reports whether key is too short, too repetitive or built
// around a well-known placeholder.
func IsWeakKey(key []byte) bool {
	if len(key) < minKeyLength {
		return true
	}

	unique := make(map[byte]struct{}, len(key))
	for _, b := range key {
		unique[b] = struct{}{}
	}
	if len(unique)*10 < len(key)*3 {
		return true
	}

	lower := strings.ToLower(string(key))
	for _, pattern := range weakPatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	return isPeriodic(key)
}

// isPeriodic reports whether key is a short block repeated at least three times
func isPeriodic(key []byte) bool {
	for period := 1; period <= 4 && period*3 <= len(key); period++ {
		block := key[:period]
		repeated := true
		for i := period; i < len(key); i += period {
			end := min(i+period, len(key))
			if !bytes.Equal(key[i:end], block[:end-i]) {
				repeated = false
				break
			}
		}
		if repeated {
			return true
		}
	}
	return false
}
