package security

import (
	"crypto/subtle"
	"runtime"
)

// EqualStrings compares two strings in time independent of where they differ
func EqualStrings(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// ZeroBytes overwrites data with zeros
func ZeroBytes(data []byte) {
	if len(data) == 0 {
		return
	}
	clear(data)
	runtime.KeepAlive(data)
}
