package signing

import (
	"errors"
	"fmt"
)

// Func signs input with key and returns the encoded signature
type Func func(input, key string) (string, error)

// BuiltinAlgorithm is the algorithm every registry is seeded with
const BuiltinAlgorithm = "HS256"

var errNotHMAC = errors.New("not an HMAC signing method")

// Builtin returns the sign functions a fresh registry starts with
func Builtin() map[string]Func {
	return map[string]Func{
		BuiltinAlgorithm: HS256,
	}
}

// Resolve returns the HMAC sign function for a JOSE algorithm name
func Resolve(alg string) (Func, error) {
	f, err := HMAC(alg)
	if err != nil {
		return nil, fmt.Errorf("unsupported signing method %s: %w", alg, err)
	}
	return f, nil
}
