package jwt

import (
	"maps"
	"slices"
	"sync"

	"github.com/boenne/jwt/internal/signing"
)

// SignFunc signs input with key and returns the encoded signature.
// The input is the URL-escaped "header.payload" string of a token.
type SignFunc func(input, key string) (string, error)

// Registry maps algorithm names to sign functions.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]SignFunc
}

// NewRegistry returns a registry seeded with the builtin HS256 function
func NewRegistry() *Registry {
	builtin := signing.Builtin()
	funcs := make(map[string]SignFunc, len(builtin))
	for name, f := range builtin {
		funcs[name] = SignFunc(f)
	}
	return &Registry{funcs: funcs}
}

// Register adds a sign function for algorithm. Registering a name twice
// fails with ErrAlgorithmAlreadyRegistered and leaves the first entry in place.
func (r *Registry) Register(algorithm string, f SignFunc) error {
	if err := validateAlgorithmName(algorithm); err != nil {
		return err
	}
	if f == nil {
		return &AlgorithmError{Algorithm: algorithm, Err: ErrNilSignFunc}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[algorithm]; exists {
		return &AlgorithmError{Algorithm: algorithm, Err: ErrAlgorithmAlreadyRegistered}
	}
	r.funcs[algorithm] = f
	return nil
}

// Lookup returns the sign function for algorithm
func (r *Registry) Lookup(algorithm string) (SignFunc, error) {
	r.mu.RLock()
	f, ok := r.funcs[algorithm]
	r.mu.RUnlock()

	if !ok {
		return nil, &AlgorithmError{Algorithm: algorithm, Err: ErrUnsupportedAlgorithm}
	}
	return f, nil
}

// Has reports whether algorithm is registered
func (r *Registry) Has(algorithm string) bool {
	_, err := r.Lookup(algorithm)
	return err == nil
}

// Algorithms returns the registered names in sorted order
func (r *Registry) Algorithms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.funcs))
}

// HMACSignFunc returns a sign function for an HMAC algorithm (HS256, HS384
// or HS512) with the same encoding as the builtin HS256, ready to Register.
func HMACSignFunc(algorithm string) (SignFunc, error) {
	f, err := signing.Resolve(algorithm)
	if err != nil {
		return nil, &AlgorithmError{Algorithm: algorithm, Err: ErrUnsupportedAlgorithm}
	}
	return SignFunc(f), nil
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by the
// package-level functions. Register additional algorithms at startup.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// RegisterSigningFunc registers f for algorithm in the default registry
func RegisterSigningFunc(algorithm string, f SignFunc) error {
	return defaultRegistry.Register(algorithm, f)
}

// SigningFunc looks up algorithm in the default registry
func SigningFunc(algorithm string) (SignFunc, error) {
	return defaultRegistry.Lookup(algorithm)
}
