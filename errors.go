package jwt

import (
	"errors"
	"fmt"
)

// Predefined errors for token and registry operations
var (
	// Token errors
	ErrMalformedToken    = errors.New("malformed token")
	ErrEmptyToken        = errors.New("empty token: token has no header or payload")
	ErrSignatureMismatch = errors.New("token does not match its recomputed signature")
	ErrTokenExpired      = errors.New("token has expired")

	// Algorithm errors
	ErrUnsupportedAlgorithm       = errors.New("unsupported algorithm")
	ErrAlgorithmAlreadyRegistered = errors.New("algorithm already registered")
	ErrInvalidAlgorithmName       = errors.New("invalid algorithm name")
	ErrNilSignFunc                = errors.New("sign function is nil")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrWeakHashKey   = errors.New("hash key is too weak")
)

// Reasons reported by FormatError
const (
	ReasonEmpty          = "empty"
	ReasonSegmentCount   = "wrong segment count"
	ReasonInvalidContent = "invalid content"
)

// FormatError reports a token string that could not be decoded.
// It matches ErrMalformedToken with errors.Is.
type FormatError struct {
	Reason string // One of the Reason constants
	Err    error  // Underlying decode error, if any
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%v: %s", ErrMalformedToken, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrMalformedToken
}

// AlgorithmError reports a registry failure for a named algorithm
type AlgorithmError struct {
	Algorithm string
	Err       error
}

func (e *AlgorithmError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Algorithm)
}

func (e *AlgorithmError) Unwrap() error {
	return e.Err
}
