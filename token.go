package jwt

import (
	"encoding/json"
	"fmt"

	"github.com/boenne/jwt/internal/core"
)

// Token is an immutable signed token. It owns the canonical JSON of its
// header and payload, so encoding it repeatedly yields the same string.
type Token struct {
	header    string
	payload   string
	signature string
}

// HeaderJSON returns the canonical header JSON
func (t Token) HeaderJSON() string {
	return t.header
}

// PayloadJSON returns the canonical payload JSON
func (t Token) PayloadJSON() string {
	return t.payload
}

// Signature returns the signature without URL escaping
func (t Token) Signature() string {
	return t.signature
}

// Encode returns the URL-safe three-segment form of the token.
// It fails with ErrEmptyToken for the zero Token.
func (t Token) Encode() (string, error) {
	if t.header == "" {
		return "", fmt.Errorf("%w: token contains no header", ErrEmptyToken)
	}
	if t.payload == "" {
		return "", fmt.Errorf("%w: token contains no payload", ErrEmptyToken)
	}
	return core.Assemble(core.EncodeSegment(t.header), core.EncodeSegment(t.payload), t.signature), nil
}

// String returns the encoded token, or "" for the zero Token.
// Use Encode to get the error instead.
func (t Token) String() string {
	s, err := t.Encode()
	if err != nil {
		return ""
	}
	return s
}

// Header decodes the header JSON
func (t Token) Header() (Header, error) {
	return HeaderAs[Header](t)
}

// Payload decodes the payload JSON
func (t Token) Payload() (Payload, error) {
	return PayloadAs[Payload](t)
}

// HasExpired reports whether the header's expiry lies before the current
// wall-clock second. A header that cannot be decoded counts as expired.
// Engine.HasExpired checks against the engine's clock instead.
func (t Token) HasExpired() bool {
	h, err := t.Header()
	if err != nil {
		return true
	}
	return h.HasExpired()
}

// HeaderAs decodes the header JSON into T, which should declare the alg,
// expat, iat and typ fields it cares about.
func HeaderAs[T any](t Token) (T, error) {
	return decodeJSON[T](t.header, "header")
}

// PayloadAs decodes the payload JSON into T, which should declare the
// claims it cares about.
func PayloadAs[T any](t Token) (T, error) {
	return decodeJSON[T](t.payload, "payload")
}

func decodeJSON[T any](data, part string) (T, error) {
	var v T
	if data == "" {
		return v, fmt.Errorf("%w: token contains no %s", ErrEmptyToken, part)
	}
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return v, fmt.Errorf("failed to decode %s into %T: %w", part, v, err)
	}
	return v, nil
}
