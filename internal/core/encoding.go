package core

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrDecode is returned for any input the codec cannot decode
var ErrDecode = errors.New("decode failed")

// Base64Encode encodes data with the standard padded alphabet
func Base64Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Base64Decode decodes standard padded base64
func Base64Decode(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrDecode, err)
	}
	return data, nil
}

// URLEncode percent-encodes every byte outside the RFC 3986 unreserved set
func URLEncode(s string) string {
	// QueryEscape leaves exactly the unreserved set alone, except that it
	// writes spaces as '+'.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// URLDecode reverses URLEncode. A literal '+' is kept as is.
func URLDecode(s string) (string, error) {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return "", fmt.Errorf("%w: invalid escape sequence: %v", ErrDecode, err)
	}
	return decoded, nil
}

// UTF8Encode returns the UTF-8 bytes of s
func UTF8Encode(s string) []byte {
	return []byte(s)
}

// UTF8Decode converts b to text, rejecting invalid UTF-8
func UTF8Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: invalid utf-8", ErrDecode)
	}
	return string(b), nil
}

// MarshalCanonical serializes v as compact JSON without HTML escaping.
// Struct fields keep declaration order; map keys are sorted.
func MarshalCanonical(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// NormalizeJSON parses a JSON object and re-serializes it in canonical form
func NormalizeJSON(s string) (string, error) {
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return "", fmt.Errorf("%w: invalid JSON: %v", ErrDecode, err)
	}
	if obj == nil {
		return "", fmt.Errorf("%w: JSON value is not an object", ErrDecode)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: trailing data after JSON object", ErrDecode)
	}

	return MarshalCanonical(obj)
}

// Canonicalize serializes v into the same form NormalizeJSON produces, so
// JSON written on create matches the JSON recomputed after parsing. Invalid
// UTF-8 in strings ends up as a literal U+FFFD on both paths.
func Canonicalize(v any) (string, error) {
	raw, err := MarshalCanonical(v)
	if err != nil {
		return "", err
	}
	return NormalizeJSON(raw)
}
