package core

import (
	"fmt"
	"strings"
)

// SegmentCount is the number of dot separated parts of a token
const SegmentCount = 3

const separator = "."

// EncodeSegment turns canonical JSON into a base64 segment
func EncodeSegment(json string) string {
	return Base64Encode(UTF8Encode(json))
}

// DecodeSegment reverses EncodeSegment for a segment read from a token
// string and returns the JSON in canonical form.
func DecodeSegment(segment string) (string, error) {
	unescaped, err := URLDecode(segment)
	if err != nil {
		return "", err
	}

	raw, err := Base64Decode(unescaped)
	if err != nil {
		return "", err
	}

	text, err := UTF8Decode(raw)
	if err != nil {
		return "", err
	}

	return NormalizeJSON(text)
}

// SplitSegments splits a token on '.' and drops empty entries
func SplitSegments(token string) []string {
	parts := strings.Split(token, separator)
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// SigningInput is the string handed to a sign function
func SigningInput(headerSegment, payloadSegment string) string {
	return URLEncode(headerSegment + separator + payloadSegment)
}

// Assemble joins the three parts into the final token string
func Assemble(headerSegment, payloadSegment, signature string) string {
	return URLEncode(headerSegment + separator + payloadSegment + separator + signature)
}

// Parts holds a decoded token: canonical header and payload JSON plus the
// signature as it appeared in the input.
type Parts struct {
	Header    string
	Payload   string
	Signature string
}

// Parse decodes a token string into its parts
func Parse(token string) (*Parts, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrEmpty
	}

	segments := SplitSegments(token)
	if len(segments) != SegmentCount {
		return nil, fmt.Errorf("%w: got %d segments", ErrSegmentCount, len(segments))
	}

	header, err := DecodeSegment(segments[0])
	if err != nil {
		return nil, fmt.Errorf("failed to decode header: %w", err)
	}

	payload, err := DecodeSegment(segments[1])
	if err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	signature, err := URLDecode(segments[2])
	if err != nil {
		return nil, fmt.Errorf("failed to decode signature: %w", err)
	}

	return &Parts{Header: header, Payload: payload, Signature: signature}, nil
}
