package core

import "errors"

var (
	// ErrEmpty is returned for empty or whitespace-only token strings
	ErrEmpty = errors.New("token is empty")

	// ErrSegmentCount is returned when a token does not split into exactly three segments
	ErrSegmentCount = errors.New("wrong segment count")
)
