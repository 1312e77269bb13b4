package jwt

import (
	"fmt"
	"strings"
)

const maxAlgorithmLength = 64

func validateAlgorithmName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &AlgorithmError{Algorithm: name, Err: fmt.Errorf("%w: name is empty", ErrInvalidAlgorithmName)}
	}

	if len(name) > maxAlgorithmLength {
		return &AlgorithmError{
			Algorithm: name,
			Err:       fmt.Errorf("%w: too long: maximum %d characters", ErrInvalidAlgorithmName, maxAlgorithmLength),
		}
	}

	for i := 0; i < len(name); i++ {
		if c := name[i]; c < 32 || c == 127 {
			return &AlgorithmError{
				Algorithm: name,
				Err:       fmt.Errorf("%w: contains control character", ErrInvalidAlgorithmName),
			}
		}
	}

	return nil
}
