package stamp

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrInvalidTimestamp = errors.New("invalid timestamp")
	ErrInvalidInterval  = errors.New("invalid interval")
)

// invalidTimestampError returns an invalid timestamp error with a custom
// error message, which unwraps to ErrInvalidTimestamp.
func invalidTimestampError(message string) error {
	return fmt.Errorf("%w: %s", ErrInvalidTimestamp, message)
}

// IntervalError returns an error for the interval at the given 1-based
// position, which unwraps to ErrInvalidInterval and to cause, if any.
func IntervalError(index int, cause error) error {
	if cause == nil {
		return fmt.Errorf("%w #%d", ErrInvalidInterval, index)
	}
	return fmt.Errorf("%w #%d: %w", ErrInvalidInterval, index, cause)
}
