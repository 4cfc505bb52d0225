package message

import "errors"

// Errors
var (
	ErrInvalidMessage      = errors.New("invalid message")
	ErrInvalidDistribution = errors.New("invalid letter distribution")
)
