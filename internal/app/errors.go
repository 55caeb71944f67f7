package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrRequestInFlight = errors.New("a submission is already in progress")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoResult        = errors.New("no result available")
)
