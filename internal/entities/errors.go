// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrIdentityNotFound is returned when the source profile lookup misses.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrSourceUnavailable signals any other data-fetch failure.
	ErrSourceUnavailable = errors.New("source unavailable")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
)
