package domain

import "errors"

// Domain errors represent input and usage failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUsage indicates the command was invoked with insufficient arguments.
	ErrUsage = errors.New("usage error")

	// ErrFormat indicates an input document or table could not be parsed.
	// Format errors are fatal for the invocation and never retried.
	ErrFormat = errors.New("format error")
)
