package ports

import "errors"

// Standard application-level errors.
// Adapters and the normalizer wrap underlying failures with these so callers can use errors.Is.
var (
	// General Errors
	ErrInvalidRequest     = errors.New("invalid request parameters or format")
	ErrConfigurationError = errors.New("invalid or missing configuration")

	// Statement Errors
	ErrDataFormat   = errors.New("statement table has an unexpected structure")
	ErrTableMissing = errors.New("no table found in statement document")
	ErrCoercion     = errors.New("statement row field could not be parsed")

	// Analysis Conditions
	ErrInsufficientData = errors.New("not enough data points")
	ErrSingularSystem   = errors.New("regression system is singular")
)
