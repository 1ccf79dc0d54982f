package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidConfig indicates missing or malformed configuration.
	// It is reported before any remote call is made.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMissingCredentials indicates no credential file path is configured.
	ErrMissingCredentials = errors.New("credentials file not configured")

	// ErrMissingTarget indicates neither a document ID nor a folder ID is configured.
	ErrMissingTarget = errors.New("neither document ID nor folder ID configured")

	// ErrNoTagMapping indicates no usable person to tag mapping is configured.
	ErrNoTagMapping = errors.New("no tag mapping configured")

	// ErrInvalidTagMapping indicates a malformed tag mapping.
	ErrInvalidTagMapping = errors.New("invalid tag mapping")

	// ErrInvalidInput indicates a local file that cannot be parsed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a local file type no normaliser handles.
	ErrUnsupportedFormat = errors.New("unsupported format")
)
