package generation

import "errors"

// Common errors returned by the generation package and its backends
var (
	// ErrCredentialAbsent is returned when no credential is configured and
	// therefore no provider client can be created
	ErrCredentialAbsent = errors.New("no credential configured for the generative backend")

	// ErrCallFailure is returned for network or provider errors and non-success responses
	ErrCallFailure = errors.New("generative backend call failed")

	// ErrExtractionFailure is returned when a response was received but does not
	// decode to the declared schema or lacks the expected content
	ErrExtractionFailure = errors.New("generative backend response could not be extracted")

	// ErrEmptyInput is returned when a keyword or prompt is empty and the
	// configured policy rejects empty input
	ErrEmptyInput = errors.New("input cannot be empty")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)
