package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/trendpulse/internal/api/shared"
	"github.com/phrazzld/trendpulse/internal/credential"
	"github.com/phrazzld/trendpulse/internal/domain"
	"github.com/phrazzld/trendpulse/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad request errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidImageSize),
		errors.Is(err, domain.ErrInvalidLocation),
		errors.Is(err, generation.ErrEmptyInput),
		errors.Is(err, credential.ErrEmptyKey),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	case errors.Is(err, credential.ErrSelectionUnsupported):
		return http.StatusNotImplemented

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrInvalidImageSize):
		return "Invalid size: must be one of 1K, 2K, 4K"

	case errors.Is(err, domain.ErrInvalidLocation):
		return "Invalid location: lat must be within -90..90 and lng within -180..180"

	case errors.Is(err, generation.ErrEmptyInput):
		return "Input cannot be empty"

	case errors.Is(err, credential.ErrEmptyKey):
		return "API key cannot be empty"

	case errors.Is(err, credential.ErrSelectionUnsupported):
		return "Credential selection is not supported"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	// Example format: "Key: 'PlanRequest.Keyword' Error:Field validation for 'Keyword' failed on the 'max' tag"
	if strings.Contains(errMsg, "Field validation") {
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max":
		return "too long"
	case "gte", "lte":
		return "out of range"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
