package matchdex

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from API error codes.
// Use errors.Is() to check.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrProviderUnhealthy = errors.New("upstream provider error")
)

// APIError carries the raw error envelope returned by the service.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("matchdex: %s (%s, http %d)", e.Message, e.Code, e.StatusCode)
}

// Unwrap maps well-known API codes to sentinel errors.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case "validation_failed", "bad_request":
		return ErrValidation
	case "not_found":
		return ErrNotFound
	case "embedding_provider_error", "generation_provider_error":
		return ErrProviderUnhealthy
	default:
		return nil
	}
}
