package domain

import "errors"

var (
	// ErrValidation signals a malformed or incomplete request.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrZeroVector signals a zero-norm vector in a similarity computation.
	ErrZeroVector = errors.New("zero-norm vector")
	// ErrDimensionMismatch signals vectors of different lengths.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationProviderError signals an LLM provider failure.
	ErrGenerationProviderError = errors.New("generation provider error")
)
