// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides the retrieval and scoring error taxonomy used for fallback decisions

package errors

import (
	"errors"
	"fmt"
)

// RetrievalKind classifies a failed retrieval attempt.
type RetrievalKind string

const (
	// RateLimited means the platform throttled us; the attempt may be retried.
	RateLimited RetrievalKind = "rate_limited"

	// Blocked means the platform refused the request (403, captcha, bot wall).
	// Retrying the same tier is pointless; the chain advances instead.
	Blocked RetrievalKind = "blocked"

	// Timeout means the attempt did not complete within its deadline.
	Timeout RetrievalKind = "timeout"

	// ParseError means the platform responded but the payload was not
	// in the expected shape.
	ParseError RetrievalKind = "parse_error"

	// Unavailable means the platform could not be reached at all.
	Unavailable RetrievalKind = "unavailable"
)

// RetrievalError represents a failed retrieval attempt against one platform tier.
type RetrievalError struct {
	Platform string
	Tier     string
	Kind     RetrievalKind
	Message  string
	Err      error
}

// Error implements the error interface
func (e *RetrievalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("retrieval failed (%s/%s, %s): %s: %v", e.Platform, e.Tier, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("retrieval failed (%s/%s, %s): %s", e.Platform, e.Tier, e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any
func (e *RetrievalError) Unwrap() error {
	return e.Err
}

// Transient reports whether the attempt is worth retrying on the same tier.
// RateLimited and Timeout failures are retried; everything else advances the
// fallback chain immediately.
func (e *RetrievalError) Transient() bool {
	return e.Kind == RateLimited || e.Kind == Timeout
}

// ScoringKind classifies a failed relevance-scoring call.
type ScoringKind string

const (
	// ProviderUnavailable means the scoring model endpoint could not be reached.
	ProviderUnavailable ScoringKind = "provider_unavailable"

	// ProviderAuthFailure means the scoring model rejected our credentials.
	ProviderAuthFailure ScoringKind = "provider_auth_failure"

	// ResponseParseError means the model responded but the payload did not
	// parse into a (score, explanation) pair.
	ResponseParseError ScoringKind = "response_parse_error"

	// BatchTimeout means a scoring batch ran past its deadline.
	BatchTimeout ScoringKind = "batch_timeout"
)

// ScoringError represents a failed AI scoring call. It is never surfaced to
// the API caller; affected jobs route to the deterministic fallback scorer.
type ScoringError struct {
	Kind    ScoringKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *ScoringError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scoring failed (%s): %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("scoring failed (%s): %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any
func (e *ScoringError) Unwrap() error {
	return e.Err
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsRetrieval checks if an error is a RetrievalError
func IsRetrieval(err error) bool {
	var retrievalErr *RetrievalError
	return errors.As(err, &retrievalErr)
}

// AsRetrieval extracts a RetrievalError from an error chain
func AsRetrieval(err error) (*RetrievalError, bool) {
	var retrievalErr *RetrievalError
	if errors.As(err, &retrievalErr) {
		return retrievalErr, true
	}
	return nil, false
}

// IsScoring checks if an error is a ScoringError
func IsScoring(err error) bool {
	var scoringErr *ScoringError
	return errors.As(err, &scoringErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
