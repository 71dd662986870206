// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"jobfinder-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Retrieval and scoring failures are absorbed inside the pipeline, so seeing
// one here means a programming error; they still get a sane status.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if retrErr, ok := errors.AsRetrieval(err); ok {
		if retrErr.Kind == errors.RateLimited {
			return huma.Error429TooManyRequests("Rate limited by job board")
		}
		return huma.Error503ServiceUnavailable("Job board unavailable", err)
	}

	if errors.IsScoring(err) {
		return huma.Error503ServiceUnavailable("Scoring provider unavailable", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
