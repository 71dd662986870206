// ABOUTME: Shared helpers for job board source adapters
// ABOUTME: Maps HTTP status codes to the retrieval error taxonomy

package sources

import (
	"io"

	"jobfinder-api/core/errors"
	"jobfinder-api/core/interfaces"
)

const (
	// NotSpecified fills job fields a board does not expose.
	NotSpecified = "Not specified"

	// MaxJobsPerTier bounds how many cards one tier parses from a listing page.
	MaxJobsPerTier = 10
)

// ClassifyStatus converts a non-200 response into a typed retrieval error.
// 429 means slow down and retry; 403 and challenge redirects mean the board
// recognized us as a bot and the whole tier is burned.
func ClassifyStatus(platform, tier string, status int) *errors.RetrievalError {
	switch {
	case status == 429:
		return &errors.RetrievalError{
			Platform: platform,
			Tier:     tier,
			Kind:     errors.RateLimited,
			Message:  "board returned 429",
		}
	case status == 403 || status == 401:
		return &errors.RetrievalError{
			Platform: platform,
			Tier:     tier,
			Kind:     errors.Blocked,
			Message:  "board refused the request",
		}
	case status >= 500:
		return &errors.RetrievalError{
			Platform: platform,
			Tier:     tier,
			Kind:     errors.Unavailable,
			Message:  "board returned a server error",
		}
	default:
		return &errors.RetrievalError{
			Platform: platform,
			Tier:     tier,
			Kind:     errors.Unavailable,
			Message:  "board returned an unexpected status",
		}
	}
}

// ParseError builds a parse-failure error for a tier.
func ParseError(platform, tier, msg string, err error) *errors.RetrievalError {
	return &errors.RetrievalError{
		Platform: platform,
		Tier:     tier,
		Kind:     errors.ParseError,
		Message:  msg,
		Err:      err,
	}
}

// ReadBody drains and closes a response body.
func ReadBody(resp interfaces.Response) ([]byte, error) {
	defer resp.Body().Close()
	return io.ReadAll(resp.Body())
}
