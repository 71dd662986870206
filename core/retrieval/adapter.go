// ABOUTME: SourceAdapter contract for one retrieval strategy against one platform
// ABOUTME: Adapters resolve every failure to a typed RetrievalError, never panic

package retrieval

import (
	"context"

	"jobfinder-api/core/domain"
)

// Query carries the request fields a platform adapter needs for querying.
// Adapters never see the full JobRequest; scoring criteria stay out of the
// retrieval layer.
type Query struct {
	Position   string
	Location   string
	Experience string
	Nature     domain.JobNature
}

// QueryFromRequest projects a JobRequest onto the adapter-facing query fields.
func QueryFromRequest(req *domain.JobRequest) Query {
	return Query{
		Position:   req.Position,
		Location:   req.Location,
		Experience: req.Experience,
		Nature:     req.Nature,
	}
}

// SourceAdapter performs one retrieval attempt via one concrete strategy for
// one platform (e.g. "linkedin via guest API", "indeed via mobile HTML").
// Implementations own their transport mechanics internally and must resolve
// all failure paths to a *errors.RetrievalError; a nil error with an empty
// slice is a confirmed-empty success.
type SourceAdapter interface {
	// Tier names the strategy within its platform's fallback chain.
	Tier() string

	// Attempt performs one retrieval attempt for the given query.
	Attempt(ctx context.Context, q Query) ([]domain.RawJob, error)
}
