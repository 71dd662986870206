// ABOUTME: JobRequest domain model represents a caller's search criteria
// ABOUTME: Provides validation logic for the only caller-visible failure mode

package domain

import "errors"

// DefaultMaxResults bounds the response size when the caller does not ask
// for a specific limit.
const DefaultMaxResults = 20

// JobRequest represents the search criteria for one job search.
// It is immutable once constructed; the pipeline never mutates it.
type JobRequest struct {
	// Position is the desired job title. Required.
	Position string

	// Location is the desired job location
	Location string

	// Experience is the candidate's experience, free text (e.g. "2 years")
	Experience string

	// Salary is the desired salary range, free text
	Salary string

	// Nature is the requested work arrangement. NatureUnspecified means
	// the caller does not care.
	Nature JobNature

	// Skills is a comma-separated list of skills
	Skills string

	// MaxResults bounds the number of jobs in the response
	MaxResults int
}

// Validate checks if the request has valid required fields.
// A request without a position is the only systemic, caller-visible failure;
// it is rejected before orchestration begins.
func (r *JobRequest) Validate() error {
	if r.Position == "" {
		return errors.New("position cannot be empty")
	}

	if r.MaxResults < 0 {
		return errors.New("max results cannot be negative")
	}

	return nil
}

// Limit returns the effective result bound for this request.
func (r *JobRequest) Limit() int {
	if r.MaxResults > 0 {
		return r.MaxResults
	}
	return DefaultMaxResults
}
