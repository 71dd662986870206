// ABOUTME: RetrievalOutcome domain model records one platform's retrieval result
// ABOUTME: A platform either contributes raw jobs or an ordered list of tier failures

package domain

import "jobfinder-api/core/errors"

// RetrievalOutcome is the per-platform result of one search request.
// It is created fresh per request and never persisted.
type RetrievalOutcome struct {
	// Platform is the platform identifier this outcome belongs to
	Platform string

	// Jobs holds the retrieved postings on success. An empty, non-nil slice
	// is a confirmed-empty success, distinct from failure.
	Jobs []RawJob

	// Tier names the fallback tier that produced the jobs, for observability
	Tier string

	// Failures holds each tier's terminal error in chain order. Tiers that
	// failed before a later tier succeeded stay recorded here, so a non-empty
	// list does not by itself mean the platform failed.
	Failures []*errors.RetrievalError
}

// Succeeded reports whether any tier produced a result for this platform.
// Success always carries a non-nil Jobs slice; a confirmed-empty result is
// still a success.
func (o RetrievalOutcome) Succeeded() bool {
	return o.Jobs != nil
}
