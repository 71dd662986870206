// ABOUTME: ScoredJob domain model pairs a normalized job with its relevance score
// ABOUTME: Maintains the score range and percentage invariants

package domain

import "math"

// ScoredJob is a normalized job with its relevance against one request.
type ScoredJob struct {
	Job

	// Score is the relevance score in [0.0, 1.0]
	Score float64

	// Percentage is round(Score * 100), in [0, 100]
	Percentage int

	// Explanation is a short human-readable justification, may be empty
	Explanation string
}

// NewScoredJob constructs a ScoredJob, clamping the score into [0, 1]
// and deriving the percentage.
func NewScoredJob(job Job, score float64, explanation string) ScoredJob {
	score = math.Min(1.0, math.Max(0.0, score))

	return ScoredJob{
		Job:         job,
		Score:       score,
		Percentage:  int(math.Round(score * 100)),
		Explanation: explanation,
	}
}
