// ABOUTME: ScoreProvider contract for the external AI-backed scoring strategy
// ABOUTME: Batch-shaped so call overhead is amortized across candidates

package relevance

import (
	"context"

	"jobfinder-api/core/domain"
)

// Assessment is one job's relevance as judged by the external model.
type Assessment struct {
	// Score is already converted to the [0, 1] range
	Score float64

	// Explanation is the model's short justification
	Explanation string
}

// ScoreProvider scores a batch of jobs against one request using an external
// model. The returned slice is indexed like the input jobs; a nil entry means
// that job's answer could not be parsed and it must fall back to the rule
// scorer. A non-nil error means the whole batch failed (and is always a
// *errors.ScoringError).
type ScoreProvider interface {
	ScoreBatch(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error)
}
