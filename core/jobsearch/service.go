// ABOUTME: Job search service gluing orchestration, aggregation and scoring
// ABOUTME: Pure entry point: search(request) -> scored jobs, no hidden state

package jobsearch

import (
	"context"

	"jobfinder-api/core/aggregate"
	"jobfinder-api/core/domain"
	"jobfinder-api/core/errors"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/relevance"
	"jobfinder-api/core/retrieval"
)

// Result is the outcome of one search: every aggregated candidate with its
// score, plus the per-platform retrieval outcomes for observability.
type Result struct {
	Jobs     []domain.ScoredJob
	Outcomes map[string]domain.RetrievalOutcome
}

// Service runs the retrieval-and-ranking pipeline for one request at a time.
// The score cache (inside the scorer's dependencies) is the only state shared
// between requests.
type Service struct {
	deps         interfaces.Dependencies
	orchestrator *retrieval.Orchestrator
	aggregator   *aggregate.Aggregator
	scorer       *relevance.Scorer
}

// NewService creates a job search service.
func NewService(deps interfaces.Dependencies, orchestrator *retrieval.Orchestrator, aggregator *aggregate.Aggregator, scorer *relevance.Scorer) *Service {
	return &Service{
		deps:         deps,
		orchestrator: orchestrator,
		aggregator:   aggregator,
		scorer:       scorer,
	}
}

// Search retrieves, aggregates and scores jobs for one request.
// A malformed request is the only error; every downstream failure is absorbed
// by fallback or degradation, and an empty result is a valid outcome.
func (s *Service) Search(ctx context.Context, req *domain.JobRequest) (*Result, error) {
	if req == nil {
		return nil, &errors.ValidationError{Field: "request", Message: "request cannot be nil"}
	}
	if err := req.Validate(); err != nil {
		return nil, &errors.ValidationError{Field: "position", Message: err.Error()}
	}

	outcomes := s.orchestrator.Retrieve(ctx, retrieval.QueryFromRequest(req))

	candidates := s.aggregator.Candidates(outcomes, req)

	scored := s.scorer.Score(ctx, req, candidates)

	if s.deps.Logger != nil {
		succeeded := 0
		for _, o := range outcomes {
			if o.Succeeded() {
				succeeded++
			}
		}
		s.deps.Logger.Info("Search completed", map[string]interface{}{
			"position":   req.Position,
			"platforms":  len(outcomes),
			"succeeded":  succeeded,
			"candidates": len(candidates),
		})
	}

	return &Result{Jobs: scored, Outcomes: outcomes}, nil
}
