// ABOUTME: ResultAggregator flattens per-platform outcomes into the candidate set
// ABOUTME: Normalizes nature, dedupes by identity key, applies strict-then-broaden filtering

package aggregate

import (
	"sort"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
)

// Config controls aggregation behavior.
type Config struct {
	// MinNatureMatches is the minimum number of strict nature matches below
	// which the filter broadens to the full candidate set. Breadth is
	// preferred over emptiness when strict filtering starves the result set.
	MinNatureMatches int
}

// DefaultConfig returns the production aggregation settings.
func DefaultConfig() Config {
	return Config{MinNatureMatches: 1}
}

// Aggregator produces the pre-ranking candidate set from retrieval outcomes.
type Aggregator struct {
	config Config
	logger interfaces.Logger
}

// New creates an aggregator.
func New(config Config, logger interfaces.Logger) *Aggregator {
	if config.MinNatureMatches < 1 {
		config.MinNatureMatches = 1
	}
	return &Aggregator{config: config, logger: logger}
}

// Candidates flattens all successful outcomes, normalizes each job's nature,
// deduplicates, and applies the nature filter. The returned set is unordered;
// ranking happens later.
func (a *Aggregator) Candidates(outcomes map[string]domain.RetrievalOutcome, req *domain.JobRequest) []domain.Job {
	jobs := a.flatten(outcomes)
	jobs = Dedupe(jobs)
	return a.filterByNature(jobs, req.Nature)
}

// flatten collects every successful platform's jobs, normalized.
// Platforms are walked in sorted order; which duplicate's fields survive is
// an accepted non-determinism of the map, not a contract, but sorting keeps
// runs comparable.
func (a *Aggregator) flatten(outcomes map[string]domain.RetrievalOutcome) []domain.Job {
	platforms := make([]string, 0, len(outcomes))
	for platform := range outcomes {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	var jobs []domain.Job
	for _, platform := range platforms {
		outcome := outcomes[platform]
		if !outcome.Succeeded() {
			continue
		}
		for _, raw := range outcome.Jobs {
			if raw.Source == "" {
				raw.Source = platform
			}
			jobs = append(jobs, domain.NormalizeJob(raw))
		}
	}
	return jobs
}

// Dedupe removes duplicate jobs by identity key, first seen wins.
// Running it on its own output is a no-op.
func Dedupe(jobs []domain.Job) []domain.Job {
	seen := make(map[string]bool, len(jobs))
	out := make([]domain.Job, 0, len(jobs))

	for _, job := range jobs {
		key := job.DedupKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, job)
	}

	return out
}

// filterByNature keeps only exact nature matches when a nature was requested,
// broadening back to the full set when strict matching starves the results.
func (a *Aggregator) filterByNature(jobs []domain.Job, requested domain.JobNature) []domain.Job {
	if requested == domain.NatureUnspecified || len(jobs) == 0 {
		return jobs
	}

	strict := make([]domain.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Nature == requested {
			strict = append(strict, job)
		}
	}

	if len(strict) < a.config.MinNatureMatches {
		if a.logger != nil {
			a.logger.Warn("Strict nature filter starved results, broadening", map[string]interface{}{
				"requested":  string(requested),
				"strict":     len(strict),
				"candidates": len(jobs),
			})
		}
		return jobs
	}

	return strict
}
