// ABOUTME: Relevance scorer combining the AI provider, the rule fallback and the cache
// ABOUTME: Every candidate gets exactly one ScoredJob; no failure drops a job

package relevance

import (
	"context"
	"encoding/json"
	"time"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
)

// ScorerConfig controls batching and caching.
type ScorerConfig struct {
	// BatchSize is how many cache misses go to the provider per call
	BatchSize int

	// BatchTimeout bounds each provider call, independent of the retrieval
	// deadline; a timed-out batch routes to the fallback scorer
	BatchTimeout time.Duration

	// CacheTTL is how long score cache entries stay valid
	CacheTTL time.Duration
}

// DefaultScorerConfig returns the production scoring settings.
func DefaultScorerConfig() ScorerConfig {
	return ScorerConfig{
		BatchSize:    5,
		BatchTimeout: 20 * time.Second,
		CacheTTL:     time.Hour,
	}
}

// Scorer assigns each candidate a relevance score against the request.
// The AI provider is preferred; the deterministic rule scorer covers cache
// misses whenever the provider is disabled, fails a batch, or garbles a
// single job's answer.
type Scorer struct {
	deps     interfaces.Dependencies
	provider ScoreProvider
	config   ScorerConfig
}

// NewScorer creates a scorer. A nil provider disables the AI path entirely;
// everything scores through the rules.
func NewScorer(deps interfaces.Dependencies, provider ScoreProvider, config ScorerConfig) *Scorer {
	if config.BatchSize < 1 {
		config.BatchSize = DefaultScorerConfig().BatchSize
	}
	if config.BatchTimeout <= 0 {
		config.BatchTimeout = DefaultScorerConfig().BatchTimeout
	}
	if config.CacheTTL <= 0 {
		config.CacheTTL = DefaultScorerConfig().CacheTTL
	}
	return &Scorer{deps: deps, provider: provider, config: config}
}

// Score scores every candidate and returns one ScoredJob per input, in input
// order. Scoring failures degrade to the rule scorer, never to a dropped job
// or a request failure.
func (s *Scorer) Score(ctx context.Context, req *domain.JobRequest, candidates []domain.Job) []domain.ScoredJob {
	scored := make([]domain.ScoredJob, len(candidates))

	// Cache pass first: hits skip both strategies
	var missIdx []int
	for i := range candidates {
		key := Fingerprint(req, &candidates[i])
		if entry, ok := s.cachedEntry(ctx, key); ok {
			scored[i] = domain.NewScoredJob(candidates[i], entry.Score, entry.Explanation)
			continue
		}
		missIdx = append(missIdx, i)
	}

	for start := 0; start < len(missIdx); start += s.config.BatchSize {
		end := start + s.config.BatchSize
		if end > len(missIdx) {
			end = len(missIdx)
		}
		s.scoreBatch(ctx, req, candidates, missIdx[start:end], scored)
	}

	return scored
}

// scoreBatch scores one batch of cache misses, falling back per job.
func (s *Scorer) scoreBatch(ctx context.Context, req *domain.JobRequest, candidates []domain.Job, batch []int, scored []domain.ScoredJob) {
	var assessments []*Assessment

	if s.provider != nil {
		jobs := make([]domain.Job, len(batch))
		for i, idx := range batch {
			jobs[i] = candidates[idx]
		}

		batchCtx, cancel := context.WithTimeout(ctx, s.config.BatchTimeout)
		result, err := s.provider.ScoreBatch(batchCtx, req, jobs)
		cancel()

		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Warn("AI scoring batch failed, using fallback scorer", map[string]interface{}{
					"jobs":  len(jobs),
					"error": err.Error(),
				})
			}
		} else {
			assessments = result
		}
	}

	for i, idx := range batch {
		job := &candidates[idx]

		var score float64
		var explanation string
		if assessments != nil && i < len(assessments) && assessments[i] != nil {
			score = assessments[i].Score
			explanation = assessments[i].Explanation
		} else {
			score, explanation = RuleScore(req, job)
		}

		scored[idx] = domain.NewScoredJob(*job, score, explanation)
		s.writeCache(ctx, Fingerprint(req, job), scored[idx])
	}
}

// cachedEntry looks a fingerprint up in the score cache.
func (s *Scorer) cachedEntry(ctx context.Context, key string) (*CacheEntry, bool) {
	if s.deps.Cache == nil {
		return nil, false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil || data == nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	return &entry, true
}

// writeCache stores a scored job back into the cache. Cache write failures
// are ignored: the worst case is duplicate computation, not corruption.
func (s *Scorer) writeCache(ctx context.Context, key string, job domain.ScoredJob) {
	if s.deps.Cache == nil {
		return
	}

	entry := CacheEntry{
		Score:       job.Score,
		Explanation: job.Explanation,
		Timestamp:   time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_ = s.deps.Cache.Set(ctx, key, data, s.config.CacheTTL)
}
