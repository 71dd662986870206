// ABOUTME: Orchestrator fans out one bounded retrieval task per registered platform
// ABOUTME: Isolates per-platform failures and enforces the global retrieval deadline

package retrieval

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/errors"
	"jobfinder-api/core/interfaces"
)

// OrchestratorConfig bounds the concurrent fan-out.
type OrchestratorConfig struct {
	// Deadline is the overall retrieval budget across all platforms
	Deadline time.Duration

	// Concurrency is the maximum number of platforms retrieved in parallel
	Concurrency int64
}

// DefaultOrchestratorConfig returns the production fan-out settings.
func DefaultOrchestratorConfig() OrchestratorConfig {
	return OrchestratorConfig{
		Deadline:    30 * time.Second,
		Concurrency: 5,
	}
}

// Orchestrator runs every registered platform's fallback chain concurrently
// and fans the partial results back in. One platform's failure never cancels
// or affects its siblings; platforms still running when the deadline fires
// are recorded as timed out and their contribution is simply absent.
type Orchestrator struct {
	registry *SourceRegistry
	config   OrchestratorConfig
	logger   interfaces.Logger
}

// NewOrchestrator creates an orchestrator over a source registry.
func NewOrchestrator(registry *SourceRegistry, config OrchestratorConfig, logger interfaces.Logger) *Orchestrator {
	if config.Deadline <= 0 {
		config.Deadline = DefaultOrchestratorConfig().Deadline
	}
	if config.Concurrency < 1 {
		config.Concurrency = DefaultOrchestratorConfig().Concurrency
	}
	return &Orchestrator{
		registry: registry,
		config:   config,
		logger:   logger,
	}
}

// Retrieve fans out one retrieval task per platform and returns each
// platform's outcome. It always returns within the configured deadline plus
// a small grace margin, regardless of how individual adapters behave.
func (o *Orchestrator) Retrieve(ctx context.Context, q Query) map[string]domain.RetrievalOutcome {
	platforms := o.registry.Platforms()
	outcomes := make(map[string]domain.RetrievalOutcome, len(platforms))
	if len(platforms) == 0 {
		return outcomes
	}

	ctx, cancel := context.WithTimeout(ctx, o.config.Deadline)
	defer cancel()

	sem := semaphore.NewWeighted(o.config.Concurrency)
	results := make(chan domain.RetrievalOutcome, len(platforms))

	for _, platform := range platforms {
		chain := o.registry.Chain(platform)

		go func(platform string, chain *FallbackChain) {
			if err := sem.Acquire(ctx, 1); err != nil {
				// Deadline fired while queued; the fan-in marks us timed out
				return
			}
			defer sem.Release(1)

			outcome := chain.Retrieve(ctx, q)

			select {
			case results <- outcome:
			case <-ctx.Done():
			}
		}(platform, chain)
	}

	// Fan in until every platform reports or the deadline fires, whichever
	// comes first. No ordering between platforms is assumed.
	for len(outcomes) < len(platforms) {
		select {
		case outcome := <-results:
			outcomes[outcome.Platform] = outcome
		case <-ctx.Done():
			o.markStragglers(platforms, outcomes)
			return outcomes
		}
	}

	return outcomes
}

// markStragglers records a Timeout failure for every platform that had not
// resolved when the deadline fired. Already-completed results are kept.
func (o *Orchestrator) markStragglers(platforms []string, outcomes map[string]domain.RetrievalOutcome) {
	for _, platform := range platforms {
		if _, done := outcomes[platform]; done {
			continue
		}

		outcomes[platform] = domain.RetrievalOutcome{
			Platform: platform,
			Failures: []*errors.RetrievalError{{
				Platform: platform,
				Kind:     errors.Timeout,
				Message:  "platform did not complete before the retrieval deadline",
			}},
		}

		if o.logger != nil {
			o.logger.Warn("Platform timed out", map[string]interface{}{
				"platform": platform,
				"deadline": o.config.Deadline.String(),
			})
		}
	}
}
