// ABOUTME: FallbackChain runs a platform's ordered retrieval tiers until one succeeds
// ABOUTME: Transient failures retry in place, structural failures advance the chain

package retrieval

import (
	"context"
	stderrors "errors"
	"math/rand"
	"time"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/errors"
	"jobfinder-api/core/interfaces"
)

// ChainConfig controls per-tier retry behavior.
type ChainConfig struct {
	// MaxRetries is the number of attempts per tier for transient failures
	MaxRetries int

	// BaseBackoff is the delay before the first retry; it doubles per attempt
	BaseBackoff time.Duration

	// MaxBackoff caps the exponential growth
	MaxBackoff time.Duration
}

// DefaultChainConfig returns the retry settings used in production.
func DefaultChainConfig() ChainConfig {
	return ChainConfig{
		MaxRetries:  3,
		BaseBackoff: 500 * time.Millisecond,
		MaxBackoff:  5 * time.Second,
	}
}

// FallbackChain holds one platform's ordered list of source adapters,
// highest-priority tier first. It turns a binary works/doesn't into graceful
// per-platform degradation: each tier gets retried on transient errors and
// skipped on structural ones, and only when every tier is exhausted does the
// platform contribute zero jobs.
type FallbackChain struct {
	platform string
	adapters []SourceAdapter
	config   ChainConfig
	logger   interfaces.Logger
}

// NewFallbackChain creates a fallback chain for one platform.
func NewFallbackChain(platform string, adapters []SourceAdapter, config ChainConfig, logger interfaces.Logger) *FallbackChain {
	if config.MaxRetries < 1 {
		config.MaxRetries = 1
	}
	return &FallbackChain{
		platform: platform,
		adapters: adapters,
		config:   config,
		logger:   logger,
	}
}

// Platform returns the platform identifier this chain retrieves for.
func (c *FallbackChain) Platform() string {
	return c.platform
}

// Retrieve executes the chain for one query. It never returns an error and
// never panics: either some tier succeeds, or the outcome carries each
// tier's terminal failure in chain order.
func (c *FallbackChain) Retrieve(ctx context.Context, q Query) domain.RetrievalOutcome {
	outcome := domain.RetrievalOutcome{Platform: c.platform}

	for _, adapter := range c.adapters {
		terminal := c.attemptTier(ctx, adapter, q, &outcome)
		if terminal == nil {
			return outcome
		}
		outcome.Failures = append(outcome.Failures, terminal)

		if ctx.Err() != nil {
			// Deadline hit mid-chain; remaining tiers would only burn time
			break
		}
	}

	if c.logger != nil {
		c.logger.Warn("All retrieval tiers failed", map[string]interface{}{
			"platform": c.platform,
			"tiers":    len(outcome.Failures),
		})
	}

	return outcome
}

// attemptTier runs one adapter with retry. It returns nil on success (after
// filling the outcome) or the tier's terminal error.
func (c *FallbackChain) attemptTier(ctx context.Context, adapter SourceAdapter, q Query, outcome *domain.RetrievalOutcome) *errors.RetrievalError {
	var lastErr *errors.RetrievalError

	for attempt := 0; attempt < c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			if err := c.backoff(ctx, attempt); err != nil {
				return c.coerce(adapter, err)
			}
		}

		jobs, err := adapter.Attempt(ctx, q)
		if err == nil {
			if jobs == nil {
				jobs = []domain.RawJob{}
			}
			outcome.Jobs = jobs
			outcome.Tier = adapter.Tier()
			if c.logger != nil {
				c.logger.Info("Retrieval tier succeeded", map[string]interface{}{
					"platform": c.platform,
					"tier":     adapter.Tier(),
					"jobs":     len(jobs),
					"attempt":  attempt + 1,
				})
			}
			return nil
		}

		lastErr = c.coerce(adapter, err)

		// Structural failures advance to the next tier immediately;
		// retries are wasted on permanent failures.
		if !lastErr.Transient() {
			break
		}
	}

	if c.logger != nil {
		c.logger.Debug("Retrieval tier exhausted", map[string]interface{}{
			"platform": c.platform,
			"tier":     adapter.Tier(),
			"kind":     string(lastErr.Kind),
		})
	}

	return lastErr
}

// backoff sleeps for an exponentially growing interval with random jitter,
// or returns early when the context expires.
func (c *FallbackChain) backoff(ctx context.Context, attempt int) error {
	base := c.config.BaseBackoff
	if base <= 0 {
		base = 500 * time.Millisecond
	}

	delay := base << uint(attempt-1)
	if c.config.MaxBackoff > 0 && delay > c.config.MaxBackoff {
		delay = c.config.MaxBackoff
	}

	// Up to 50% jitter so parallel chains don't hammer a platform in lockstep
	delay += time.Duration(rand.Int63n(int64(delay)/2 + 1))

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// coerce normalizes any error from an adapter into a RetrievalError so the
// chain can classify it. Well-behaved adapters already return the typed form.
func (c *FallbackChain) coerce(adapter SourceAdapter, err error) *errors.RetrievalError {
	if retrievalErr, ok := errors.AsRetrieval(err); ok {
		return retrievalErr
	}

	kind := errors.Unavailable
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		kind = errors.Timeout
	}

	return &errors.RetrievalError{
		Platform: c.platform,
		Tier:     adapter.Tier(),
		Kind:     kind,
		Message:  "adapter returned untyped error",
		Err:      err,
	}
}
