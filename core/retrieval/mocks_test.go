package retrieval

import (
	"context"
	"sync/atomic"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/errors"
)

// stubAdapter is a scriptable SourceAdapter for chain and orchestrator tests
type stubAdapter struct {
	tier        string
	attemptFunc func(ctx context.Context, q Query) ([]domain.RawJob, error)
	calls       atomic.Int32
}

func (a *stubAdapter) Tier() string {
	return a.tier
}

func (a *stubAdapter) Attempt(ctx context.Context, q Query) ([]domain.RawJob, error) {
	a.calls.Add(1)
	if a.attemptFunc != nil {
		return a.attemptFunc(ctx, q)
	}
	return nil, nil
}

// failingAdapter always fails with the given kind
func failingAdapter(tier string, kind errors.RetrievalKind) *stubAdapter {
	return &stubAdapter{
		tier: tier,
		attemptFunc: func(ctx context.Context, q Query) ([]domain.RawJob, error) {
			return nil, &errors.RetrievalError{
				Platform: "test",
				Tier:     tier,
				Kind:     kind,
				Message:  "forced failure",
			}
		},
	}
}

// succeedingAdapter always returns the given jobs
func succeedingAdapter(tier string, jobs []domain.RawJob) *stubAdapter {
	return &stubAdapter{
		tier: tier,
		attemptFunc: func(ctx context.Context, q Query) ([]domain.RawJob, error) {
			return jobs, nil
		},
	}
}

// hangingAdapter blocks until its context is cancelled
func hangingAdapter(tier string) *stubAdapter {
	return &stubAdapter{
		tier: tier,
		attemptFunc: func(ctx context.Context, q Query) ([]domain.RawJob, error) {
			<-ctx.Done()
			return nil, &errors.RetrievalError{
				Platform: "test",
				Tier:     tier,
				Kind:     errors.Timeout,
				Message:  "context cancelled",
			}
		},
	}
}

// fastChainConfig keeps retry backoff negligible in tests
func fastChainConfig(maxRetries int) ChainConfig {
	return ChainConfig{
		MaxRetries:  maxRetries,
		BaseBackoff: 1,
		MaxBackoff:  1,
	}
}
