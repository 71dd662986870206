package relevance

import (
	"context"
	"testing"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/errors"
	"jobfinder-api/core/interfaces"
)

func testCandidates(n int) []domain.Job {
	jobs := make([]domain.Job, n)
	for i := range jobs {
		jobs[i] = domain.Job{RawJob: domain.RawJob{
			JobTitle:  "Backend Engineer",
			Company:   string(rune('A' + i)),
			ApplyLink: "https://example.com/" + string(rune('a'+i)),
		}}
	}
	return jobs
}

func TestScore_EveryCandidateScored(t *testing.T) {
	provider := &mockProvider{
		batchFunc: func(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error) {
			out := make([]*Assessment, len(jobs))
			for i := range out {
				out[i] = &Assessment{Score: 0.7, Explanation: "good fit"}
			}
			return out, nil
		},
	}
	scorer := NewScorer(interfaces.Dependencies{Cache: newMockCache()}, provider, DefaultScorerConfig())
	req := &domain.JobRequest{Position: "Backend Engineer"}

	scored := scorer.Score(context.Background(), req, testCandidates(7))

	if len(scored) != 7 {
		t.Fatalf("scored = %d, want 7 (no candidate silently dropped)", len(scored))
	}
	for i, s := range scored {
		if s.Score < 0.0 || s.Score > 1.0 {
			t.Errorf("scored[%d].Score = %v, out of [0,1]", i, s.Score)
		}
		if s.Percentage != 70 {
			t.Errorf("scored[%d].Percentage = %d, want 70", i, s.Percentage)
		}
	}
}

func TestScore_BatchesBySize(t *testing.T) {
	provider := &mockProvider{
		batchFunc: func(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error) {
			if len(jobs) > 3 {
				t.Errorf("batch size = %d, want at most 3", len(jobs))
			}
			out := make([]*Assessment, len(jobs))
			for i := range out {
				out[i] = &Assessment{Score: 0.5}
			}
			return out, nil
		},
	}
	config := DefaultScorerConfig()
	config.BatchSize = 3
	scorer := NewScorer(interfaces.Dependencies{Cache: newMockCache()}, provider, config)

	scorer.Score(context.Background(), &domain.JobRequest{Position: "Engineer"}, testCandidates(7))

	if got := provider.callCount(); got != 3 {
		t.Errorf("provider called %d times, want 3 batches for 7 jobs", got)
	}
}

func TestScore_CacheHitSkipsProvider(t *testing.T) {
	cache := newMockCache()
	provider := &mockProvider{
		batchFunc: func(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error) {
			out := make([]*Assessment, len(jobs))
			for i := range out {
				out[i] = &Assessment{Score: 0.8, Explanation: "ai judged"}
			}
			return out, nil
		},
	}
	scorer := NewScorer(interfaces.Dependencies{Cache: cache}, provider, DefaultScorerConfig())
	req := &domain.JobRequest{Position: "Backend Engineer"}
	candidates := testCandidates(3)

	first := scorer.Score(context.Background(), req, candidates)
	callsAfterFirst := provider.callCount()
	second := scorer.Score(context.Background(), req, candidates)

	if provider.callCount() != callsAfterFirst {
		t.Error("second Score call should not reach the provider")
	}
	for i := range first {
		if first[i].Score != second[i].Score || first[i].Explanation != second[i].Explanation {
			t.Errorf("cached result differs at %d: (%v, %q) vs (%v, %q)",
				i, first[i].Score, first[i].Explanation, second[i].Score, second[i].Explanation)
		}
	}
}

func TestScore_ChangedRequestMissesCache(t *testing.T) {
	cache := newMockCache()
	provider := &mockProvider{
		batchFunc: func(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error) {
			out := make([]*Assessment, len(jobs))
			for i := range out {
				out[i] = &Assessment{Score: 0.8}
			}
			return out, nil
		},
	}
	scorer := NewScorer(interfaces.Dependencies{Cache: cache}, provider, DefaultScorerConfig())
	candidates := testCandidates(1)

	scorer.Score(context.Background(), &domain.JobRequest{Position: "Backend Engineer"}, candidates)
	scorer.Score(context.Background(), &domain.JobRequest{Position: "Data Scientist"}, candidates)

	if got := provider.callCount(); got != 2 {
		t.Errorf("provider called %d times, want 2 (changed request must not reuse scores)", got)
	}
}

func TestScore_ProviderFailureFallsBack(t *testing.T) {
	provider := &mockProvider{
		batchFunc: func(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error) {
			return nil, &errors.ScoringError{Kind: errors.ProviderUnavailable, Message: "forced"}
		},
	}
	scorer := NewScorer(interfaces.Dependencies{Cache: newMockCache()}, provider, DefaultScorerConfig())

	scored := scorer.Score(context.Background(), &domain.JobRequest{Position: "Backend Engineer"}, testCandidates(4))

	if len(scored) != 4 {
		t.Fatalf("scored = %d, want 4", len(scored))
	}
	for i, s := range scored {
		if s.Score < 0.0 || s.Score > 1.0 {
			t.Errorf("fallback scored[%d] = %v, out of [0,1]", i, s.Score)
		}
		if s.Explanation == "" {
			t.Errorf("fallback scored[%d] has empty explanation", i)
		}
	}
}

func TestScore_SingleGarbledJobFallsBackAlone(t *testing.T) {
	provider := &mockProvider{
		batchFunc: func(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error) {
			out := make([]*Assessment, len(jobs))
			for i := range out {
				if i == 1 {
					continue // model garbled this one
				}
				out[i] = &Assessment{Score: 0.9, Explanation: "ai judged"}
			}
			return out, nil
		},
	}
	scorer := NewScorer(interfaces.Dependencies{Cache: newMockCache()}, provider, DefaultScorerConfig())

	scored := scorer.Score(context.Background(), &domain.JobRequest{Position: "Backend Engineer"}, testCandidates(3))

	if scored[0].Explanation != "ai judged" || scored[2].Explanation != "ai judged" {
		t.Error("parseable jobs should keep the AI result")
	}
	if scored[1].Explanation == "ai judged" {
		t.Error("garbled job should be rule-scored, not inherit the AI result")
	}
	if scored[1].Score < 0.0 || scored[1].Score > 1.0 {
		t.Errorf("garbled job score = %v, out of [0,1]", scored[1].Score)
	}
}

func TestScore_NilProviderUsesRules(t *testing.T) {
	cache := newMockCache()
	scorer := NewScorer(interfaces.Dependencies{Cache: cache}, nil, DefaultScorerConfig())

	scored := scorer.Score(context.Background(), &domain.JobRequest{Position: "Backend Engineer"}, testCandidates(2))

	if len(scored) != 2 {
		t.Fatalf("scored = %d, want 2", len(scored))
	}
	if cache.sets != 2 {
		t.Errorf("cache writes = %d, want 2 (fallback scores are cached too)", cache.sets)
	}
}

func TestScore_NoCacheConfigured(t *testing.T) {
	scorer := NewScorer(interfaces.Dependencies{}, nil, DefaultScorerConfig())

	scored := scorer.Score(context.Background(), &domain.JobRequest{Position: "Backend Engineer"}, testCandidates(2))

	if len(scored) != 2 {
		t.Fatalf("scored = %d, want 2 without a cache", len(scored))
	}
}

func TestFingerprint_StableAndSensitive(t *testing.T) {
	req := &domain.JobRequest{Position: "Backend Engineer", Skills: "go"}
	job := domain.Job{RawJob: domain.RawJob{JobTitle: "Engineer", Company: "Acme"}}

	if Fingerprint(req, &job) != Fingerprint(req, &job) {
		t.Error("Fingerprint should be stable for identical inputs")
	}

	other := *req
	other.Skills = "rust"
	if Fingerprint(req, &job) == Fingerprint(&other, &job) {
		t.Error("Fingerprint should change when the request changes")
	}

	otherJob := job
	otherJob.Company = "Beta"
	if Fingerprint(req, &job) == Fingerprint(req, &otherJob) {
		t.Error("Fingerprint should change when the job changes")
	}
}

func TestFingerprint_IgnoresCaseAndSpace(t *testing.T) {
	a := &domain.JobRequest{Position: "Backend Engineer"}
	b := &domain.JobRequest{Position: "  backend engineer "}
	job := domain.Job{RawJob: domain.RawJob{JobTitle: "Engineer"}}

	if Fingerprint(a, &job) != Fingerprint(b, &job) {
		t.Error("Fingerprint should normalize case and surrounding whitespace")
	}
}
