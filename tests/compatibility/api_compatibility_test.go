// ABOUTME: Compatibility tests pinning the public wire contract of the API
// ABOUTME: Field names and formats here are load-bearing for existing clients

package compatibility

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobfinder-api/api"
	"jobfinder-api/api/handlers"
	"jobfinder-api/core/aggregate"
	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/jobsearch"
	"jobfinder-api/core/relevance"
	"jobfinder-api/core/retrieval"
)

// staticAdapter serves a fixed result set so contract assertions are
// deterministic.
type staticAdapter struct {
	jobs []domain.RawJob
}

func (a *staticAdapter) Tier() string { return "static" }

func (a *staticAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	return a.jobs, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	registry := retrieval.NewSourceRegistry()
	chainCfg := retrieval.ChainConfig{MaxRetries: 1, BaseBackoff: 1, MaxBackoff: 1}
	registry.Register(retrieval.NewFallbackChain("linkedin", []retrieval.SourceAdapter{
		&staticAdapter{jobs: []domain.RawJob{
			{
				JobTitle:   "Backend Developer",
				Company:    "Acme",
				Location:   "Karachi",
				Experience: "3 years",
				Salary:     "150,000 PKR",
				JobNature:  "remote",
				ApplyLink:  "https://jobs.acme.example/1",
				Source:     "LinkedIn",
			},
			{
				JobTitle:  "Frontend Developer",
				Company:   "Initech",
				JobNature: "remote",
				ApplyLink: "https://jobs.initech.example/2",
				Source:    "LinkedIn",
			},
		}},
	}, chainCfg, nil))

	deps := interfaces.Dependencies{}
	orchestrator := retrieval.NewOrchestrator(registry, retrieval.DefaultOrchestratorConfig(), nil)
	aggregator := aggregate.New(aggregate.DefaultConfig(), nil)
	scorer := relevance.NewScorer(deps, nil, relevance.DefaultScorerConfig())
	service := jobsearch.NewService(deps, orchestrator, aggregator, scorer)

	humaAPI, router := api.NewAPI()
	handlers.NewSearchHandler(service).RegisterRoutes(humaAPI)
	handlers.NewPlatformsHandler(registry).RegisterRoutes(humaAPI)

	return router
}

func postSearch(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/search", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// TestSearchResponseContract pins the exact field names and formats clients
// parse out of a search response.
func TestSearchResponseContract(t *testing.T) {
	router := newTestRouter(t)

	rec := postSearch(t, router, `{
		"position": "Backend Developer",
		"location": "Karachi",
		"experience": "2 years",
		"jobNature": "remote",
		"skills": "go, docker, kubernetes",
		"max_results": 10
	}`)
	require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Contains(t, payload, "relevant_jobs")
	assert.Contains(t, payload, "count")

	var jobs []map[string]interface{}
	require.NoError(t, json.Unmarshal(payload["relevant_jobs"], &jobs))
	require.NotEmpty(t, jobs)

	var count int
	require.NoError(t, json.Unmarshal(payload["count"], &count))
	assert.Equal(t, len(jobs), count)

	percentage := regexp.MustCompile(`^\d+%$`)
	for _, job := range jobs {
		for _, field := range []string{"job_title", "company", "apply_link", "source", "relevance_percentage"} {
			assert.Contains(t, job, field)
		}
		assert.Regexp(t, percentage, job["relevance_percentage"])
	}

	// The best match carries the detailed fields through unchanged
	first := jobs[0]
	assert.Equal(t, "Backend Developer", first["job_title"])
	assert.Equal(t, "Acme", first["company"])
	assert.Equal(t, "https://jobs.acme.example/1", first["apply_link"])
	assert.Equal(t, "LinkedIn", first["source"])
}

// TestStatusCodes verifies the status codes clients rely on stay put.
func TestStatusCodes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid POST /search",
			method:         http.MethodPost,
			path:           "/search",
			body:           `{"position": "Backend Developer"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "POST /search without position",
			method:         http.MethodPost,
			path:           "/search",
			body:           `{"location": "Lahore"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "POST /search with invalid jobNature",
			method:         http.MethodPost,
			path:           "/search",
			body:           `{"position": "Backend Developer", "jobNature": "freelance"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "GET /platforms",
			method:         http.MethodGet,
			path:           "/platforms",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "GET /health",
			method:         http.MethodGet,
			path:           "/health",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body *bytes.Reader
			if tt.body != "" {
				body = bytes.NewReader([]byte(tt.body))
			} else {
				body = bytes.NewReader(nil)
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code, "body: %s", rec.Body.String())
		})
	}
}

// TestErrorFormat verifies validation failures keep the RFC 7807 problem
// shape Huma emits.
func TestErrorFormat(t *testing.T) {
	router := newTestRouter(t)

	rec := postSearch(t, router, `{"location": "Lahore"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var errorResp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errorResp))
	assert.Contains(t, errorResp, "status")
	assert.Contains(t, errorResp, "title")
	assert.Equal(t, float64(http.StatusUnprocessableEntity), errorResp["status"])
}

// TestPlatformsResponseContract pins the /platforms payload shape.
func TestPlatformsResponseContract(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/platforms", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Platforms []string `json:"platforms"`
		Count     int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, []string{"linkedin"}, payload.Platforms)
	assert.Equal(t, 1, payload.Count)
}

// TestEmptyResultKeepsArrayShape ensures a zero-match search serializes
// relevant_jobs as [] rather than null.
func TestEmptyResultKeepsArrayShape(t *testing.T) {
	registry := retrieval.NewSourceRegistry()
	deps := interfaces.Dependencies{}
	orchestrator := retrieval.NewOrchestrator(registry, retrieval.DefaultOrchestratorConfig(), nil)
	aggregator := aggregate.New(aggregate.DefaultConfig(), nil)
	scorer := relevance.NewScorer(deps, nil, relevance.DefaultScorerConfig())
	service := jobsearch.NewService(deps, orchestrator, aggregator, scorer)

	humaAPI, router := api.NewAPI()
	handlers.NewSearchHandler(service).RegisterRoutes(humaAPI)

	rec := postSearch(t, router, `{"position": "Backend Developer"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Body.String(), `"relevant_jobs":[]`)
	assert.Contains(t, rec.Body.String(), `"count":0`)
}
