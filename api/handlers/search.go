// ABOUTME: Search handler for the Huma API
// ABOUTME: Runs the retrieval-and-ranking pipeline for POST /search

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"jobfinder-api/api/dto/mappers"
	"jobfinder-api/api/dto/requests"
	"jobfinder-api/api/dto/responses"
	"jobfinder-api/core/jobsearch"
)

// SearchHandler handles job search requests
type SearchHandler struct {
	service *jobsearch.Service
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(service *jobsearch.Service) *SearchHandler {
	return &SearchHandler{service: service}
}

// RegisterRoutes registers the search route
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "searchJobs",
		Method:      http.MethodPost,
		Path:        "/search",
		Summary:     "Search jobs across platforms",
		Description: "Fans out to every registered job board, deduplicates and filters the results, and ranks them by relevance to the candidate.",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Body requests.SearchRequest
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles a job search request
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	req := mappers.ToJobRequest(&input.Body)

	result, err := h.service.Search(ctx, req)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &SearchOutput{
		Body: *mappers.BuildSearchResponse(req, result.Jobs),
	}, nil
}
