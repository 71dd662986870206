// ABOUTME: Platform listing and health handlers for the Huma API
// ABOUTME: Exposes the registered job boards and a liveness probe

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"jobfinder-api/api/dto/responses"
	"jobfinder-api/core/retrieval"
)

// PlatformsHandler serves metadata about the configured job boards
type PlatformsHandler struct {
	registry *retrieval.SourceRegistry
}

// NewPlatformsHandler creates a new platforms handler
func NewPlatformsHandler(registry *retrieval.SourceRegistry) *PlatformsHandler {
	return &PlatformsHandler{registry: registry}
}

// RegisterRoutes registers the platforms and health routes
func (h *PlatformsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listPlatforms",
		Method:      http.MethodGet,
		Path:        "/platforms",
		Summary:     "List supported job boards",
		Tags:        []string{"Platforms"},
	}, h.ListPlatforms)

	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Service health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// ListPlatformsOutput defines the output for the ListPlatforms operation
type ListPlatformsOutput struct {
	Body responses.PlatformsResponse
}

// ListPlatforms returns the registered platform identifiers
func (h *PlatformsHandler) ListPlatforms(ctx context.Context, input *struct{}) (*ListPlatformsOutput, error) {
	platforms := h.registry.Platforms()

	return &ListPlatformsOutput{
		Body: responses.PlatformsResponse{
			Platforms: platforms,
			Count:     len(platforms),
		},
	}, nil
}

// HealthOutput defines the output for the Health operation
type HealthOutput struct {
	Body responses.HealthResponse
}

// Health reports service liveness
func (h *PlatformsHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	return &HealthOutput{
		Body: responses.HealthResponse{Status: "ok"},
	}, nil
}
