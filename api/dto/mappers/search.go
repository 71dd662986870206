// ABOUTME: Mappers between job search domain models and API DTOs
// ABOUTME: Builds the ranked response: sort by score, truncate, serialize

package mappers

import (
	"fmt"
	"sort"

	"jobfinder-api/api/dto/requests"
	"jobfinder-api/api/dto/responses"
	"jobfinder-api/core/domain"
)

// ToJobRequest converts a SearchRequest DTO to the domain request.
func ToJobRequest(req *requests.SearchRequest) *domain.JobRequest {
	return &domain.JobRequest{
		Position:   req.Position,
		Location:   req.Location,
		Experience: req.Experience,
		Salary:     req.Salary,
		Nature:     domain.ParseNature(req.JobNature),
		Skills:     req.Skills,
		MaxResults: req.MaxResults,
	}
}

// BuildSearchResponse ranks scored jobs best-first and truncates to the
// request's limit. The sort is stable so equal scores keep input order.
func BuildSearchResponse(req *domain.JobRequest, jobs []domain.ScoredJob) *responses.SearchResponse {
	ranked := make([]domain.ScoredJob, len(jobs))
	copy(ranked, jobs)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit := req.Limit(); len(ranked) > limit {
		ranked = ranked[:limit]
	}

	response := &responses.SearchResponse{
		RelevantJobs: make([]responses.JobResponse, 0, len(ranked)),
	}
	for i := range ranked {
		response.RelevantJobs = append(response.RelevantJobs, toJobResponse(&ranked[i]))
	}
	response.Count = len(response.RelevantJobs)

	return response
}

func toJobResponse(job *domain.ScoredJob) responses.JobResponse {
	return responses.JobResponse{
		JobTitle:            job.JobTitle,
		Company:             job.Company,
		Experience:          job.Experience,
		JobNature:           string(job.Nature),
		Location:            job.Location,
		Salary:              job.Salary,
		ApplyLink:           job.ApplyLink,
		Source:              job.Source,
		RelevancePercentage: fmt.Sprintf("%d%%", job.Percentage),
		Explanation:         job.Explanation,
	}
}
