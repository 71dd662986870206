// ABOUTME: Request DTOs for the job search API
// ABOUTME: Provides validation constraints and default values for incoming requests

package requests

// SearchRequest represents the request body for a job search
type SearchRequest struct {
	// Position is the job title to search for
	Position string `json:"position" required:"true" minLength:"1" doc:"Job title or position to search for"`

	// Location narrows results to a city or region
	Location string `json:"location,omitempty" doc:"Preferred job location"`

	// Experience is the candidate's experience, free-form (e.g. \"2 years\")
	Experience string `json:"experience,omitempty" doc:"Candidate experience, e.g. '2 years'"`

	// Salary is the expected salary range, free-form
	Salary string `json:"salary,omitempty" doc:"Expected salary range"`

	// JobNature restricts results to a work arrangement
	JobNature string `json:"jobNature,omitempty" enum:"onsite,remote,hybrid" doc:"Preferred work arrangement"`

	// Skills is a comma-separated list of candidate skills
	Skills string `json:"skills,omitempty" doc:"Comma-separated candidate skills"`

	// MaxResults caps the number of ranked jobs in the response
	MaxResults int `json:"max_results,omitempty" minimum:"0" maximum:"100" doc:"Maximum number of jobs to return (default 20)"`
}
