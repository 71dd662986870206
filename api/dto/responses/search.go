// ABOUTME: Response DTOs for the job search API
// ABOUTME: Provides structured responses with JSON serialization

package responses

// JobResponse represents one ranked job in API responses
type JobResponse struct {
	JobTitle            string `json:"job_title" doc:"Job title"`
	Company             string `json:"company" doc:"Hiring company"`
	Experience          string `json:"experience,omitempty" doc:"Required experience"`
	JobNature           string `json:"jobNature,omitempty" doc:"Work arrangement (onsite, remote, hybrid)"`
	Location            string `json:"location,omitempty" doc:"Job location"`
	Salary              string `json:"salary,omitempty" doc:"Advertised salary"`
	ApplyLink           string `json:"apply_link" doc:"Link to the posting"`
	Source              string `json:"source" doc:"Platform the job was found on"`
	RelevancePercentage string `json:"relevance_percentage" doc:"Relevance to the request, e.g. '85%'"`
	Explanation         string `json:"explanation,omitempty" doc:"Why the job received its score"`
}

// SearchResponse represents the response for a job search
type SearchResponse struct {
	RelevantJobs []JobResponse `json:"relevant_jobs" doc:"Jobs ranked by relevance, best first"`
	Count        int           `json:"count" doc:"Number of jobs returned"`
}

// PlatformsResponse lists the job boards the service queries
type PlatformsResponse struct {
	Platforms []string `json:"platforms" doc:"Registered platform identifiers"`
	Count     int      `json:"count" doc:"Number of platforms"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status string `json:"status" doc:"Service status"`
}
