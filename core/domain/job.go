// ABOUTME: Job domain models for raw and normalized job postings
// ABOUTME: Provides the nature classifier and the dedup identity key

package domain

import "strings"

// JobNature is the normalized work-arrangement classification of a posting.
type JobNature string

const (
	NatureOnsite      JobNature = "onsite"
	NatureRemote      JobNature = "remote"
	NatureHybrid      JobNature = "hybrid"
	NatureUnspecified JobNature = ""
)

// ParseNature maps a caller-supplied nature string to a JobNature.
// Unknown values map to NatureUnspecified.
func ParseNature(s string) JobNature {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "onsite", "on-site":
		return NatureOnsite
	case "remote":
		return NatureRemote
	case "hybrid":
		return NatureHybrid
	default:
		return NatureUnspecified
	}
}

// RawJob is a job posting as produced by a source adapter.
// JobNature is the platform's own wording and not yet normalized.
type RawJob struct {
	JobTitle    string
	Company     string
	Location    string
	Experience  string
	Salary      string
	JobNature   string
	ApplyLink   string
	Description string
	Source      string
}

// Job is a RawJob whose nature has been normalized into the four-way enum.
type Job struct {
	RawJob

	// Nature is the normalized work arrangement
	Nature JobNature
}

// Keyword lists for the nature classifier, most reliable signal first.
var (
	remoteKeywords = []string{"remote", "work from home", "wfh", "virtual"}
	hybridKeywords = []string{"hybrid", "flexible", "part remote"}
	onsiteKeywords = []string{"onsite", "on-site", "in office", "in-office", "on location", "in-person"}
)

// NormalizeJob classifies the raw nature string into the four-way enum.
// The title is checked first (most reliable), then the platform's nature
// field, then the description.
func NormalizeJob(raw RawJob) Job {
	job := Job{RawJob: raw}

	for _, field := range []string{raw.JobTitle, raw.JobNature, raw.Description} {
		if nature := classifyNature(field); nature != NatureUnspecified {
			job.Nature = nature
			return job
		}
	}

	return job
}

// classifyNature matches one text field against the keyword lists.
func classifyNature(text string) JobNature {
	lower := strings.ToLower(text)

	if containsAny(lower, remoteKeywords) {
		return NatureRemote
	}
	if containsAny(lower, hybridKeywords) {
		return NatureHybrid
	}
	if containsAny(lower, onsiteKeywords) {
		return NatureOnsite
	}

	return NatureUnspecified
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// DedupKey returns the identity key used for deduplication.
// The apply link takes precedence when present; otherwise the key is the
// lower-cased, whitespace-collapsed (title, company, location) tuple.
func (j *Job) DedupKey() string {
	if j.ApplyLink != "" {
		return j.ApplyLink
	}

	parts := []string{j.JobTitle, j.Company, j.Location}
	for i, p := range parts {
		parts[i] = strings.Join(strings.Fields(strings.ToLower(p)), " ")
	}
	return strings.Join(parts, "|")
}
