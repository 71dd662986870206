// ABOUTME: Deterministic rule-based fallback scorer, always available
// ABOUTME: Weighted factors with a hard nature-mismatch gate, no external calls

package relevance

import (
	"regexp"
	"strconv"
	"strings"

	"jobfinder-api/core/domain"
)

// Weights for the rule-based score. The nature gate dominates: a mismatch
// caps the total at natureMismatchCap no matter what else matches.
const (
	ruleBaseScore     = 0.3
	natureMatchBonus  = 0.4
	natureMismatchCap = 0.3
	titleExactBonus   = 0.3
	titlePartialBonus = 0.15
	skillsMaxBonus    = 0.2
	locationBonus     = 0.1
	experienceBonus   = 0.1
)

var yearsPattern = regexp.MustCompile(`\b(\d+)\+?\s*(?:year|yr)s?\b`)

// RuleScore computes the deterministic fallback relevance of one job against
// one request. The score is always in [0, 1] and the explanation names the
// factors that matched.
func RuleScore(req *domain.JobRequest, job *domain.Job) (float64, string) {
	score := ruleBaseScore
	var matched []string
	natureMismatch := false

	if req.Nature != domain.NatureUnspecified && job.Nature != domain.NatureUnspecified {
		if job.Nature == req.Nature {
			score += natureMatchBonus
			matched = append(matched, "job nature")
		} else {
			natureMismatch = true
		}
	}

	position := strings.ToLower(req.Position)
	title := strings.ToLower(job.JobTitle)
	if strings.Contains(title, position) {
		score += titleExactBonus
		matched = append(matched, "title")
	} else if wordsOverlap(position, title) {
		score += titlePartialBonus
		matched = append(matched, "title keywords")
	}

	if req.Skills != "" && job.Description != "" {
		if frac := skillsFraction(req.Skills, job.Description); frac > 0 {
			score += skillsMaxBonus * frac
			matched = append(matched, "skills")
		}
	}

	if req.Location != "" && job.Location != "" && locationMatches(req.Location, job.Location) {
		score += locationBonus
		matched = append(matched, "location")
	}

	if req.Experience != "" && job.Experience != "" {
		userYears, okUser := extractYears(req.Experience)
		jobYears, okJob := extractYears(job.Experience)
		if okUser && okJob && jobYears <= userYears {
			score += experienceBonus
			matched = append(matched, "experience")
		}
	}

	if natureMismatch && score > natureMismatchCap {
		score = natureMismatchCap
	}
	if score > 1.0 {
		score = 1.0
	}
	if score < 0.0 {
		score = 0.0
	}

	return score, ruleExplanation(matched, natureMismatch)
}

// ruleExplanation renders the templated explanation for a rule-based score.
func ruleExplanation(matched []string, natureMismatch bool) string {
	var explanation string
	switch len(matched) {
	case 0:
		explanation = "No strong match against the search criteria"
	case 1:
		explanation = "Matched on " + matched[0]
	default:
		explanation = "Matched on " + strings.Join(matched[:len(matched)-1], ", ") + " and " + matched[len(matched)-1]
	}

	if natureMismatch {
		explanation += " (score capped for job nature mismatch)"
	}

	return explanation
}

// wordsOverlap reports whether any word of the position appears in the title.
func wordsOverlap(position, title string) bool {
	for _, word := range strings.Fields(position) {
		if strings.Contains(title, word) {
			return true
		}
	}
	return false
}

// skillsFraction returns the fraction of requested skills mentioned in the
// job description.
func skillsFraction(skills, description string) float64 {
	descLower := strings.ToLower(description)

	parts := strings.Split(skills, ",")
	total, hits := 0, 0
	for _, part := range parts {
		skill := strings.ToLower(strings.TrimSpace(part))
		if skill == "" {
			continue
		}
		total++
		if strings.Contains(descLower, skill) {
			hits++
		}
	}

	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// locationMatches checks whether any comma-separated part of the requested
// location is contained in the job's location.
func locationMatches(requested, actual string) bool {
	actualLower := strings.ToLower(actual)
	for _, part := range strings.Split(strings.ToLower(requested), ",") {
		part = strings.TrimSpace(part)
		if part != "" && strings.Contains(actualLower, part) {
			return true
		}
	}
	return false
}

// extractYears pulls the first "N years" figure out of an experience string.
func extractYears(experience string) (int, bool) {
	match := yearsPattern.FindStringSubmatch(strings.ToLower(experience))
	if match == nil {
		return 0, false
	}
	years, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return years, true
}
