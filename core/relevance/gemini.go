// ABOUTME: Gemini-backed ScoreProvider calling the generateContent REST endpoint
// ABOUTME: Parses SCORE/EXPLANATION lines per job and clamps nature mismatches

package relevance

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/errors"
	"jobfinder-api/core/interfaces"
)

// GeminiConfig holds the external scoring model settings.
type GeminiConfig struct {
	// APIKey authenticates against the model endpoint
	APIKey string

	// Model is the model identifier (e.g. "gemini-2.0-flash")
	Model string

	// Endpoint is the API base URL, overridable for tests
	Endpoint string
}

// DefaultGeminiEndpoint is the production API base.
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com"

// GeminiProvider implements ScoreProvider against the Gemini REST API.
type GeminiProvider struct {
	deps   interfaces.Dependencies
	config GeminiConfig
}

// NewGeminiProvider creates a provider. It does not validate the key; auth
// failures surface per batch and route jobs to the fallback scorer.
func NewGeminiProvider(deps interfaces.Dependencies, config GeminiConfig) *GeminiProvider {
	if config.Endpoint == "" {
		config.Endpoint = DefaultGeminiEndpoint
	}
	if config.Model == "" {
		config.Model = "gemini-2.0-flash"
	}
	return &GeminiProvider{deps: deps, config: config}
}

// Wire shapes for the generateContent call; only the fields we use.
type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents []generateContent `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

// ScoreBatch sends one prompt covering the whole batch and parses one
// SCORE/EXPLANATION pair per job.
func (p *GeminiProvider) ScoreBatch(ctx context.Context, req *domain.JobRequest, jobs []domain.Job) ([]*Assessment, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	body := generateRequest{
		Contents: []generateContent{{
			Parts: []generatePart{{Text: buildPrompt(req, jobs)}},
		}},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &errors.ScoringError{Kind: errors.ResponseParseError, Message: "failed to encode request", Err: err}
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", p.config.Endpoint, p.config.Model, p.config.APIKey)

	resp, err := p.deps.HTTPClient.Post(ctx, url, bytes.NewReader(payload))
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) {
			return nil, &errors.ScoringError{Kind: errors.BatchTimeout, Message: "scoring batch timed out", Err: err}
		}
		return nil, &errors.ScoringError{Kind: errors.ProviderUnavailable, Message: "model endpoint unreachable", Err: err}
	}
	defer resp.Body().Close()

	switch {
	case resp.StatusCode() == 401 || resp.StatusCode() == 403:
		return nil, &errors.ScoringError{Kind: errors.ProviderAuthFailure, Message: fmt.Sprintf("model endpoint returned %d", resp.StatusCode())}
	case resp.StatusCode() != 200:
		return nil, &errors.ScoringError{Kind: errors.ProviderUnavailable, Message: fmt.Sprintf("model endpoint returned %d", resp.StatusCode())}
	}

	raw, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.ScoringError{Kind: errors.ProviderUnavailable, Message: "failed to read response", Err: err}
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &errors.ScoringError{Kind: errors.ResponseParseError, Message: "response is not valid JSON", Err: err}
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return nil, &errors.ScoringError{Kind: errors.ResponseParseError, Message: "response has no content"}
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	assessments := parseAssessments(text, len(jobs))

	// The model sometimes over-scores nature mismatches; clamp regardless
	for i, a := range assessments {
		if a == nil {
			continue
		}
		assessments[i] = clampNatureMismatch(a, req, &jobs[i])
	}

	return assessments, nil
}

// buildPrompt encodes the five weighted factors and the batch of jobs.
// The reply contract is one "JOB n / SCORE / EXPLANATION" block per job.
func buildPrompt(req *domain.JobRequest, jobs []domain.Job) string {
	var b strings.Builder

	b.WriteString("You are a professional job recruiter matching job seekers with positions.\n")
	b.WriteString("Score each job posting below against the candidate's requirements, 0-100.\n")
	b.WriteString("Consider, in order of importance:\n")
	b.WriteString("1. Job nature (remote/onsite/hybrid) - if it does not match the requested nature the score MUST be 30 or lower\n")
	b.WriteString("2. Position title similarity\n")
	b.WriteString("3. Skills overlap with the description\n")
	b.WriteString("4. Experience level proximity\n")
	b.WriteString("5. Location match\n\n")

	b.WriteString("CANDIDATE REQUIREMENTS:\n")
	fmt.Fprintf(&b, "Position: %s\n", req.Position)
	fmt.Fprintf(&b, "Skills: %s\n", orUnspecified(req.Skills))
	fmt.Fprintf(&b, "Experience: %s\n", orUnspecified(req.Experience))
	fmt.Fprintf(&b, "Job Nature: %s\n", orUnspecified(string(req.Nature)))
	fmt.Fprintf(&b, "Location: %s\n\n", orUnspecified(req.Location))

	for i, job := range jobs {
		fmt.Fprintf(&b, "JOB %d:\n", i+1)
		fmt.Fprintf(&b, "Title: %s\n", job.JobTitle)
		fmt.Fprintf(&b, "Company: %s\n", job.Company)
		fmt.Fprintf(&b, "Job Nature: %s\n", orUnspecified(string(job.Nature)))
		fmt.Fprintf(&b, "Experience: %s\n", orUnspecified(job.Experience))
		fmt.Fprintf(&b, "Location: %s\n", orUnspecified(job.Location))
		fmt.Fprintf(&b, "Description: %s\n\n", orUnspecified(job.Description))
	}

	b.WriteString("Reply with exactly one block per job, in this format:\n")
	b.WriteString("JOB 1\nSCORE: <0-100>\nEXPLANATION: <one short sentence>\n")

	return b.String()
}

func orUnspecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}

var assessmentPattern = regexp.MustCompile(`(?s)JOB\s+(\d+)\s*\n\s*SCORE:\s*(\d+(?:\.\d+)?)\s*\n\s*EXPLANATION:\s*([^\n]*)`)

// parseAssessments extracts per-job blocks from the model's reply. Jobs the
// model skipped or garbled stay nil and fall back to the rule scorer.
func parseAssessments(text string, count int) []*Assessment {
	assessments := make([]*Assessment, count)

	for _, match := range assessmentPattern.FindAllStringSubmatch(text, -1) {
		index, err := strconv.Atoi(match[1])
		if err != nil || index < 1 || index > count {
			continue
		}

		score, err := strconv.ParseFloat(match[2], 64)
		if err != nil || score < 0 || score > 100 {
			continue
		}

		assessments[index-1] = &Assessment{
			Score:       score / 100.0,
			Explanation: strings.TrimSpace(match[3]),
		}
	}

	return assessments
}

// clampNatureMismatch enforces the nature gate on the model's answer: a
// mismatched job never scores above 0.30.
func clampNatureMismatch(a *Assessment, req *domain.JobRequest, job *domain.Job) *Assessment {
	if req.Nature == domain.NatureUnspecified || job.Nature == domain.NatureUnspecified {
		return a
	}
	if job.Nature == req.Nature || a.Score <= 0.30 {
		return a
	}

	clamped := a.Score * 0.3
	if clamped > 0.30 {
		clamped = 0.30
	}

	return &Assessment{
		Score:       clamped,
		Explanation: a.Explanation + " (score reduced for job nature mismatch)",
	}
}
