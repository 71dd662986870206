// ABOUTME: Search-engine discovery adapter crawling result pages with colly
// ABOUTME: Last-resort tier that finds postings the boards themselves hide from us

package websearch

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/retrieval"
	"jobfinder-api/infrastructure/sources"
)

const (
	Platform = "websearch"

	defaultEndpoint = "https://html.duckduckgo.com/html/"
	userAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	defaultTimeout = 10 * time.Second
)

// jobKeywords filters search hits down to ones that look like postings.
var jobKeywords = []string{"job", "career", "position", "hiring", "vacancy", "opening"}

// Adapter discovers job postings through a search engine's HTML results.
// Colly drives the crawl with its own transport; the shared HTTP client's
// per-host limits do not apply here, so the crawl stays single-page.
type Adapter struct {
	deps     interfaces.Dependencies
	endpoint string
	timeout  time.Duration
}

func NewAdapter(deps interfaces.Dependencies) *Adapter {
	return &Adapter{
		deps:     deps,
		endpoint: defaultEndpoint,
		timeout:  defaultTimeout,
	}
}

func (a *Adapter) Tier() string { return "discovery" }

func (a *Adapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := q.Position + " jobs"
	if q.Location != "" {
		query += " in " + q.Location
	}
	if q.Nature != domain.NatureUnspecified {
		query += " " + string(q.Nature)
	}
	query += " apply career"

	values := url.Values{}
	values.Set("q", query)
	target := a.endpoint + "?" + values.Encode()

	collector := colly.NewCollector(colly.UserAgent(userAgent))
	timeout := a.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	collector.SetRequestTimeout(timeout)

	var jobs []domain.RawJob
	var fetchErr error

	collector.OnHTML("div.result", func(e *colly.HTMLElement) {
		if len(jobs) >= sources.MaxJobsPerTier {
			return
		}

		title := strings.TrimSpace(e.ChildText("a.result__a"))
		link := e.ChildAttr("a.result__a", "href")
		if title == "" || link == "" {
			return
		}
		if !looksLikeJob(title) {
			return
		}

		snippet := strings.TrimSpace(e.ChildText("a.result__snippet"))

		location := q.Location
		if location == "" {
			location = sources.NotSpecified
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:    title,
			Company:     sources.NotSpecified,
			Location:    location,
			Experience:  sources.NotSpecified,
			Salary:      sources.NotSpecified,
			ApplyLink:   link,
			Description: snippet,
			Source:      "WebSearch",
		})
	})

	collector.OnError(func(r *colly.Response, err error) {
		if r != nil && r.StatusCode != 0 {
			fetchErr = sources.ClassifyStatus(Platform, a.Tier(), r.StatusCode)
			return
		}
		fetchErr = err
	})

	if err := collector.Visit(target); err != nil && fetchErr == nil {
		fetchErr = err
	}
	collector.Wait()

	if fetchErr != nil {
		return nil, fetchErr
	}

	if a.deps.Logger != nil {
		a.deps.Logger.Debug("Search engine discovery finished", map[string]interface{}{
			"query": query,
			"jobs":  len(jobs),
		})
	}
	return jobs, nil
}

func looksLikeJob(title string) bool {
	lower := strings.ToLower(title)
	for _, kw := range jobKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
