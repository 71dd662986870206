// ABOUTME: Remotive source adapter reading the board's RSS feed with gofeed
// ABOUTME: Every posting on this board is remote by definition

package remotive

import (
	"context"
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/retrieval"
	"jobfinder-api/infrastructure/sources"
	htmlutil "jobfinder-api/pkg/utils/html"
)

const (
	Platform = "remotive"

	feedURL = "https://remotive.com/remote-jobs/feed"

	maxDescriptionLength = 500
)

// RSSAdapter fetches and parses the job feed. A single tier is enough; RSS
// is not bot-gated the way listing pages are.
type RSSAdapter struct {
	deps   interfaces.Dependencies
	parser *gofeed.Parser
}

func NewRSSAdapter(deps interfaces.Dependencies) *RSSAdapter {
	return &RSSAdapter{
		deps:   deps,
		parser: gofeed.NewParser(),
	}
}

func (a *RSSAdapter) Tier() string { return "rss" }

func (a *RSSAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	values := url.Values{}
	values.Set("search", q.Position)

	resp, err := a.deps.HTTPClient.Get(ctx, feedURL+"?"+values.Encode())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		resp.Body().Close()
		return nil, sources.ClassifyStatus(Platform, a.Tier(), resp.StatusCode())
	}

	body, err := sources.ReadBody(resp)
	if err != nil {
		return nil, err
	}

	feed, err := a.parser.ParseString(string(body))
	if err != nil {
		return nil, sources.ParseError(Platform, a.Tier(), "feed is not valid RSS", err)
	}

	var jobs []domain.RawJob
	for _, item := range feed.Items {
		if len(jobs) >= sources.MaxJobsPerTier {
			break
		}
		if item.Title == "" || item.Link == "" {
			continue
		}

		title, company := splitTitle(item.Title)

		// Feed descriptions arrive as HTML fragments
		description := htmlutil.Truncate(htmlutil.StripHTML(item.Description), maxDescriptionLength)

		location := "Remote"
		if len(item.Categories) > 0 {
			location = item.Categories[0]
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:    title,
			Company:     company,
			Location:    location,
			Experience:  sources.NotSpecified,
			Salary:      sources.NotSpecified,
			JobNature:   "Remote",
			ApplyLink:   item.Link,
			Description: description,
			Source:      "Remotive",
		})
	}

	return jobs, nil
}

// splitTitle separates "Position at Company" and "Company: Position" feed
// title forms. Returns the raw title when neither form matches.
func splitTitle(raw string) (title, company string) {
	if idx := strings.LastIndex(raw, " at "); idx > 0 {
		return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+4:])
	}
	if idx := strings.Index(raw, ": "); idx > 0 {
		return strings.TrimSpace(raw[idx+2:]), strings.TrimSpace(raw[:idx])
	}
	return strings.TrimSpace(raw), ""
}
