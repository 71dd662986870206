// ABOUTME: LinkedIn source adapters for the guest API and public HTML tiers
// ABOUTME: Parses job cards with goquery and maps work-type filters

package linkedin

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/retrieval"
	"jobfinder-api/infrastructure/sources"
)

const (
	Platform = "linkedin"

	guestAPIURL = "https://www.linkedin.com/jobs-guest/jobs/api/seeMoreJobPostings/search"
	searchURL   = "https://www.linkedin.com/jobs/search"
)

// workTypeFilter maps job nature to LinkedIn's f_WT query parameter.
func workTypeFilter(nature domain.JobNature) string {
	switch nature {
	case domain.NatureRemote:
		return "1"
	case domain.NatureOnsite:
		return "2"
	case domain.NatureHybrid:
		return "3"
	}
	return ""
}

func queryValues(q retrieval.Query) url.Values {
	values := url.Values{}
	values.Set("keywords", q.Position)
	if q.Location != "" {
		values.Set("location", q.Location)
	}
	if wt := workTypeFilter(q.Nature); wt != "" {
		values.Set("f_WT", wt)
	}
	values.Set("start", "0")
	return values
}

// parseCards extracts jobs from LinkedIn's job card markup, which the guest
// API fragment and the full search page share.
func parseCards(doc *goquery.Document) []domain.RawJob {
	var jobs []domain.RawJob

	doc.Find("div.base-card, div.job-search-card").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= sources.MaxJobsPerTier {
			return false
		}

		title := strings.TrimSpace(card.Find("h3.base-search-card__title").First().Text())
		company := strings.TrimSpace(card.Find("h4.base-search-card__subtitle").First().Text())
		location := strings.TrimSpace(card.Find("span.job-search-card__location").First().Text())
		link, _ := card.Find("a.base-card__full-link").First().Attr("href")

		if title == "" || link == "" {
			return true
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:   title,
			Company:    company,
			Location:   location,
			Experience: sources.NotSpecified,
			Salary:     sources.NotSpecified,
			ApplyLink:  strings.Split(link, "?")[0],
			Source:     "LinkedIn",
		})
		return true
	})

	return jobs
}

func fetchAndParse(ctx context.Context, deps interfaces.Dependencies, tier, target string) ([]domain.RawJob, error) {
	resp, err := deps.HTTPClient.Get(ctx, target)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		resp.Body().Close()
		return nil, sources.ClassifyStatus(Platform, tier, resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	resp.Body().Close()
	if err != nil {
		return nil, sources.ParseError(Platform, tier, "failed to parse job card markup", err)
	}

	return parseCards(doc), nil
}

// GuestAPIAdapter queries the unauthenticated guest endpoint that serves job
// card fragments. It is the cheapest tier but the quickest to get blocked.
type GuestAPIAdapter struct {
	deps interfaces.Dependencies
}

func NewGuestAPIAdapter(deps interfaces.Dependencies) *GuestAPIAdapter {
	return &GuestAPIAdapter{deps: deps}
}

func (a *GuestAPIAdapter) Tier() string { return "guest-api" }

func (a *GuestAPIAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	target := fmt.Sprintf("%s?%s", guestAPIURL, queryValues(q).Encode())
	return fetchAndParse(ctx, a.deps, a.Tier(), target)
}

// HTMLAdapter scrapes the public search page.
type HTMLAdapter struct {
	deps interfaces.Dependencies
}

func NewHTMLAdapter(deps interfaces.Dependencies) *HTMLAdapter {
	return &HTMLAdapter{deps: deps}
}

func (a *HTMLAdapter) Tier() string { return "html" }

func (a *HTMLAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	target := fmt.Sprintf("%s?%s", searchURL, queryValues(q).Encode())
	return fetchAndParse(ctx, a.deps, a.Tier(), target)
}
