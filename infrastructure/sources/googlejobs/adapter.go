// ABOUTME: Google Jobs source adapters for the jobs widget and embedded data tiers
// ABOUTME: Google ships no jobs API; both tiers scrape the search results page

package googlejobs

import (
	"context"
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/retrieval"
	"jobfinder-api/infrastructure/sources"
	htmlutil "jobfinder-api/pkg/utils/html"
)

const (
	Platform = "googlejobs"

	searchURL = "https://www.google.com/search"

	maxDescriptionLength = 500
)

// jobResultsPattern finds the structured job data some result pages embed in
// a script tag.
var jobResultsPattern = regexp.MustCompile(`(\[\{.*"job_results".*\}\])`)

func searchTarget(q retrieval.Query) string {
	query := q.Position + " jobs"
	if q.Location != "" {
		query += " in " + q.Location
	}
	if q.Nature != domain.NatureUnspecified {
		query += " " + string(q.Nature)
	}

	values := url.Values{}
	values.Set("q", query)
	// ibp targets the jobs widget instead of plain web results
	values.Set("ibp", "htl;jobs")
	values.Set("hl", "en")
	values.Set("gl", "us")
	return searchURL + "?" + values.Encode()
}

func fetchPage(ctx context.Context, deps interfaces.Dependencies, tier string, q retrieval.Query) ([]byte, error) {
	resp, err := deps.HTTPClient.Get(ctx, searchTarget(q))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		resp.Body().Close()
		return nil, sources.ClassifyStatus(Platform, tier, resp.StatusCode())
	}
	return sources.ReadBody(resp)
}

// natureFromText guesses a listing's work arrangement from its description.
func natureFromText(text string) string {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "remote"):
		return "Remote"
	case strings.Contains(lower, "hybrid"):
		return "Hybrid"
	case strings.Contains(lower, "on-site"), strings.Contains(lower, "onsite"),
		strings.Contains(lower, "in office"), strings.Contains(lower, "in-person"):
		return "Onsite"
	}
	return sources.NotSpecified
}

// WidgetAdapter parses the jobs widget markup. Google rotates its class names
// without notice, so every field checks a list of selectors.
type WidgetAdapter struct {
	deps interfaces.Dependencies
}

func NewWidgetAdapter(deps interfaces.Dependencies) *WidgetAdapter {
	return &WidgetAdapter{deps: deps}
}

func (a *WidgetAdapter) Tier() string { return "jobs-widget" }

func (a *WidgetAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	page, err := fetchPage(ctx, a.deps, a.Tier(), q)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	if err != nil {
		return nil, sources.ParseError(Platform, a.Tier(), "failed to parse results markup", err)
	}

	cards := doc.Find("div.iFjolb")
	if cards.Length() == 0 {
		cards = doc.Find("div.mnr-c, div.g, div.tF2Cxc")
	}

	var jobs []domain.RawJob
	cards.EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= sources.MaxJobsPerTier {
			return false
		}

		title := firstText(card, "div.BjJfJf", "h3")
		if title == "" {
			return true
		}

		company := firstText(card, "div.vNEEBe", "div.HnYYW")
		if company == "" {
			company = "Unknown Company"
		}
		location := firstText(card, "div.Qk80Jf")
		if location == "" {
			location = q.Location
		}
		salary := firstText(card, "div.SuWscb")
		if salary == "" {
			salary = sources.NotSpecified
		}
		description := firstText(card, "div.yDiU8d")

		link := card.Find("a").First().AttrOr("href", "")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = "https://www.google.com" + link
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:    title,
			Company:     company,
			Location:    location,
			Experience:  sources.NotSpecified,
			Salary:      salary,
			JobNature:   natureFromText(description),
			ApplyLink:   link,
			Description: description,
			Source:      "Google Jobs",
		})
		return true
	})

	return jobs, nil
}

func firstText(card *goquery.Selection, selectors ...string) string {
	for _, selector := range selectors {
		if text := strings.TrimSpace(card.Find(selector).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

type embeddedJob struct {
	Title       string `json:"title"`
	CompanyName string `json:"company_name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Snippet     string `json:"snippet"`
	ApplyLink   string `json:"apply_link"`
	JobURL      string `json:"job_url"`
	Salary      string `json:"salary"`
}

type embeddedBlock struct {
	JobResults struct {
		Results []embeddedJob `json:"results"`
	} `json:"job_results"`
}

// EmbeddedDataAdapter extracts the structured job data embedded in the page.
// Runs after the widget tier because not every results page carries it.
type EmbeddedDataAdapter struct {
	deps interfaces.Dependencies
}

func NewEmbeddedDataAdapter(deps interfaces.Dependencies) *EmbeddedDataAdapter {
	return &EmbeddedDataAdapter{deps: deps}
}

func (a *EmbeddedDataAdapter) Tier() string { return "embedded-json" }

func (a *EmbeddedDataAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	page, err := fetchPage(ctx, a.deps, a.Tier(), q)
	if err != nil {
		return nil, err
	}

	match := jobResultsPattern.FindSubmatch(page)
	if match == nil {
		return nil, nil
	}

	var blocks []embeddedBlock
	if err := json.Unmarshal(match[1], &blocks); err != nil {
		return nil, sources.ParseError(Platform, a.Tier(), "embedded job data is not valid JSON", err)
	}

	var jobs []domain.RawJob
	for _, block := range blocks {
		for _, entry := range block.JobResults.Results {
			if len(jobs) >= sources.MaxJobsPerTier {
				return jobs, nil
			}
			if entry.Title == "" {
				continue
			}

			description := entry.Description
			if description == "" {
				description = entry.Snippet
			}
			link := entry.ApplyLink
			if link == "" {
				link = entry.JobURL
			}
			salary := entry.Salary
			if salary == "" {
				salary = sources.NotSpecified
			}
			location := entry.Location
			if location == "" {
				location = q.Location
			}

			jobs = append(jobs, domain.RawJob{
				JobTitle:    entry.Title,
				Company:     entry.CompanyName,
				Location:    location,
				Experience:  sources.NotSpecified,
				Salary:      salary,
				JobNature:   natureFromText(description),
				ApplyLink:   link,
				Description: htmlutil.Truncate(description, maxDescriptionLength),
				Source:      "Google Jobs",
			})
		}
	}

	return jobs, nil
}
