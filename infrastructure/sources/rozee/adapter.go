// ABOUTME: Rozee.pk source adapters for the listing HTML and embedded JSON tiers
// ABOUTME: The board embeds a joblist array in a script tag when cards are absent

package rozee

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
	Platform = "rozee"

	searchURL = "https://www.rozee.pk/job/jsearch"
	viewURL   = "https://www.rozee.pk/job/view/"
)

var joblistPattern = regexp.MustCompile(`(?s)var joblist\s*=\s*(\[.*?\]);`)

// natureFilter maps job nature to Rozee's job_type query parameter.
func natureFilter(nature domain.JobNature) string {
	switch nature {
	case domain.NatureRemote:
		return "12"
	case domain.NatureOnsite:
		return "1"
	case domain.NatureHybrid:
		return "11"
	}
	return ""
}

func searchTarget(q retrieval.Query) string {
	values := url.Values{}
	values.Set("q", q.Position)
	values.Set("by", "title")
	if q.Location != "" {
		values.Set("loc", q.Location)
	}
	if jt := natureFilter(q.Nature); jt != "" {
		values.Set("job_type", jt)
	}
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

// HTMLAdapter parses job listing cards from the search page.
type HTMLAdapter struct {
	deps interfaces.Dependencies
}

func NewHTMLAdapter(deps interfaces.Dependencies) *HTMLAdapter {
	return &HTMLAdapter{deps: deps}
}

func (a *HTMLAdapter) Tier() string { return "html" }

func (a *HTMLAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	page, err := fetchPage(ctx, a.deps, a.Tier(), q)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(page)))
	if err != nil {
		return nil, sources.ParseError(Platform, a.Tier(), "failed to parse listing markup", err)
	}

	var jobs []domain.RawJob
	doc.Find("li.job-listing, div.job-box").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= sources.MaxJobsPerTier {
			return false
		}

		titleElem := card.Find("h3.job-title a, h3 a").First()
		title := strings.TrimSpace(titleElem.Text())
		link := titleElem.AttrOr("href", "")
		if title == "" {
			return true
		}
		if strings.HasPrefix(link, "/") {
			link = "https://www.rozee.pk" + link
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:    title,
			Company:     textOr(card, "h4.company a, div.company a", "Unknown Company"),
			Location:    textOr(card, "span.location, div.location", q.Location),
			Experience:  textOr(card, "span.exp, div.exp", sources.NotSpecified),
			Salary:      textOr(card, "span.salary, div.salary", sources.NotSpecified),
			JobNature:   textOr(card, "span.job-type, div.job-type", ""),
			ApplyLink:   link,
			Description: textOr(card, "div.desc, div.job-desc", ""),
			Source:      "Rozee.pk",
		})
		return true
	})

	return jobs, nil
}

func textOr(card *goquery.Selection, selector, fallback string) string {
	if text := strings.TrimSpace(card.Find(selector).First().Text()); text != "" {
		return text
	}
	return fallback
}

type joblistEntry struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Experience  string `json:"experience"`
	JobType     string `json:"job_type"`
	Location    string `json:"location"`
	Salary      string `json:"salary"`
	Description string `json:"description"`
}

// EmbeddedJSONAdapter extracts the joblist array the board ships in a script
// tag. Runs after the HTML tier because the markup changes more often than
// the embedded data.
type EmbeddedJSONAdapter struct {
	deps interfaces.Dependencies
}

func NewEmbeddedJSONAdapter(deps interfaces.Dependencies) *EmbeddedJSONAdapter {
	return &EmbeddedJSONAdapter{deps: deps}
}

func (a *EmbeddedJSONAdapter) Tier() string { return "embedded-json" }

func (a *EmbeddedJSONAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	page, err := fetchPage(ctx, a.deps, a.Tier(), q)
	if err != nil {
		return nil, err
	}

	match := joblistPattern.FindSubmatch(page)
	if match == nil {
		return nil, nil
	}

	var entries []joblistEntry
	if err := json.Unmarshal(match[1], &entries); err != nil {
		return nil, sources.ParseError(Platform, a.Tier(), "joblist script data is not valid JSON", err)
	}

	var jobs []domain.RawJob
	for _, entry := range entries {
		if len(jobs) >= sources.MaxJobsPerTier {
			break
		}
		if entry.Title == "" {
			continue
		}

		experience := entry.Experience
		if experience == "" {
			experience = sources.NotSpecified
		}
		salary := entry.Salary
		if salary == "" {
			salary = sources.NotSpecified
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:    entry.Title,
			Company:     entry.Company,
			Location:    entry.Location,
			Experience:  experience,
			Salary:      salary,
			JobNature:   entry.JobType,
			ApplyLink:   viewURL + entry.ID,
			Description: htmlutil.StripHTML(entry.Description),
			Source:      "Rozee.pk",
		})
	}

	return jobs, nil
}
