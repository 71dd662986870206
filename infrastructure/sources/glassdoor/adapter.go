// ABOUTME: Glassdoor source adapters for the partner API and listing HTML tiers
// ABOUTME: The partner API tier only runs when partner credentials are configured

package glassdoor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/retrieval"
	"jobfinder-api/infrastructure/sources"
	htmlutil "jobfinder-api/pkg/utils/html"
)

const (
	Platform = "glassdoor"

	apiURL     = "https://api.glassdoor.com/api/api.htm"
	searchURL  = "https://www.glassdoor.com/Job/jobs.htm"
	listingURL = "https://www.glassdoor.com/job-listing/"

	// One detail-page fetch per job adds up fast, same trade-off as Indeed.
	maxDescriptionFetches = 3
	maxDescriptionLength  = 500
)

// jobTypeFilter maps job nature to Glassdoor's jobType query parameter.
func jobTypeFilter(nature domain.JobNature) string {
	switch nature {
	case domain.NatureRemote:
		return "REMOTE"
	case domain.NatureOnsite:
		return "REGULAR"
	case domain.NatureHybrid:
		return "HYBRID"
	}
	return ""
}

// inferNature guesses a listing's work arrangement from its remote flag and
// description text when the board does not state one outright.
func inferNature(isRemote bool, description string) string {
	if isRemote {
		return "Remote"
	}
	lower := strings.ToLower(description)
	switch {
	case strings.Contains(lower, "remote"):
		return "Remote"
	case strings.Contains(lower, "hybrid"):
		return "Hybrid"
	case strings.Contains(lower, "on-site"), strings.Contains(lower, "onsite"),
		strings.Contains(lower, "in office"):
		return "Onsite"
	}
	return sources.NotSpecified
}

type apiListing struct {
	JobTitle string `json:"jobTitle"`
	Employer struct {
		Name string `json:"name"`
	} `json:"employer"`
	Location       string `json:"location"`
	IsRemote       bool   `json:"isRemote"`
	JobViewURL     string `json:"jobViewUrl"`
	JobDescription string `json:"jobDescription"`
	SalaryInfo     struct {
		PayPeriod  string `json:"payPeriod"`
		SalaryLow  int    `json:"salaryLow"`
		SalaryHigh int    `json:"salaryHigh"`
	} `json:"salaryInfo"`
}

func (l apiListing) salary() string {
	info := l.SalaryInfo
	switch {
	case info.SalaryLow > 0 && info.SalaryHigh > 0:
		return strings.TrimSpace(fmt.Sprintf("$%d - $%d %s", info.SalaryLow, info.SalaryHigh, info.PayPeriod))
	case info.SalaryLow > 0:
		return strings.TrimSpace(fmt.Sprintf("$%d %s", info.SalaryLow, info.PayPeriod))
	}
	return sources.NotSpecified
}

// APIAdapter queries the Glassdoor partner API. Partner credentials are
// granted per account, so the adapter is only registered when both are
// configured.
type APIAdapter struct {
	deps       interfaces.Dependencies
	partnerID  string
	partnerKey string
}

func NewAPIAdapter(deps interfaces.Dependencies, partnerID, partnerKey string) *APIAdapter {
	return &APIAdapter{deps: deps, partnerID: partnerID, partnerKey: partnerKey}
}

func (a *APIAdapter) Tier() string { return "partner-api" }

func (a *APIAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	values := url.Values{}
	values.Set("v", "1")
	values.Set("format", "json")
	values.Set("t.p", a.partnerID)
	values.Set("t.k", a.partnerKey)
	values.Set("action", "jobs-prog")
	values.Set("keyword", q.Position)
	if q.Location != "" {
		values.Set("locId", q.Location)
	}
	values.Set("countryId", "1")

	resp, err := a.deps.HTTPClient.Get(ctx, apiURL+"?"+values.Encode())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		resp.Body().Close()
		return nil, sources.ClassifyStatus(Platform, a.Tier(), resp.StatusCode())
	}

	var payload struct {
		Response struct {
			JobListings []apiListing `json:"jobListings"`
		} `json:"response"`
	}
	body, err := sources.ReadBody(resp)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, sources.ParseError(Platform, a.Tier(), "partner API response is not valid JSON", err)
	}

	var jobs []domain.RawJob
	for _, listing := range payload.Response.JobListings {
		if len(jobs) >= sources.MaxJobsPerTier {
			break
		}
		if listing.JobTitle == "" {
			continue
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:    listing.JobTitle,
			Company:     listing.Employer.Name,
			Location:    listing.Location,
			Experience:  sources.NotSpecified,
			Salary:      listing.salary(),
			JobNature:   inferNature(listing.IsRemote, listing.JobDescription),
			ApplyLink:   listing.JobViewURL,
			Description: htmlutil.Truncate(listing.JobDescription, maxDescriptionLength),
			Source:      "Glassdoor",
		})
	}

	return jobs, nil
}

// HTMLAdapter scrapes the public job search page.
type HTMLAdapter struct {
	deps interfaces.Dependencies
}

func NewHTMLAdapter(deps interfaces.Dependencies) *HTMLAdapter {
	return &HTMLAdapter{deps: deps}
}

func (a *HTMLAdapter) Tier() string { return "html" }

func (a *HTMLAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	values := url.Values{}
	values.Set("keyword", q.Position)
	values.Set("locT", "N")
	values.Set("locId", "0")
	if q.Location != "" {
		values.Set("loc", q.Location)
	}
	if jt := jobTypeFilter(q.Nature); jt != "" {
		values.Set("jobType", jt)
	}

	resp, err := a.deps.HTTPClient.Get(ctx, searchURL+"?"+values.Encode())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		resp.Body().Close()
		return nil, sources.ClassifyStatus(Platform, a.Tier(), resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body())
	resp.Body().Close()
	if err != nil {
		return nil, sources.ParseError(Platform, a.Tier(), "failed to parse listing markup", err)
	}

	var jobs []domain.RawJob
	doc.Find("li.react-job-listing").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= sources.MaxJobsPerTier {
			return false
		}

		listingID := card.AttrOr("data-id", "")
		title := strings.TrimSpace(card.Find("a.jobLink").First().Text())
		if listingID == "" || title == "" {
			return true
		}

		company := strings.TrimSpace(card.Find("div.css-1vg6q84 a").First().Text())
		if company == "" {
			company = "Unknown Company"
		}
		location := strings.TrimSpace(card.Find("span.css-3g3psg").First().Text())
		if location == "" {
			location = q.Location
		}
		salary := strings.TrimSpace(card.Find(`span[data-test="detailSalary"]`).First().Text())
		if salary == "" {
			salary = sources.NotSpecified
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:   title,
			Company:    company,
			Location:   location,
			Experience: sources.NotSpecified,
			Salary:     salary,
			JobNature:  cardNature(card),
			ApplyLink:  listingURL + listingID,
			Source:     "Glassdoor",
		})
		return true
	})

	a.fillDescriptions(ctx, jobs)
	return jobs, nil
}

// cardNature reads the work-arrangement tag off a listing card.
func cardNature(card *goquery.Selection) string {
	tag := strings.ToLower(strings.TrimSpace(card.Find("span.css-1wh2kri").First().Text()))
	switch {
	case strings.Contains(tag, "remote"):
		return "Remote"
	case strings.Contains(tag, "hybrid"):
		return "Hybrid"
	case strings.Contains(tag, "in-person"), strings.Contains(tag, "on-site"):
		return "Onsite"
	}
	return sources.NotSpecified
}

// fillDescriptions fetches listing pages for the leading results. Failures
// leave the description empty.
func (a *HTMLAdapter) fillDescriptions(ctx context.Context, jobs []domain.RawJob) {
	for i := range jobs {
		if i >= maxDescriptionFetches {
			return
		}
		if ctx.Err() != nil {
			return
		}

		resp, err := a.deps.HTTPClient.Get(ctx, jobs[i].ApplyLink)
		if err != nil {
			continue
		}
		if resp.StatusCode() != 200 {
			resp.Body().Close()
			continue
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body())
		resp.Body().Close()
		if err != nil {
			continue
		}

		text := htmlutil.CollapseWhitespace(doc.Find("div.jobDescriptionContent").First().Text())
		jobs[i].Description = htmlutil.Truncate(text, maxDescriptionLength)
	}
}
