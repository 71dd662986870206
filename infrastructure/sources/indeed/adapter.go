// ABOUTME: Indeed source adapters for the desktop and mobile HTML tiers
// ABOUTME: Mobile tier enriches results with readability-extracted descriptions

package indeed

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/retrieval"
	"jobfinder-api/infrastructure/sources"
)

const (
	Platform = "indeed"

	desktopURL = "https://www.indeed.com/jobs"
	mobileURL  = "https://www.indeed.com/m/jobs"
	viewJobURL = "https://www.indeed.com/viewjob?jk=%s"

	// Indeed caps description extraction; one page fetch per job adds up fast.
	maxDescriptionFetches = 3
	maxDescriptionLength  = 500
)

var jobKeyPattern = regexp.MustCompile(`jk=([^&]+)`)

// DesktopAdapter scrapes the desktop search results page.
type DesktopAdapter struct {
	deps interfaces.Dependencies
}

func NewDesktopAdapter(deps interfaces.Dependencies) *DesktopAdapter {
	return &DesktopAdapter{deps: deps}
}

func (a *DesktopAdapter) Tier() string { return "html" }

func (a *DesktopAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	values := url.Values{}
	values.Set("q", q.Position)
	if q.Location != "" {
		values.Set("l", q.Location)
	}
	switch q.Nature {
	case domain.NatureRemote:
		values.Set("sc", "0kf:remotejob;")
	case domain.NatureHybrid:
		values.Set("sc", "0kf:hybridjob;")
	}

	doc, err := fetchDocument(ctx, a.deps, a.Tier(), desktopURL+"?"+values.Encode())
	if err != nil {
		return nil, err
	}

	var jobs []domain.RawJob
	doc.Find("div.job_seen_beacon").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= sources.MaxJobsPerTier {
			return false
		}

		title := strings.TrimSpace(card.Find("h2.jobTitle span[title]").First().AttrOr("title", ""))
		if title == "" {
			title = strings.TrimSpace(card.Find("h2.jobTitle").First().Text())
		}
		jobKey := card.AttrOr("data-jk", "")
		if title == "" || jobKey == "" {
			return true
		}

		salary := strings.TrimSpace(card.Find("div.salary-snippet-container").First().Text())
		if salary == "" {
			salary = sources.NotSpecified
		}
		snippet := strings.TrimSpace(card.Find("div.job-snippet").First().Text())

		jobs = append(jobs, domain.RawJob{
			JobTitle:    title,
			Company:     strings.TrimSpace(card.Find("span.companyName").First().Text()),
			Location:    strings.TrimSpace(card.Find("div.companyLocation").First().Text()),
			Experience:  sources.NotSpecified,
			Salary:      salary,
			JobNature:   strings.TrimSpace(card.Find("div.attribute_snippet").First().Text()),
			ApplyLink:   fmt.Sprintf(viewJobURL, jobKey),
			Description: snippet,
			Source:      "Indeed",
		})
		return true
	})

	return jobs, nil
}

// MobileAdapter scrapes the mobile site, which is served with fewer bot
// countermeasures than the desktop one.
type MobileAdapter struct {
	deps interfaces.Dependencies
}

func NewMobileAdapter(deps interfaces.Dependencies) *MobileAdapter {
	return &MobileAdapter{deps: deps}
}

func (a *MobileAdapter) Tier() string { return "mobile" }

func (a *MobileAdapter) Attempt(ctx context.Context, q retrieval.Query) ([]domain.RawJob, error) {
	values := url.Values{}
	values.Set("q", q.Position)
	if q.Location != "" {
		values.Set("l", q.Location)
	}

	doc, err := fetchDocument(ctx, a.deps, a.Tier(), mobileURL+"?"+values.Encode())
	if err != nil {
		return nil, err
	}

	var jobs []domain.RawJob
	doc.Find(".jobsearch-ResultsList > li").EachWithBreak(func(i int, card *goquery.Selection) bool {
		if len(jobs) >= sources.MaxJobsPerTier {
			return false
		}

		title := strings.TrimSpace(card.Find("h2.jobTitle").First().Text())
		if title == "" {
			return true
		}

		jobKey := card.AttrOr("data-jk", "")
		if jobKey == "" {
			if href, ok := card.Find(`a[href*="clk"]`).First().Attr("href"); ok {
				if m := jobKeyPattern.FindStringSubmatch(href); m != nil {
					jobKey = m[1]
				}
			}
		}
		if jobKey == "" {
			return true
		}

		company := strings.TrimSpace(card.Find("span.companyName").First().Text())
		if company == "" {
			company = "Unknown Company"
		}
		location := strings.TrimSpace(card.Find("div.companyLocation").First().Text())
		if location == "" {
			location = q.Location
		}

		jobs = append(jobs, domain.RawJob{
			JobTitle:   title,
			Company:    company,
			Location:   location,
			Experience: sources.NotSpecified,
			Salary:     sources.NotSpecified,
			ApplyLink:  fmt.Sprintf(viewJobURL, jobKey),
			Source:     "Indeed",
		})
		return true
	})

	a.fillDescriptions(ctx, jobs)
	return jobs, nil
}

// fillDescriptions fetches job detail pages for the leading results and runs
// readability extraction over them. Failures leave the description empty.
func (a *MobileAdapter) fillDescriptions(ctx context.Context, jobs []domain.RawJob) {
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

		pageURL, _ := url.Parse(jobs[i].ApplyLink)
		article, err := readability.FromReader(resp.Body(), pageURL)
		resp.Body().Close()
		if err != nil {
			continue
		}

		text := strings.TrimSpace(article.TextContent)
		if len(text) > maxDescriptionLength {
			text = text[:maxDescriptionLength] + "..."
		}
		jobs[i].Description = text
	}
}

func fetchDocument(ctx context.Context, deps interfaces.Dependencies, tier, target string) (*goquery.Document, error) {
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
		return nil, sources.ParseError(Platform, tier, "failed to parse search results markup", err)
	}
	return doc, nil
}
