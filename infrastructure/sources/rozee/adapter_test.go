package rozee

import (
	"context"
	"io"
	"strings"
	"testing"

	"jobfinder-api/core/domain"
	"jobfinder-api/core/errors"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/retrieval"
)

type mockHTTPClient struct {
	lastURL string
	status  int
	body    string
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.lastURL = url
	return &mockResponse{status: m.status, body: m.body}, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, nil
}

type mockResponse struct {
	status int
	body   string
}

func (m *mockResponse) StatusCode() int          { return m.status }
func (m *mockResponse) Body() io.ReadCloser      { return io.NopCloser(strings.NewReader(m.body)) }
func (m *mockResponse) Header(key string) string { return "" }

const listingHTML = `
<ul>
  <li class="job-listing">
    <h3 class="job-title"><a href="/job/view/987">Software Engineer</a></h3>
    <h4 class="company"><a href="/company/acme">Acme Pakistan</a></h4>
    <span class="location">Islamabad</span>
    <span class="exp">2 years</span>
    <span class="salary">PKR 150k</span>
    <span class="job-type">Work from Home</span>
    <div class="desc">Build backend services.</div>
  </li>
</ul>`

const scriptHTML = `
<html><body>
<script>
var joblist = [{"id":"555","title":"DevOps Engineer","company":"Initech","experience":"3 years","job_type":"Full-time","location":"Karachi","salary":"","description":"Run the platform."}];
</script>
</body></html>`

func TestHTMLAdapterParsesListings(t *testing.T) {
	client := &mockHTTPClient{status: 200, body: listingHTML}
	adapter := NewHTMLAdapter(interfaces.Dependencies{HTTPClient: client})

	jobs, err := adapter.Attempt(context.Background(), retrieval.Query{
		Position: "software engineer",
		Location: "Islamabad",
		Nature:   domain.NatureRemote,
	})
	if err != nil {
		t.Fatalf("Attempt returned error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}

	job := jobs[0]
	if job.JobTitle != "Software Engineer" {
		t.Errorf("JobTitle = %q", job.JobTitle)
	}
	if job.ApplyLink != "https://www.rozee.pk/job/view/987" {
		t.Errorf("expected relative link resolved, got %q", job.ApplyLink)
	}
	if job.JobNature != "Work from Home" {
		t.Errorf("JobNature = %q", job.JobNature)
	}
	if job.Source != "Rozee.pk" {
		t.Errorf("Source = %q", job.Source)
	}

	if !strings.Contains(client.lastURL, "job_type=12") {
		t.Errorf("expected remote filter in URL, got %q", client.lastURL)
	}
	if !strings.Contains(client.lastURL, "by=title") {
		t.Errorf("expected title search mode in URL, got %q", client.lastURL)
	}
}

func TestEmbeddedJSONAdapterExtractsJoblist(t *testing.T) {
	client := &mockHTTPClient{status: 200, body: scriptHTML}
	adapter := NewEmbeddedJSONAdapter(interfaces.Dependencies{HTTPClient: client})

	jobs, err := adapter.Attempt(context.Background(), retrieval.Query{Position: "devops"})
	if err != nil {
		t.Fatalf("Attempt returned error: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job from script data, got %d", len(jobs))
	}

	job := jobs[0]
	if job.JobTitle != "DevOps Engineer" {
		t.Errorf("JobTitle = %q", job.JobTitle)
	}
	if job.ApplyLink != "https://www.rozee.pk/job/view/555" {
		t.Errorf("ApplyLink = %q", job.ApplyLink)
	}
	if job.Salary != "Not specified" {
		t.Errorf("expected empty salary filled, got %q", job.Salary)
	}
}

func TestEmbeddedJSONAdapterConfirmedEmpty(t *testing.T) {
	client := &mockHTTPClient{status: 200, body: "<html><body>no script here</body></html>"}
	adapter := NewEmbeddedJSONAdapter(interfaces.Dependencies{HTTPClient: client})

	jobs, err := adapter.Attempt(context.Background(), retrieval.Query{Position: "devops"})
	if err != nil {
		t.Fatalf("expected confirmed-empty success, got error: %v", err)
	}
	if len(jobs) != 0 {
		t.Errorf("expected no jobs, got %d", len(jobs))
	}
}

func TestEmbeddedJSONAdapterRejectsGarbledData(t *testing.T) {
	client := &mockHTTPClient{status: 200, body: "<script>var joblist = [{broken];</script>"}
	adapter := NewEmbeddedJSONAdapter(interfaces.Dependencies{HTTPClient: client})

	_, err := adapter.Attempt(context.Background(), retrieval.Query{Position: "devops"})
	retrErr, ok := errors.AsRetrieval(err)
	if !ok {
		t.Fatalf("expected RetrievalError, got %v", err)
	}
	if retrErr.Kind != errors.ParseError {
		t.Errorf("Kind = %q, want parse_error", retrErr.Kind)
	}
}

func TestHTMLAdapterClassifiesBlocked(t *testing.T) {
	client := &mockHTTPClient{status: 403}
	adapter := NewHTMLAdapter(interfaces.Dependencies{HTTPClient: client})

	_, err := adapter.Attempt(context.Background(), retrieval.Query{Position: "engineer"})
	retrErr, ok := errors.AsRetrieval(err)
	if !ok {
		t.Fatalf("expected RetrievalError, got %v", err)
	}
	if retrErr.Kind != errors.Blocked {
		t.Errorf("Kind = %q, want blocked", retrErr.Kind)
	}
}
