package domain

import "testing"

func TestParseNature(t *testing.T) {
	tests := []struct {
		input string
		want  JobNature
	}{
		{"remote", NatureRemote},
		{"Remote", NatureRemote},
		{"onsite", NatureOnsite},
		{"On-Site", NatureOnsite},
		{"hybrid", NatureHybrid},
		{"", NatureUnspecified},
		{"anything else", NatureUnspecified},
	}

	for _, tt := range tests {
		if got := ParseNature(tt.input); got != tt.want {
			t.Errorf("ParseNature(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeJob_TitleTakesPrecedence(t *testing.T) {
	raw := RawJob{
		JobTitle:    "Backend Engineer (Remote)",
		JobNature:   "Full-time, onsite",
		Description: "hybrid working possible",
	}

	job := NormalizeJob(raw)

	if job.Nature != NatureRemote {
		t.Errorf("Nature = %q, want %q", job.Nature, NatureRemote)
	}
}

func TestNormalizeJob_FallsBackToNatureField(t *testing.T) {
	raw := RawJob{
		JobTitle:  "Backend Engineer",
		JobNature: "Work from home",
	}

	job := NormalizeJob(raw)

	if job.Nature != NatureRemote {
		t.Errorf("Nature = %q, want %q", job.Nature, NatureRemote)
	}
}

func TestNormalizeJob_FallsBackToDescription(t *testing.T) {
	raw := RawJob{
		JobTitle:    "Backend Engineer",
		Description: "This is an in-person role at our Lahore office",
	}

	job := NormalizeJob(raw)

	if job.Nature != NatureOnsite {
		t.Errorf("Nature = %q, want %q", job.Nature, NatureOnsite)
	}
}

func TestNormalizeJob_Unspecified(t *testing.T) {
	raw := RawJob{
		JobTitle:    "Backend Engineer",
		Description: "We build distributed systems",
	}

	job := NormalizeJob(raw)

	if job.Nature != NatureUnspecified {
		t.Errorf("Nature = %q, want unspecified", job.Nature)
	}
}

func TestDedupKey_ApplyLinkWins(t *testing.T) {
	job := Job{RawJob: RawJob{
		JobTitle:  "Engineer",
		Company:   "Acme",
		Location:  "Karachi",
		ApplyLink: "https://example.com/jobs/1",
	}}

	if got := job.DedupKey(); got != "https://example.com/jobs/1" {
		t.Errorf("DedupKey() = %q, want apply link", got)
	}
}

func TestDedupKey_TupleNormalization(t *testing.T) {
	a := Job{RawJob: RawJob{JobTitle: "Backend  Engineer", Company: "ACME", Location: "Karachi"}}
	b := Job{RawJob: RawJob{JobTitle: "backend engineer", Company: "acme", Location: " karachi "}}

	if a.DedupKey() != b.DedupKey() {
		t.Errorf("keys differ: %q vs %q", a.DedupKey(), b.DedupKey())
	}
}

func TestJobRequest_Validate(t *testing.T) {
	req := &JobRequest{Position: "Backend Engineer"}
	if err := req.Validate(); err != nil {
		t.Errorf("Validate() returned error for valid request: %v", err)
	}

	empty := &JobRequest{}
	if err := empty.Validate(); err == nil {
		t.Error("Validate() should fail without a position")
	}

	negative := &JobRequest{Position: "Engineer", MaxResults: -1}
	if err := negative.Validate(); err == nil {
		t.Error("Validate() should fail with negative max results")
	}
}

func TestJobRequest_Limit(t *testing.T) {
	req := &JobRequest{Position: "Engineer"}
	if got := req.Limit(); got != DefaultMaxResults {
		t.Errorf("Limit() = %d, want default %d", got, DefaultMaxResults)
	}

	req.MaxResults = 5
	if got := req.Limit(); got != 5 {
		t.Errorf("Limit() = %d, want 5", got)
	}
}
