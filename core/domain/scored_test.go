package domain

import "testing"

func TestNewScoredJob_ClampsScore(t *testing.T) {
	job := Job{RawJob: RawJob{JobTitle: "Engineer"}}

	tests := []struct {
		score          float64
		wantScore      float64
		wantPercentage int
	}{
		{0.5, 0.5, 50},
		{1.2, 1.0, 100},
		{-0.3, 0.0, 0},
		{0.666, 0.666, 67},
		{0.004, 0.004, 0},
	}

	for _, tt := range tests {
		scored := NewScoredJob(job, tt.score, "")
		if scored.Score != tt.wantScore {
			t.Errorf("NewScoredJob(%v) Score = %v, want %v", tt.score, scored.Score, tt.wantScore)
		}
		if scored.Percentage != tt.wantPercentage {
			t.Errorf("NewScoredJob(%v) Percentage = %d, want %d", tt.score, scored.Percentage, tt.wantPercentage)
		}
	}
}

func TestNewScoredJob_KeepsExplanation(t *testing.T) {
	job := Job{RawJob: RawJob{JobTitle: "Engineer"}}

	scored := NewScoredJob(job, 0.8, "Matched on skills and location")

	if scored.Explanation != "Matched on skills and location" {
		t.Errorf("Explanation = %q", scored.Explanation)
	}
}
