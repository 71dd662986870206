// ABOUTME: Stable fingerprints over (job, request) pairs for score cache keys
// ABOUTME: Identical pairs never recompute while a valid cache entry exists

package relevance

import (
	"encoding/hex"
	"hash/fnv"
	"strings"
	"time"

	"jobfinder-api/core/domain"
)

// CacheEntry is the cached result of scoring one (job, request) pair.
type CacheEntry struct {
	Score       float64   `json:"score"`
	Explanation string    `json:"explanation"`
	Timestamp   time.Time `json:"timestamp"`
}

// Fingerprint returns a stable cache key over the semantically relevant
// fields of a job and a request. Any field that can change the score is part
// of the key, so a changed request never reuses a stale score.
func Fingerprint(req *domain.JobRequest, job *domain.Job) string {
	h := fnv.New64a()

	fields := []string{
		req.Position,
		req.Skills,
		string(req.Nature),
		req.Experience,
		req.Location,
		job.JobTitle,
		job.Company,
		string(job.Nature),
		job.Location,
		job.Experience,
	}

	for _, f := range fields {
		h.Write([]byte(strings.ToLower(strings.TrimSpace(f))))
		h.Write([]byte{0})
	}

	return "score:" + hex.EncodeToString(h.Sum(nil))
}
