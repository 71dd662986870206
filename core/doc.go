// Package core contains the business logic for the JobFinder API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (JobRequest, Job, ScoredJob, etc.)
// - retrieval: Per-platform fallback chains and the concurrent fan-out
// - aggregate: Deduplication and job-nature filtering
// - relevance: AI-backed relevance scoring with a deterministic fallback
// - jobsearch: The search pipeline tying retrieval, aggregation, and scoring together
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "jobfinder-api/core/jobsearch"
//	    "jobfinder-api/core/interfaces"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      cache,
//	    HTTPClient: httpClient,
//	    Logger:     logger,
//	}
//	service := jobsearch.NewService(deps, orchestrator, aggregator, scorer)
//	result, err := service.Search(ctx, req)
package core
