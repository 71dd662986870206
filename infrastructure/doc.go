// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, logging, and job board access.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: SQLite-backed cache that survives restarts
// - http/standard: HTTP client with per-host rate limiting and retry logic
// - logger/logrus: Structured JSON logger built on logrus
// - sources: Per-platform job board adapters (LinkedIn, Indeed, Rozee.pk, Remotive, web search)
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Source Adapters
//
// Each job board package exposes one adapter per retrieval tier. Adapters
// implement retrieval.SourceAdapter and are assembled into fallback chains
// at startup; the chain decides which tier runs and when to advance.
package infrastructure
