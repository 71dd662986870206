// ABOUTME: Main entry point for the JobFinder API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"jobfinder-api/api"
	"jobfinder-api/api/handlers"
	"jobfinder-api/core/aggregate"
	"jobfinder-api/core/interfaces"
	"jobfinder-api/core/jobsearch"
	"jobfinder-api/core/relevance"
	"jobfinder-api/core/retrieval"
	"jobfinder-api/infrastructure/cache/memory"
	"jobfinder-api/infrastructure/cache/redis"
	"jobfinder-api/infrastructure/cache/sqlite"
	stdhttp "jobfinder-api/infrastructure/http/standard"
	logruslogger "jobfinder-api/infrastructure/logger/logrus"
	"jobfinder-api/infrastructure/sources/glassdoor"
	"jobfinder-api/infrastructure/sources/googlejobs"
	"jobfinder-api/infrastructure/sources/indeed"
	"jobfinder-api/infrastructure/sources/linkedin"
	"jobfinder-api/infrastructure/sources/remotive"
	"jobfinder-api/infrastructure/sources/rozee"
	"jobfinder-api/infrastructure/sources/websearch"
	"jobfinder-api/pkg/config"
	"jobfinder-api/pkg/featureflags"
)

func main() {
	// Load .env if present; real environment variables take precedence
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.New(cfg.LogLevel)
	logger.Info("Starting JobFinder API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"ai_scoring": cfg.Scoring.GeminiAPIKey != "",
	})

	cache := buildCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	registry := buildRegistry(deps, cfg)

	orchestrator := retrieval.NewOrchestrator(registry, retrieval.OrchestratorConfig{
		Deadline:    cfg.Retrieval.Deadline,
		Concurrency: cfg.Retrieval.Concurrency,
	}, logger)

	aggregator := aggregate.New(aggregate.Config{
		MinNatureMatches: cfg.Aggregation.MinNatureMatches,
	}, logger)

	// The AI provider is optional; without an API key every job scores
	// through the deterministic rules.
	var provider relevance.ScoreProvider
	if cfg.Scoring.GeminiAPIKey != "" {
		provider = relevance.NewGeminiProvider(deps, relevance.GeminiConfig{
			APIKey: cfg.Scoring.GeminiAPIKey,
			Model:  cfg.Scoring.GeminiModel,
		})
	}

	scorer := relevance.NewScorer(deps, provider, relevance.ScorerConfig{
		BatchSize:    cfg.Scoring.BatchSize,
		BatchTimeout: cfg.Scoring.BatchTimeout,
		CacheTTL:     cfg.Scoring.CacheTTL,
	})

	searchService := jobsearch.NewService(deps, orchestrator, aggregator, scorer)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
	})

	searchHandler := handlers.NewSearchHandler(searchService)
	searchHandler.RegisterRoutes(humaAPI)

	platformsHandler := handlers.NewPlatformsHandler(registry)
	platformsHandler.RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Retrieval.Deadline + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache selects the cache backend. Backend failures fall back to the
// in-memory cache rather than aborting startup.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache()
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache()
	}
}

// buildRegistry registers the fallback chain for every enabled platform.
// Tier order within a chain is preference order: the cheapest, most
// structured source first, progressively heavier fallbacks after it.
// Feature flags let a blocked or broken board be switched off via
// environment variables without touching the rest of the registry.
func buildRegistry(deps interfaces.Dependencies, cfg *config.Config) *retrieval.SourceRegistry {
	chainCfg := retrieval.DefaultChainConfig()
	chainCfg.MaxRetries = cfg.Retrieval.MaxRetries

	flags := featureflags.NewEnvManager("")
	registry := retrieval.NewSourceRegistry()

	register := func(flag featureflags.FeatureFlag, platform string, adapters []retrieval.SourceAdapter) {
		if !flags.IsEnabled(flag) {
			deps.Logger.Warn("Platform disabled by feature flag", map[string]interface{}{
				"platform": platform,
			})
			return
		}
		registry.Register(retrieval.NewFallbackChain(platform, adapters, chainCfg, deps.Logger))
	}

	register(featureflags.PlatformLinkedIn, linkedin.Platform, []retrieval.SourceAdapter{
		linkedin.NewGuestAPIAdapter(deps),
		linkedin.NewHTMLAdapter(deps),
	})

	register(featureflags.PlatformIndeed, indeed.Platform, []retrieval.SourceAdapter{
		indeed.NewDesktopAdapter(deps),
		indeed.NewMobileAdapter(deps),
	})

	// The partner API tier needs credentials; without them the chain starts
	// at the scraping tier.
	glassdoorAdapters := []retrieval.SourceAdapter{}
	if cfg.Glassdoor.HasPartnerCredentials() {
		glassdoorAdapters = append(glassdoorAdapters,
			glassdoor.NewAPIAdapter(deps, cfg.Glassdoor.PartnerID, cfg.Glassdoor.PartnerKey))
	}
	glassdoorAdapters = append(glassdoorAdapters, glassdoor.NewHTMLAdapter(deps))
	register(featureflags.PlatformGlassdoor, glassdoor.Platform, glassdoorAdapters)

	register(featureflags.PlatformGoogleJobs, googlejobs.Platform, []retrieval.SourceAdapter{
		googlejobs.NewWidgetAdapter(deps),
		googlejobs.NewEmbeddedDataAdapter(deps),
	})

	register(featureflags.PlatformRozee, rozee.Platform, []retrieval.SourceAdapter{
		rozee.NewHTMLAdapter(deps),
		rozee.NewEmbeddedJSONAdapter(deps),
	})

	register(featureflags.PlatformRemotive, remotive.Platform, []retrieval.SourceAdapter{
		remotive.NewRSSAdapter(deps),
	})

	register(featureflags.PlatformWebSearch, websearch.Platform, []retrieval.SourceAdapter{
		websearch.NewAdapter(deps),
	})

	return registry
}
