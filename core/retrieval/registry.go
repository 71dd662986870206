// ABOUTME: SourceRegistry maps platform identifiers to their fallback chains
// ABOUTME: Adding a platform is a registry entry, not a dispatch-logic change

package retrieval

import (
	"sort"
	"sync"
)

// SourceRegistry holds the fallback chain for every registered platform.
// It is populated at startup; registration after orchestration has begun is
// safe but the new platform only participates in subsequent searches.
type SourceRegistry struct {
	mu     sync.RWMutex
	chains map[string]*FallbackChain
}

// NewSourceRegistry creates an empty registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		chains: make(map[string]*FallbackChain),
	}
}

// Register adds or replaces the chain for a platform.
func (r *SourceRegistry) Register(chain *FallbackChain) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.chains[chain.Platform()] = chain
}

// Remove deletes a platform from the registry.
func (r *SourceRegistry) Remove(platform string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.chains, platform)
}

// Chain returns the fallback chain for a platform, or nil if unregistered.
func (r *SourceRegistry) Chain(platform string) *FallbackChain {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.chains[platform]
}

// Platforms returns the registered platform identifiers in sorted order.
func (r *SourceRegistry) Platforms() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.chains))
	for name := range r.chains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
