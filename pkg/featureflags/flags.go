// ABOUTME: Feature flag management for toggling platforms and scoring behavior
// ABOUTME: Lets operators switch off a blocked or broken job board without a redeploy

package featureflags

import (
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags. Platform flags gate whether a job board is
// registered at startup; scrapers get blocked or break without notice, so
// each board can be switched off independently.
const (
	PlatformLinkedIn   FeatureFlag = "platform_linkedin"
	PlatformIndeed     FeatureFlag = "platform_indeed"
	PlatformGlassdoor  FeatureFlag = "platform_glassdoor"
	PlatformGoogleJobs FeatureFlag = "platform_googlejobs"
	PlatformRozee      FeatureFlag = "platform_rozee"
	PlatformRemotive   FeatureFlag = "platform_remotive"
	PlatformWebSearch  FeatureFlag = "platform_websearch"
)

// defaults holds the state a flag takes when nothing overrides it. Every
// defined flag is on by default; flags exist to turn things off.
var defaults = map[FeatureFlag]bool{
	PlatformLinkedIn:   true,
	PlatformIndeed:     true,
	PlatformGlassdoor:  true,
	PlatformGoogleJobs: true,
	PlatformRozee:      true,
	PlatformRemotive:   true,
	PlatformWebSearch:  true,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all defined flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables. A flag named
// platform_linkedin is controlled by FEATURE_PLATFORM_LINKEDIN; unset means
// the flag's default.
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, ok := m.overrides[flag]; ok {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	envKey := m.prefix + strings.ToUpper(string(flag))
	switch strings.ToLower(os.Getenv(envKey)) {
	case "true", "1", "enabled":
		return true
	case "false", "0", "disabled":
		return false
	}

	return defaults[flag]
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	flags := make(map[FeatureFlag]bool, len(defaults))
	for flag := range defaults {
		flags[flag] = m.IsEnabled(flag)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	mu    sync.RWMutex
	flags map[FeatureFlag]bool
}

// NewStaticManager creates a manager with predefined flag states. Flags not
// in the map fall back to their defaults.
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	if flags == nil {
		flags = make(map[FeatureFlag]bool)
	}
	return &StaticManager{
		flags: flags,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if enabled, ok := m.flags[flag]; ok {
		return enabled
	}
	return defaults[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	result := make(map[FeatureFlag]bool, len(defaults))
	for flag := range defaults {
		result[flag] = m.IsEnabled(flag)
	}
	return result
}
