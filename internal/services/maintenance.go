package services

import (
	"strings"
	"sync"

	"renalog/internal/config"
)

const (
	MaintenanceModeComingSoon  = "coming-soon"
	MaintenanceModeMaintenance = "maintenance"
)

// PageStatus is the effective gate decision for one named page.
type PageStatus struct {
	Enabled             bool   `json:"enabled"`
	Mode                string `json:"mode"`
	Title               string `json:"title,omitempty"`
	Message             string `json:"message,omitempty"`
	Progress            int    `json:"progress,omitempty"`
	ExpectedDate        string `json:"expectedDate,omitempty"`
	IsGlobalMaintenance bool   `json:"isGlobalMaintenance"`
}

// MaintenanceGate decides whether a named page shows real content or a
// placeholder. It is owned by the application shell and handed to the HTTP
// layer as an explicit dependency; there is no package-level instance.
// Handlers run concurrently, so reads and writes go through an RWMutex.
type MaintenanceGate struct {
	mu            sync.RWMutex
	globalEnabled bool
	globalMessage string
	pages         map[string]config.PageConfig
}

// NewMaintenanceGate seeds the gate from startup configuration.
func NewMaintenanceGate(cfg config.MaintenanceConfig) *MaintenanceGate {
	pages := make(map[string]config.PageConfig, len(cfg.Pages))
	for key, page := range cfg.Pages {
		pages[normalizePageKey(key)] = normalizePageConfig(page)
	}
	return &MaintenanceGate{
		globalEnabled: cfg.Enabled,
		globalMessage: cfg.Message,
		pages:         pages,
	}
}

// UnderConstruction reports whether the page should show a placeholder:
// true when global maintenance is on, or when the page itself is enabled.
func (gate *MaintenanceGate) UnderConstruction(pageKey string) bool {
	gate.mu.RLock()
	defer gate.mu.RUnlock()

	if gate.globalEnabled {
		return true
	}
	return gate.pages[normalizePageKey(pageKey)].Enabled
}

// Status returns the effective configuration for the page. Global maintenance
// fully overrides per-page settings: mode is forced to "maintenance" and the
// message comes from the global message.
func (gate *MaintenanceGate) Status(pageKey string) PageStatus {
	gate.mu.RLock()
	defer gate.mu.RUnlock()

	if gate.globalEnabled {
		return PageStatus{
			Enabled:             true,
			Mode:                MaintenanceModeMaintenance,
			Message:             gate.globalMessage,
			IsGlobalMaintenance: true,
		}
	}

	page := gate.pages[normalizePageKey(pageKey)]
	return PageStatus{
		Enabled:      page.Enabled,
		Mode:         page.Mode,
		Title:        page.Title,
		Message:      page.Message,
		Progress:     page.Progress,
		ExpectedDate: page.ExpectedDate,
	}
}

// SetGlobalMaintenance toggles the process-wide override.
func (gate *MaintenanceGate) SetGlobalMaintenance(enabled bool, message string) {
	gate.mu.Lock()
	defer gate.mu.Unlock()

	gate.globalEnabled = enabled
	if strings.TrimSpace(message) != "" {
		gate.globalMessage = message
	}
}

// SetPageStatus flips one page's gate without touching its other settings.
func (gate *MaintenanceGate) SetPageStatus(pageKey string, enabled bool) {
	gate.mu.Lock()
	defer gate.mu.Unlock()

	key := normalizePageKey(pageKey)
	page := gate.pages[key]
	page.Enabled = enabled
	gate.pages[key] = normalizePageConfig(page)
}

// UpdatePage replaces one page's configuration.
func (gate *MaintenanceGate) UpdatePage(pageKey string, page config.PageConfig) {
	gate.mu.Lock()
	defer gate.mu.Unlock()

	gate.pages[normalizePageKey(pageKey)] = normalizePageConfig(page)
}

// GlobalMaintenance returns the current override state.
func (gate *MaintenanceGate) GlobalMaintenance() (bool, string) {
	gate.mu.RLock()
	defer gate.mu.RUnlock()
	return gate.globalEnabled, gate.globalMessage
}

func normalizePageKey(pageKey string) string {
	return strings.ToLower(strings.TrimSpace(pageKey))
}

func normalizePageConfig(page config.PageConfig) config.PageConfig {
	switch page.Mode {
	case MaintenanceModeComingSoon, MaintenanceModeMaintenance:
	default:
		page.Mode = MaintenanceModeComingSoon
	}
	return page
}
