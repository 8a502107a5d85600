package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Preferences are viewer choices that outlive a session. config.yaml seeds
// them on first run; after that the saved copy wins.
type Preferences struct {
	ShowHUD   bool    `yaml:"show_hud"`
	ShowBasis bool    `yaml:"show_basis"`
	LineWidth float32 `yaml:"line_width"`
}

const (
	preferencesObject   = "preferences"
	preferencesProperty = "viewer"
)

// PreferencesStore loads and saves Preferences through gdata. A nil manager
// keeps preferences in memory only.
type PreferencesStore struct {
	manager  *gdata.Manager
	defaults Preferences
	current  Preferences
}

// NewPreferencesStore creates a store and loads any saved preferences.
// A failed load is logged and leaves the defaults in place.
func NewPreferencesStore(manager *gdata.Manager, defaults Preferences) *PreferencesStore {
	ps := &PreferencesStore{
		manager:  manager,
		defaults: defaults,
		current:  defaults,
	}
	if err := ps.Load(); err != nil {
		log.Printf("[Settings] Warning: Failed to load preferences: %v (using defaults)", err)
	}
	return ps
}

// Load reads the saved preferences, falling back to the defaults when
// nothing is stored or the payload is unreadable.
func (ps *PreferencesStore) Load() error {
	ps.current = ps.defaults
	if ps.manager == nil || !ps.manager.ObjectPropExists(preferencesObject, preferencesProperty) {
		return nil
	}

	data, err := ps.manager.LoadObjectProp(preferencesObject, preferencesProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	loaded := ps.defaults
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	if loaded.LineWidth <= 0 {
		loaded.LineWidth = ps.defaults.LineWidth
	}

	ps.current = loaded
	log.Printf("[Settings] Preferences loaded")
	return nil
}

// Save writes the current preferences. Without a manager it is a no-op.
func (ps *PreferencesStore) Save() error {
	if ps.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(ps.current)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := ps.manager.SaveObjectProp(preferencesObject, preferencesProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	log.Printf("[Settings] Preferences saved")
	return nil
}

// Persistent reports whether Save reaches disk.
func (ps *PreferencesStore) Persistent() bool {
	return ps.manager != nil
}

func (ps *PreferencesStore) Get() Preferences {
	return ps.current
}

func (ps *PreferencesStore) ToggleHUD() {
	ps.current.ShowHUD = !ps.current.ShowHUD
}

func (ps *PreferencesStore) ToggleBasis() {
	ps.current.ShowBasis = !ps.current.ShowBasis
}

// SetLineWidth ignores non-positive widths.
func (ps *PreferencesStore) SetLineWidth(width float32) {
	if width > 0 {
		ps.current.LineWidth = width
	}
}
