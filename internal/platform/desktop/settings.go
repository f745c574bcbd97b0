package desktop

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/boxcoin/internal/config"
)

const (
	settingsObject   = "settings"
	settingsProperty = "window"

	minScale = 0.5
	maxScale = 3
)

// Settings are the desktop preferences kept between runs.
type Settings struct {
	Scale      float64 `yaml:"scale"`
	Difficulty string  `yaml:"difficulty"`
	Fullscreen bool    `yaml:"fullscreen"`
}

// DefaultSettings returns the settings used on first launch.
func DefaultSettings() Settings {
	return Settings{
		Scale:      1,
		Difficulty: string(config.DifficultyNormal),
	}
}

// normalize clamps out-of-range values loaded from disk.
func (s Settings) normalize() Settings {
	if s.Scale < minScale {
		s.Scale = minScale
	}
	if s.Scale > maxScale {
		s.Scale = maxScale
	}
	if _, err := config.ParsePreset(s.Difficulty); err != nil || s.Difficulty == "" {
		s.Difficulty = string(config.DifficultyNormal)
	}
	return s
}

// SettingsStore loads and saves Settings through gdata. A nil manager
// keeps settings in memory only.
type SettingsStore struct {
	manager  *gdata.Manager
	settings Settings
}

// OpenSettings opens the gdata storage for appName and loads the saved
// settings. A storage error is returned together with a usable in-memory
// store.
func OpenSettings(appName string) (*SettingsStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return NewSettingsStore(nil), fmt.Errorf("desktop: cannot open settings storage: %w", err)
	}
	s := NewSettingsStore(manager)
	return s, s.Load()
}

// NewSettingsStore wraps an already opened manager.
func NewSettingsStore(manager *gdata.Manager) *SettingsStore {
	return &SettingsStore{manager: manager, settings: DefaultSettings()}
}

// Load reads the saved settings, falling back to defaults when none exist.
func (s *SettingsStore) Load() error {
	s.settings = DefaultSettings()
	if s.manager == nil || !s.manager.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("desktop: cannot load settings: %w", err)
	}

	loaded := DefaultSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("desktop: cannot parse settings: %w", err)
	}
	s.settings = loaded.normalize()
	return nil
}

// Save writes the current settings.
func (s *SettingsStore) Save() error {
	if s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(s.settings)
	if err != nil {
		return fmt.Errorf("desktop: cannot encode settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("desktop: cannot save settings: %w", err)
	}
	return nil
}

// Settings returns the current settings.
func (s *SettingsStore) Settings() Settings {
	return s.settings
}

// Update replaces the current settings. Call Save to persist them.
func (s *SettingsStore) Update(settings Settings) {
	s.settings = settings.normalize()
}
