package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/plasmaship/components"
	cfg "github.com/automoto/plasmaship/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SettingsStore is the storage behind LoadSettings and SaveSettings.
// *gdata.Manager satisfies it.
type SettingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore SettingsStore

// InitPersistence opens the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	settingsStore = m
	return nil
}

// SetSettingsStore replaces the settings storage. Passing nil disables
// persistence.
func SetSettingsStore(s SettingsStore) {
	settingsStore = s
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// was saved yet or persistence is off.
func LoadSettings() (*components.SettingsData, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings components.SettingsData
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *components.SettingsData) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live settings and writes them out.
func SaveCurrentSettings(e *ecs.ECS) {
	_ = SaveSettings(GetOrCreateSettings(e))
}

// ApplySavedSettings copies loaded settings into the ECS singletons.
func ApplySavedSettings(e *ecs.ECS, saved *components.SettingsData) {
	if saved == nil {
		return
	}
	*GetOrCreateSettings(e) = *saved

	SetSFXVolume(e, saved.SFXVolume)
	GetOrCreateAudio(e).Muted = saved.Muted
	cfg.Debug.ShowColliders = saved.ShowColliders
}

// DefaultSettings returns the settings used when nothing was saved.
func DefaultSettings() *components.SettingsData {
	return &components.SettingsData{
		SFXVolume:     cfg.Audio.DefaultSFXVol,
		ShowColliders: cfg.Debug.ShowColliders,
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeded
// from config on first use.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, *DefaultSettings())
	}
	return components.Settings.Get(entry)
}
