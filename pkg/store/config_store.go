package store

import (
	"fyne.io/fyne/v2"
	"github.com/borgmon/week-scheduler/pkg/models"
	"github.com/goccy/go-json"
)

const (
	prefAutoStart   = "auto_start"
	prefDataSources = "data_sources"
)

// SettingsStore handles settings persistence using Fyne preferences
type SettingsStore struct {
	prefs fyne.Preferences
}

// NewSettingsStore creates a new SettingsStore instance
func NewSettingsStore(app fyne.App) *SettingsStore {
	return &SettingsStore{prefs: app.Preferences()}
}

// Load loads settings from preferences
func (ss *SettingsStore) Load() *models.Settings {
	settings := &models.Settings{
		AutoStart:   ss.prefs.BoolWithFallback(prefAutoStart, false),
		DataSources: []models.DataSource{},
	}

	// Data sources are stored as a JSON string
	if sourcesJSON := ss.prefs.String(prefDataSources); sourcesJSON != "" {
		if err := json.Unmarshal([]byte(sourcesJSON), &settings.DataSources); err != nil {
			settings.DataSources = []models.DataSource{}
		}
	}

	return settings
}

// Save saves settings to preferences
func (ss *SettingsStore) Save(settings *models.Settings) error {
	sourcesJSON, err := json.Marshal(settings.DataSources)
	if err != nil {
		return err
	}

	ss.prefs.SetBool(prefAutoStart, settings.AutoStart)
	ss.prefs.SetString(prefDataSources, string(sourcesJSON))
	return nil
}
