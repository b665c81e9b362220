package models

import "strings"

// Settings holds user-edited application settings
type Settings struct {
	AutoStart   bool         `json:"auto_start"`
	DataSources []DataSource `json:"data_sources"`
}

// DataSource represents a named static availability dataset
type DataSource struct {
	ID       string `json:"id"`       // Unique identifier
	Name     string `json:"name"`     // Display name
	Location string `json:"location"` // File path or http(s) URL
}

// NeedsConfiguration returns true if no dataset has been configured yet
func (s *Settings) NeedsConfiguration() bool {
	return len(s.DataSources) == 0
}

// Validate checks if the data source has required fields
func (s *DataSource) Validate() bool {
	return s.Name != "" && s.Location != ""
}

// IsRemote reports whether the source is fetched over HTTP
func (s *DataSource) IsRemote() bool {
	lower := strings.ToLower(s.Location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
