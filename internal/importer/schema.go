package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for an itinerary import.
type ImportSchema struct {
	Settings     *SettingsImport    `json:"settings,omitempty"`
	Items        []ItemImport       `json:"items"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
}

// SettingsImport optionally overrides the stored studio settings.
type SettingsImport struct {
	BufferHours *float64 `json:"buffer_hours,omitempty"`
	Granularity *string  `json:"granularity,omitempty"`
}

// ItemImport defines one schedule item in the import file. Refs are local to
// the file and only used to wire dependencies; real IDs are generated on
// conversion.
type ItemImport struct {
	Ref       string  `json:"ref"`
	Title     string  `json:"title"`
	Type      string  `json:"type"`
	Lane      *string `json:"lane,omitempty"`
	StartsAt  *string `json:"starts_at,omitempty"`
	EndsAt    *string `json:"ends_at,omitempty"`
	Territory *string `json:"territory,omitempty"`
	Priority  *int    `json:"priority,omitempty"`
	Note      *string `json:"note,omitempty"`
}

// DependencyImport defines a dependency between two items by ref.
type DependencyImport struct {
	FromRef string  `json:"from_ref"`
	ToRef   string  `json:"to_ref"`
	Kind    *string `json:"kind,omitempty"`
	Note    *string `json:"note,omitempty"`
}

// LoadImportSchema reads and parses an itinerary import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
