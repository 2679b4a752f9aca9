package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validSchema() *ImportSchema {
	lane := "Live"
	start := "2025-05-01T19:00:00Z"
	end := "2025-05-01T23:00:00Z"
	return &ImportSchema{
		Items: []ItemImport{
			{Ref: "show", Title: "Brixton show", Type: "live-hold", Lane: &lane, StartsAt: &start, EndsAt: &end},
			{Ref: "flight", Title: "LHR -> BER", Type: "travel-segment"},
		},
		Dependencies: []DependencyImport{
			{FromRef: "show", ToRef: "flight"},
		},
	}
}

func TestValidateImportSchema_Valid(t *testing.T) {
	errs := ValidateImportSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidateImportSchema_EmptyItems(t *testing.T) {
	errs := ValidateImportSchema(&ImportSchema{})
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "at least one item")
}

func TestValidateImportSchema_ItemErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ImportSchema)
		wantMsg string
	}{
		{
			name:    "missing ref",
			mutate:  func(s *ImportSchema) { s.Items[0].Ref = "" },
			wantMsg: "ref is required",
		},
		{
			name:    "duplicate ref",
			mutate:  func(s *ImportSchema) { s.Items[1].Ref = "show" },
			wantMsg: `duplicate ref "show"`,
		},
		{
			name:    "missing title",
			mutate:  func(s *ImportSchema) { s.Items[0].Title = "" },
			wantMsg: "title is required",
		},
		{
			name:    "unknown type",
			mutate:  func(s *ImportSchema) { s.Items[0].Type = "meeting" },
			wantMsg: `unknown type "meeting"`,
		},
		{
			name: "negative priority",
			mutate: func(s *ImportSchema) {
				p := -1
				s.Items[0].Priority = &p
			},
			wantMsg: "priority must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validSchema()
			tt.mutate(schema)
			errs := ValidateImportSchema(schema)
			if assert.NotEmpty(t, errs) {
				assert.Contains(t, errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateImportSchema_DependencyErrors(t *testing.T) {
	tests := []struct {
		name    string
		dep     DependencyImport
		wantMsg string
	}{
		{
			name:    "missing refs",
			dep:     DependencyImport{},
			wantMsg: "from_ref and to_ref are required",
		},
		{
			name:    "self dependency",
			dep:     DependencyImport{FromRef: "show", ToRef: "show"},
			wantMsg: "cannot depend on itself",
		},
		{
			name:    "unknown from ref",
			dep:     DependencyImport{FromRef: "ghost", ToRef: "show"},
			wantMsg: `from_ref "ghost" does not match any item`,
		},
		{
			name:    "unknown to ref",
			dep:     DependencyImport{FromRef: "show", ToRef: "ghost"},
			wantMsg: `to_ref "ghost" does not match any item`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := validSchema()
			schema.Dependencies = []DependencyImport{tt.dep}
			errs := ValidateImportSchema(schema)
			if assert.NotEmpty(t, errs) {
				assert.Contains(t, errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestValidateImportSchema_SettingsErrors(t *testing.T) {
	schema := validSchema()
	buffer := 30.0
	gran := "fortnight"
	schema.Settings = &SettingsImport{BufferHours: &buffer, Granularity: &gran}

	errs := ValidateImportSchema(schema)
	assert.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "out of range")
	assert.Contains(t, errs[1].Error(), `unknown granularity "fortnight"`)
}
