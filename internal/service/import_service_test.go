package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/adelarue/backline/internal/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tourSchema() *importer.ImportSchema {
	start := "2025-05-01T19:00:00Z"
	end := "2025-05-01T23:00:00Z"
	flightStart := "2025-05-02T08:00:00Z"
	return &importer.ImportSchema{
		Items: []importer.ItemImport{
			{Ref: "show", Title: "Brixton show", Type: "live-hold", StartsAt: &start, EndsAt: &end},
			{Ref: "flight", Title: "LHR -> BER", Type: "travel-segment", StartsAt: &flightStart},
			{Ref: "presser", Title: "Berlin press day", Type: "promo-slot"},
		},
		Dependencies: []importer.DependencyImport{
			{FromRef: "show", ToRef: "flight"},
			{FromRef: "flight", ToRef: "presser"},
		},
	}
}

func TestImportService_FromSchema(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	result, err := env.importSvc.ImportTimelineFromSchema(ctx, tourSchema())
	require.NoError(t, err)
	assert.Equal(t, 3, result.ItemCount)
	assert.Equal(t, 2, result.DependencyCount)
	assert.False(t, result.SettingsUpdated)

	items, err := env.items.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 3)

	edges, err := env.deps.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

func TestImportService_AppliesSettings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	schema := tourSchema()
	buffer := 6.0
	gran := "month"
	schema.Settings = &importer.SettingsImport{BufferHours: &buffer, Granularity: &gran}

	result, err := env.importSvc.ImportTimelineFromSchema(ctx, schema)
	require.NoError(t, err)
	assert.True(t, result.SettingsUpdated)

	s, err := env.settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6.0, s.BufferHours)
	assert.Equal(t, "month", s.Granularity)
}

func TestImportService_ValidationFailureImportsNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	schema := tourSchema()
	schema.Items[2].Type = "meeting"
	schema.Dependencies = append(schema.Dependencies, importer.DependencyImport{FromRef: "show", ToRef: "ghost"})

	_, err := env.importSvc.ImportTimelineFromSchema(ctx, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "import validation failed (2 errors)")

	items, listErr := env.items.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, items)
}

func TestImportService_FromFile(t *testing.T) {
	env := newTestEnv(t)

	path := filepath.Join(t.TempDir(), "tour.json")
	payload := `{
		"items": [
			{"ref": "show", "title": "Brixton show", "type": "live-hold", "starts_at": "2025-05-01T19:00:00Z", "ends_at": "2025-05-01T23:00:00Z"},
			{"ref": "flight", "title": "LHR -> BER", "type": "travel-segment"}
		],
		"dependencies": [
			{"from_ref": "show", "to_ref": "flight", "kind": "SS"}
		]
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	result, err := env.importSvc.ImportTimeline(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ItemCount)
	assert.Equal(t, 1, result.DependencyCount)
}

func TestImportService_FromFile_Missing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.importSvc.ImportTimeline(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestImportService_FromFile_MalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := env.importSvc.ImportTimeline(context.Background(), path)
	assert.ErrorContains(t, err, "parsing import file")
}
