package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/repository"
	"github.com/adelarue/backline/internal/testutil"
	"github.com/stretchr/testify/require"
)

// testEnv wires every service over a shared in-memory database.
type testEnv struct {
	db        *sql.DB
	items     ItemService
	deps      DependencyService
	settings  SettingsService
	studio    StudioService
	importSvc ImportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)

	itemRepo := repository.NewSQLiteItemRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	return &testEnv{
		db:        database,
		items:     NewItemService(itemRepo),
		deps:      NewDependencyService(itemRepo, depRepo),
		settings:  NewSettingsService(settingsRepo),
		studio:    NewStudioService(itemRepo, depRepo, settingsRepo),
		importSvc: NewImportService(testutil.NewTestUoW(database)),
	}
}

// createItem persists a schedule item through the service and returns it.
func (e *testEnv) createItem(t *testing.T, item *domain.ScheduleItem) *domain.ScheduleItem {
	t.Helper()
	require.NoError(t, e.items.Create(context.Background(), item))
	return item
}

func mustParse(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func timePtr(t time.Time) *time.Time { return &t }
