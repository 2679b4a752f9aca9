package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/adelarue/backline/internal/repository"
	"github.com/adelarue/backline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A write failure partway through an import must leave the database untouched.
func TestImportService_RollbackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	itemRepo := repository.NewSQLiteItemRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)

	// Items write first; fail on the third exec (the last item insert).
	uow := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 3,
		Err:    fmt.Errorf("disk full"),
	}
	svc := NewImportService(uow)

	_, err := svc.ImportTimelineFromSchema(context.Background(), tourSchema())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	items, listErr := itemRepo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, items, "no partial items survive the rollback")

	edges, listErr := depRepo.ListAll(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, edges)
}

func TestImportService_RollbackOnDependencyFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	itemRepo := repository.NewSQLiteItemRepo(database)

	// Three item inserts succeed, the first dependency insert fails.
	uow := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 4,
		Err:    fmt.Errorf("injected failure"),
	}
	svc := NewImportService(uow)

	_, err := svc.ImportTimelineFromSchema(context.Background(), tourSchema())
	require.ErrorContains(t, err, "creating dependency")

	items, listErr := itemRepo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, items, "items roll back with the failed dependency")
}
