package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adelarue/backline/internal/cli"
	"github.com/adelarue/backline/internal/db"
	"github.com/adelarue/backline/internal/repository"
	"github.com/adelarue/backline/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.backline/backline.db
	dbPath := os.Getenv("BACKLINE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".backline", "backline.db")
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	itemRepo := repository.NewSQLiteItemRepo(database)
	depRepo := repository.NewSQLiteDependencyRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Studio observability is opt-in: BACKLINE_LOG=1 logs engine passes to stderr.
	var observers []service.UseCaseObserver
	if os.Getenv("BACKLINE_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Items:    service.NewItemService(itemRepo),
		Deps:     service.NewDependencyService(itemRepo, depRepo),
		Settings: service.NewSettingsService(settingsRepo),
		Studio:   service.NewStudioService(itemRepo, depRepo, settingsRepo, observers...),
		Import:   service.NewImportService(uow),
	}

	// Detect interactive terminal for TUI-only entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
