package cli

import (
	"github.com/adelarue/backline/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Items    service.ItemService
	Deps     service.DependencyService
	Settings service.SettingsService
	Studio   service.StudioService
	Import   service.ImportService

	// IsInteractive reports whether stdin is attached to a terminal. The
	// studio command refuses to start the full-screen view without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "backline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "backline",
		Short: "Artist timeline studio: holds, travel, promo, and conflicts",
	}

	root.AddCommand(
		newItemCmd(app),
		newDepCmd(app),
		newStudioCmd(app),
		newConflictsCmd(app),
		newCalendarCmd(app),
		newBufferCmd(app),
		newGranularityCmd(app),
		newImportCmd(app),
	)

	return root
}
