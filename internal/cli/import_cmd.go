package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import an itinerary from a JSON file",
		Long:  "Imports items and dependencies from a JSON file in one transaction. A validation failure or write error imports nothing.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportTimeline(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items and %d dependencies\n",
				result.ItemCount, result.DependencyCount)
			if result.SettingsUpdated {
				fmt.Fprintln(cmd.OutOrStdout(), "Studio settings updated from the import file")
			}
			return nil
		},
	}
}
