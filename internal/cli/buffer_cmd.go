package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/adelarue/backline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newBufferCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "buffer [hours]",
		Short: "Show or set the territory buffer",
		Long:  "The buffer is the minimum spacing, in hours, between start times of items in the same territory before they are flagged as conflicting.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				s, err := app.Settings.Get(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Territory buffer: %s\n", formatter.FormatHours(s.BufferHours))
				return nil
			}

			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid buffer %q: %w", args[0], err)
			}
			s, err := app.Settings.SetBufferHours(ctx, hours)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Territory buffer set to %s\n", formatter.FormatHours(s.BufferHours))
			return nil
		},
	}
}

func newGranularityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "granularity [day|week|month|quarter|year]",
		Short: "Show or set the default axis granularity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				s, err := app.Settings.Get(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Granularity: %s\n", s.Granularity)
				return nil
			}

			s, err := app.Settings.SetGranularity(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Granularity set to %s\n", s.Granularity)
			return nil
		},
	}
}
