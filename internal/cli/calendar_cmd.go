package cli

import (
	"context"
	"fmt"

	"github.com/adelarue/backline/internal/cli/formatter"
	"github.com/adelarue/backline/internal/contract"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var mode, from, to string
	var buffer float64

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the schedule as day or week columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewCalendarRequest()
			req.Mode = contract.CalendarMode(mode)

			if cmd.Flags().Changed("buffer") {
				req.BufferHours = &buffer
			}

			start, err := parseWindowFlag(from, "from")
			if err != nil {
				return err
			}
			end, err := parseWindowFlag(to, "to")
			if err != nil {
				return err
			}
			req.WindowStart = start
			req.WindowEnd = end

			resp, err := app.Studio.BuildCalendar(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatCalendar(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "week", "Column mode: day or week")
	cmd.Flags().StringVar(&from, "from", "", "Window start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end")
	cmd.Flags().Float64Var(&buffer, "buffer", 0, "Territory buffer in hours (overrides the stored setting)")

	return cmd
}
