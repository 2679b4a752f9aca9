package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/adelarue/backline/internal/cli/formatter"
	"github.com/adelarue/backline/internal/contract"
	"github.com/adelarue/backline/internal/timeline"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// parseWindowFlag parses an explicit window bound. Unlike item timestamps,
// a window flag the user typed must parse; otherwise the command fails.
func parseWindowFlag(raw, flagName string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed := timeline.ParseTimestamp(raw)
	if parsed == nil {
		return nil, fmt.Errorf("invalid --%s value %q (expected RFC3339 or YYYY-MM-DD)", flagName, raw)
	}
	return parsed, nil
}

func studioRequestFromFlags(cmd *cobra.Command, from, to, granularity string, buffer float64) (contract.StudioRequest, error) {
	req := contract.NewStudioRequest()
	req.Granularity = granularity

	if cmd.Flags().Changed("buffer") {
		req.BufferHours = &buffer
	}

	start, err := parseWindowFlag(from, "from")
	if err != nil {
		return req, err
	}
	end, err := parseWindowFlag(to, "to")
	if err != nil {
		return req, err
	}
	req.WindowStart = start
	req.WindowEnd = end
	return req, nil
}

func newStudioCmd(app *App) *cobra.Command {
	var from, to, granularity string
	var buffer float64
	var width int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "studio",
		Short: "Render the timeline studio view",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := studioRequestFromFlags(cmd, from, to, granularity, buffer)
			if err != nil {
				return err
			}

			if interactive {
				if app.IsInteractive != nil && !app.IsInteractive() {
					return fmt.Errorf("interactive studio requires a terminal (stdin is not a TTY)")
				}
				program := tea.NewProgram(newStudioModel(app, req), tea.WithAltScreen())
				_, err := program.Run()
				return err
			}

			resp, err := app.Studio.BuildStudio(context.Background(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudio(resp, width))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Window start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end")
	cmd.Flags().StringVarP(&granularity, "granularity", "g", "", "Axis granularity: day, week, month, quarter, year")
	cmd.Flags().Float64Var(&buffer, "buffer", 0, "Territory buffer in hours (overrides the stored setting)")
	cmd.Flags().IntVar(&width, "width", 100, "Render width in columns")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the full-screen studio")

	return cmd
}
