package cli

import (
	"context"
	"fmt"

	"github.com/adelarue/backline/internal/cli/formatter"
	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/timeline"
	"github.com/spf13/cobra"
)

func newConflictsCmd(app *App) *cobra.Command {
	var from, to string
	var buffer float64
	var errorsOnly bool

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Report scheduling conflicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := studioRequestFromFlags(cmd, from, to, "", buffer)
			if err != nil {
				return err
			}

			resp, err := app.Studio.BuildStudio(context.Background(), req)
			if err != nil {
				return err
			}

			conflicts := resp.Result.Conflicts
			if errorsOnly {
				var errs []timeline.Conflict
				for _, c := range conflicts {
					if c.Severity == domain.SeverityError {
						errs = append(errs, c)
					}
				}
				conflicts = errs
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflictReport(conflicts, resp.BufferHours))
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Window start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Window end")
	cmd.Flags().Float64Var(&buffer, "buffer", 0, "Territory buffer in hours (overrides the stored setting)")
	cmd.Flags().BoolVar(&errorsOnly, "errors-only", false, "Hide warnings")

	return cmd
}
