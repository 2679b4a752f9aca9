package cli

import (
	"context"
	"fmt"

	"github.com/adelarue/backline/internal/cli/formatter"
	"github.com/adelarue/backline/internal/domain"
	"github.com/spf13/cobra"
)

func newDepCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dep",
		Short: "Manage dependencies between items",
	}

	cmd.AddCommand(
		newDepAddCmd(app),
		newDepListCmd(app),
		newDepRemoveCmd(app),
	)

	return cmd
}

func newDepAddCmd(app *App) *cobra.Command {
	var kind, note string

	cmd := &cobra.Command{
		Use:   "add <from> <to>",
		Short: "Link two items (from must finish or start before to)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			fromID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			toID, err := resolveItemID(ctx, app, args[1])
			if err != nil {
				return err
			}

			edge := &domain.DependencyEdge{
				FromItemID: fromID,
				ToItemID:   toID,
				Kind:       domain.ParseDependencyKind(kind),
				Note:       note,
			}
			if err := app.Deps.Create(ctx, edge); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Linked %s → %s (%s)\n",
				formatter.TruncID(fromID), formatter.TruncID(toID), edge.Kind)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "FS", "Dependency kind: FS (finish-to-start) or SS (start-to-start)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")

	return cmd
}

func newDepListCmd(app *App) *cobra.Command {
	var itemArg string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List dependency edges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var (
				edges []domain.DependencyEdge
				err   error
			)
			if itemArg != "" {
				var id string
				id, err = resolveItemID(ctx, app, itemArg)
				if err != nil {
					return err
				}
				edges, err = app.Deps.ListForItem(ctx, id)
			} else {
				edges, err = app.Deps.ListAll(ctx)
			}
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEdgeList(edges, itemTitleIndex(ctx, app)))
			return nil
		},
	}

	cmd.Flags().StringVar(&itemArg, "item", "", "Only edges touching this item")

	return cmd
}

func newDepRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <from> <to>",
		Short: "Remove the edge between two items",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			fromID, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			toID, err := resolveItemID(ctx, app, args[1])
			if err != nil {
				return err
			}

			if err := app.Deps.Delete(ctx, fromID, toID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s → %s\n",
				formatter.TruncID(fromID), formatter.TruncID(toID))
			return nil
		},
	}
}
