package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/adelarue/backline/internal/cli/formatter"
	"github.com/adelarue/backline/internal/domain"
	"github.com/adelarue/backline/internal/timeline"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage schedule items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemInspectCmd(app),
		newItemUpdateCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

// applyTimestamp parses a raw timestamp flag into the target. A value that
// doesn't parse leaves the target nil and warns instead of failing, so a
// typo'd date produces an unscheduled item rather than a lost command.
func applyTimestamp(cmd *cobra.Command, raw, flagName string, target **time.Time) {
	if raw == "" {
		return
	}
	parsed := timeline.ParseTimestamp(raw)
	if parsed == nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not parse --%s %q; leaving it unset\n", flagName, raw)
		return
	}
	*target = parsed
}

func newItemAddCmd(app *App) *cobra.Command {
	var title, itemType, lane, start, end, territory, note string
	var priority int
	var interactive bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a schedule item",
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				form := itemAddForm(&title, &itemType, &lane, &start, &end, &territory)
				if err := form.Run(); err != nil {
					return err
				}
			}
			if title == "" {
				return fmt.Errorf("--title is required (or use --interactive)")
			}

			item := &domain.ScheduleItem{
				Title:     title,
				Type:      domain.ItemType(itemType),
				Lane:      lane,
				Territory: territory,
				Priority:  priority,
				Note:      note,
			}
			applyTimestamp(cmd, start, "start", &item.StartsAt)
			applyTimestamp(cmd, end, "end", &item.EndsAt)

			if err := app.Items.Create(context.Background(), item); err != nil {
				return err
			}

			status := "unscheduled"
			if item.IsScheduled() {
				status = item.StartsAt.Format("2006-01-02 15:04")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s [%s] on lane %s (%s)\n",
				item.Title, formatter.TruncID(item.ID), item.Lane, status)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Item title")
	cmd.Flags().StringVar(&itemType, "type", string(domain.ItemLiveHold), "Item type (live-hold, travel-segment, promo-slot, release-milestone, legal-action, finance-action)")
	cmd.Flags().StringVar(&lane, "lane", "", "Lane label (defaults from type)")
	cmd.Flags().StringVar(&start, "start", "", "Start timestamp (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End timestamp")
	cmd.Flags().StringVar(&territory, "territory", "", "Territory code (e.g. UK)")
	cmd.Flags().IntVar(&priority, "priority", 0, "Priority (higher = more important)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill fields through a form")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	var unscheduledOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedule items",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			var (
				items []domain.ScheduleItem
				err   error
			)
			if unscheduledOnly {
				items, err = app.Items.ListUnscheduled(ctx)
			} else {
				items, err = app.Items.List(ctx)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItemList(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&unscheduledOnly, "unscheduled", false, "Only show items without a start time")

	return cmd
}

func newItemInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Show one item with its dependencies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}

			item, err := app.Items.GetByID(ctx, id)
			if err != nil {
				return err
			}
			edges, err := app.Deps.ListForItem(ctx, id)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItemDetail(item, edges, itemTitleIndex(ctx, app)))
			return nil
		},
	}
}

func newItemUpdateCmd(app *App) *cobra.Command {
	var title, itemType, lane, start, end, territory, note string
	var priority int
	var unschedule bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update fields on an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			item, err := app.Items.GetByID(ctx, id)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("title") {
				item.Title = title
			}
			if cmd.Flags().Changed("type") {
				item.Type = domain.ItemType(itemType)
			}
			if cmd.Flags().Changed("lane") {
				item.Lane = lane
			}
			if cmd.Flags().Changed("territory") {
				item.Territory = territory
			}
			if cmd.Flags().Changed("priority") {
				item.Priority = priority
			}
			if cmd.Flags().Changed("note") {
				item.Note = note
			}
			if unschedule {
				item.StartsAt = nil
				item.EndsAt = nil
			}
			applyTimestamp(cmd, start, "start", &item.StartsAt)
			applyTimestamp(cmd, end, "end", &item.EndsAt)

			if err := app.Items.Update(ctx, item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s [%s]\n", item.Title, formatter.TruncID(item.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&itemType, "type", "", "New type")
	cmd.Flags().StringVar(&lane, "lane", "", "New lane")
	cmd.Flags().StringVar(&start, "start", "", "New start timestamp")
	cmd.Flags().StringVar(&end, "end", "", "New end timestamp")
	cmd.Flags().StringVar(&territory, "territory", "", "New territory")
	cmd.Flags().IntVar(&priority, "priority", 0, "New priority")
	cmd.Flags().StringVar(&note, "note", "", "New note")
	cmd.Flags().BoolVar(&unschedule, "unschedule", false, "Clear both timestamps")

	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete an item and its dependency edges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveItemID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Items.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed item %s\n", formatter.TruncID(id))
			return nil
		},
	}
}

// itemTitleIndex builds an ID -> title map for display. Lookup failures are
// tolerated; formatters fall back to truncated IDs.
func itemTitleIndex(ctx context.Context, app *App) map[string]string {
	items, err := app.Items.List(ctx)
	if err != nil {
		return nil
	}
	titles := make(map[string]string, len(items))
	for _, item := range items {
		titles[item.ID] = item.Title
	}
	return titles
}
