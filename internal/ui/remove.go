package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	var (
		date string
		yes  bool
	)

	cmd := &cobra.Command{
		Use:   "remove [number]",
		Short: "Remove an event",
		Long: `Remove an event, addressed by its number in the day's listing.

Example:
  almanac remove 2
  almanac remove 1 --date=2025-01-15 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			ev, err := a.eventAt(ctx, date, args[0])
			if err != nil {
				return err
			}

			if !yes {
				question := fmt.Sprintf("Remove %q (%s on %s)?", ev.Title, ev.TimeRange(), ev.Date)
				if !promptYesNo(question) {
					fmt.Println("Cancelled.")
					return nil
				}
			}

			if err := a.repo.Delete(ctx, ev.ID); err != nil {
				return fmt.Errorf("removing event: %w", err)
			}

			fmt.Printf("Removed %q\n", ev.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day the event is on (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
