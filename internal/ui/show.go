package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldivia/almanac/internal/dateutil"
)

// minutesInDay is the span the busy bar measures against.
const minutesInDay = 24 * 60

func (a *App) showCmd() *cobra.Command {
	var (
		date    string
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one day's agenda",
		Long: `Display a single day's events with a booking summary.

Defaults to today. Use 'almanac list' for multi-day ranges.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			day, err := dateutil.NormalizeDay(date)
			if err != nil {
				return fmt.Errorf("invalid --date: %w", err)
			}

			events, err := a.repo.Query(context.Background(), day)
			if err != nil {
				return fmt.Errorf("fetching events: %w", err)
			}

			if len(events) == 0 {
				fmt.Printf("No events scheduled for %s.\n", dateutil.DisplayDay(day))
				return nil
			}

			fmt.Printf("=== %s ===\n\n", formatHeader(dateutil.DisplayDay(day)))

			opts := PrintOpts{Verbose: verbose, ShowDuration: true}
			hasConflict := PrintDay(events, opts)

			var stats Stats
			AccumulateStats(&stats, day, events)

			fmt.Println()
			PrintStats(stats)
			fmt.Printf("Day: %s\n", BusyBar(stats.BusyMinutes, minutesInDay, 20))

			if hasConflict {
				fmt.Printf("\n%s rows marked ! overlap another event\n", formatConflict("Note:"))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show locations and descriptions")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
