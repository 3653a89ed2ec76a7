package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
)

func (a *App) listCmd() *cobra.Command {
	var (
		fromDate string
		toDate   string
		month    string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events in a date range",
		Long: `List all events within a date range, grouped by day.

If no dates are specified, lists today's events.
If only --from is specified, lists that single day.
--month lists a whole calendar month and overrides --from/--to.`,
		Example: `  almanac list
  almanac list --from=2025-01-15
  almanac list --from=2025-01-15 --to=2025-01-20
  almanac list --month=2025-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if month != "" {
				first, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid --month %q, want YYYY-MM", month)
				}
				fromDate = dateutil.FormatDay(dateutil.FirstOfMonth(first))
				toDate = dateutil.FormatDay(dateutil.LastOfMonth(first))
			}

			from, to, err := normalizeRange(fromDate, toDate)
			if err != nil {
				return err
			}

			events, err := a.repo.QueryRange(context.Background(), from, to)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			if len(events) == 0 {
				fmt.Println("No events found in the specified date range.")
				return nil
			}

			opts := PrintOpts{Verbose: verbose, ShowDuration: true}
			var stats Stats
			for _, day := range groupByDay(events) {
				fmt.Printf("=== %s ===\n", formatHeader(dateutil.DisplayDay(day.date)))
				PrintDay(day.events, opts)
				AccumulateStats(&stats, day.date, day.events)
				fmt.Println()
			}
			PrintStats(stats)

			return nil
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&toDate, "to", "", "End date (YYYY-MM-DD, defaults to the start date)")
	cmd.Flags().StringVar(&month, "month", "", "List a whole month (YYYY-MM)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show locations and descriptions")

	return cmd
}

// normalizeRange resolves the from/to flags into canonical day strings.
// Empty from means today; empty to means a single-day range.
func normalizeRange(from, to string) (string, string, error) {
	fromNorm, err := dateutil.NormalizeDay(from)
	if err != nil {
		return "", "", fmt.Errorf("invalid --from: %w", err)
	}
	if to == "" {
		return fromNorm, fromNorm, nil
	}
	toNorm, err := dateutil.NormalizeDay(to)
	if err != nil {
		return "", "", fmt.Errorf("invalid --to: %w", err)
	}
	if toNorm < fromNorm {
		return "", "", fmt.Errorf("--to %s is before --from %s", toNorm, fromNorm)
	}
	return fromNorm, toNorm, nil
}

type dayGroup struct {
	date   string
	events []event.Event
}

// groupByDay splits a date-ordered event list into per-day groups,
// preserving the repository's ordering.
func groupByDay(events []event.Event) []dayGroup {
	var groups []dayGroup
	for _, ev := range events {
		if len(groups) == 0 || groups[len(groups)-1].date != ev.Date {
			groups = append(groups, dayGroup{date: ev.Date})
		}
		g := &groups[len(groups)-1]
		g.events = append(g.events, ev)
	}
	return groups
}
