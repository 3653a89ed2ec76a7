package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
)

func (a *App) conflictsCmd() *cobra.Command {
	var (
		fromDate string
		toDate   string
	)

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List overlapping events",
		Long: `Scan a date range and report every pair of overlapping events.

Events sharing only an endpoint, such as one ending at 10:00 and
another starting at 10:00, do not overlap.`,
		Example: `  almanac conflicts
  almanac conflicts --from=2025-01-13 --to=2025-01-17`,
		RunE: func(_ *cobra.Command, _ []string) error {
			from, to, err := normalizeRange(fromDate, toDate)
			if err != nil {
				return err
			}

			events, err := a.repo.QueryRange(context.Background(), from, to)
			if err != nil {
				return fmt.Errorf("listing events: %w", err)
			}

			total := 0
			for _, day := range groupByDay(events) {
				pairs := overlappingPairs(day.events)
				if len(pairs) == 0 {
					continue
				}
				fmt.Printf("=== %s ===\n", formatHeader(dateutil.DisplayDay(day.date)))
				for _, p := range pairs {
					fmt.Printf("  %s %q (%s) and %q (%s)\n",
						formatConflict("!"),
						p[0].Title, p[0].TimeRange(),
						p[1].Title, p[1].TimeRange())
				}
				fmt.Println()
				total += len(pairs)
			}

			if total == 0 {
				fmt.Println("No conflicts found.")
			} else {
				fmt.Printf("%s\n", formatConflict(fmt.Sprintf("%d overlapping pairs", total)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromDate, "from", "", "Start date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVar(&toDate, "to", "", "End date (YYYY-MM-DD, defaults to the start date)")

	return cmd
}

// overlappingPairs returns every conflicting pair (i, j) with i < j in
// listing order.
func overlappingPairs(events []event.Event) [][2]event.Event {
	var pairs [][2]event.Event
	for i := 0; i < len(events); i++ {
		for j := i + 1; j < len(events); j++ {
			if event.Overlaps(events[i], events[j]) {
				pairs = append(pairs, [2]event.Event{events[i], events[j]})
			}
		}
	}
	return pairs
}
