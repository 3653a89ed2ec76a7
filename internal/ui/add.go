package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
)

func (a *App) addCmd() *cobra.Command {
	var (
		date     string
		start    string
		end      string
		duration int
		location string
		desc     string
		colorTag string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new event",
		Long: `Add a new event to the calendar.

Either --end or --duration sets the end time; --duration counts
minutes from the start.

Example:
  almanac add "Team standup" --date=2025-01-10 --start=09:00 --end=09:30
  almanac add "Focus block" --start=14:00 --duration=90`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if date == "" {
				date = dateutil.Today()
			}

			draft := event.Draft{
				Date:            date,
				Title:           args[0],
				StartTime:       start,
				EndTime:         end,
				DurationMinutes: duration,
				Location:        location,
				Description:     desc,
				Color:           colorTag,
			}

			ctx := context.Background()
			ev, err := a.repo.Create(ctx, draft)
			if err != nil {
				return fmt.Errorf("creating event: %w", err)
			}

			fmt.Printf("Created %s on %s, %s\n",
				formatEvent(fmt.Sprintf("%q", ev.Title)), ev.Date, ev.TimeRange())

			if err := a.warnConflicts(ctx, ev); err != nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Event date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes, alternative to --end")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().StringVar(&desc, "description", "", "Event description")
	cmd.Flags().StringVar(&colorTag, "color", "", "Display color (hex), default: assigned from the palette")

	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// warnConflicts prints a notice when the event overlaps others on its day.
// Overlaps are allowed; the calendar only flags them.
func (a *App) warnConflicts(ctx context.Context, ev event.Event) error {
	events, err := a.repo.Query(ctx, ev.Date)
	if err != nil {
		return fmt.Errorf("checking conflicts: %w", err)
	}
	for _, other := range events {
		if other.ID != ev.ID && event.Overlaps(ev, other) {
			fmt.Printf("%s overlaps %q (%s)\n",
				formatConflict("Warning:"), other.Title, other.TimeRange())
		}
	}
	return nil
}
