package ui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jvaldivia/almanac/internal/dateutil"
	"github.com/jvaldivia/almanac/internal/event"
)

func (a *App) editCmd() *cobra.Command {
	var (
		date     string
		title    string
		start    string
		end      string
		location string
		desc     string
		colorTag string
		moveTo   string
	)

	cmd := &cobra.Command{
		Use:   "edit [number]",
		Short: "Edit an event",
		Long: `Edit an event, addressed by its number in the day's listing.

Only the flags you pass change; everything else keeps its value.
Use --move to reschedule the event onto another day.

Example:
  almanac edit 2 --start=10:00 --end=11:00
  almanac edit 1 --date=2025-01-15 --move=2025-01-16`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			ev, err := a.eventAt(ctx, date, args[0])
			if err != nil {
				return err
			}

			draft := event.Draft{
				Date:        ev.Date,
				Title:       ev.Title,
				StartTime:   ev.StartTime,
				EndTime:     ev.EndTime,
				Location:    ev.Location,
				Description: ev.Description,
				Color:       ev.Color,
			}
			if cmd.Flags().Changed("title") {
				draft.Title = title
			}
			if cmd.Flags().Changed("start") {
				draft.StartTime = start
			}
			if cmd.Flags().Changed("end") {
				draft.EndTime = end
			}
			if cmd.Flags().Changed("location") {
				draft.Location = location
			}
			if cmd.Flags().Changed("description") {
				draft.Description = desc
			}
			if cmd.Flags().Changed("color") {
				draft.Color = colorTag
			}
			if cmd.Flags().Changed("move") {
				draft.Date = moveTo
			}

			updated, err := a.repo.Update(ctx, ev.ID, draft)
			if err != nil {
				return fmt.Errorf("updating event: %w", err)
			}

			fmt.Printf("Updated %s on %s, %s\n",
				formatEvent(fmt.Sprintf("%q", updated.Title)), updated.Date, updated.TimeRange())

			return a.warnConflicts(ctx, updated)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day the event is on (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM)")
	cmd.Flags().StringVar(&location, "location", "", "New location")
	cmd.Flags().StringVar(&desc, "description", "", "New description")
	cmd.Flags().StringVar(&colorTag, "color", "", "New display color (hex)")
	cmd.Flags().StringVar(&moveTo, "move", "", "Move the event to another day (YYYY-MM-DD)")

	return cmd
}

// eventAt resolves a 1-based day-listing number to an event.
func (a *App) eventAt(ctx context.Context, date, arg string) (event.Event, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 1 {
		return event.Event{}, fmt.Errorf("invalid event number %q", arg)
	}

	day, err := dateutil.NormalizeDay(date)
	if err != nil {
		return event.Event{}, fmt.Errorf("invalid --date: %w", err)
	}

	events, err := a.repo.Query(ctx, day)
	if err != nil {
		return event.Event{}, fmt.Errorf("fetching events: %w", err)
	}
	if index > len(events) {
		return event.Event{}, fmt.Errorf("no event %d on %s (%d scheduled)", index, day, len(events))
	}
	return events[index-1], nil
}
