package ui

import (
	"fmt"
	"strings"

	"github.com/jvaldivia/almanac/internal/event"
)

// Stats holds aggregated statistics for a set of events.
type Stats struct {
	TotalEvents  int
	BusyMinutes  int
	ConflictDays int
	DayStats     map[string]DayStats
}

// DayStats holds statistics for a single day.
type DayStats struct {
	Events      int
	BusyMinutes int
	HasConflict bool
}

// BusiestDay returns the day with the most booked minutes.
func (s Stats) BusiestDay() (day string, minutes int) {
	for d, ds := range s.DayStats {
		if ds.BusyMinutes > minutes {
			minutes = ds.BusyMinutes
			day = d
		}
	}
	return day, minutes
}

// PrintOpts configures event printing behavior.
type PrintOpts struct {
	Verbose       bool // Show descriptions and locations
	ShowDuration  bool // Show duration column
	MaxTitleWidth int  // Maximum title width (0 = auto)
}

// CalcMaxTitleWidth calculates the maximum title width based on options.
func (o PrintOpts) CalcMaxTitleWidth(defaultWidth int) int {
	if o.MaxTitleWidth > 0 {
		return o.MaxTitleWidth
	}
	if !o.Verbose {
		return defaultWidth
	}
	tw := termWidth()
	// Base: "  N. ! HH:MM AM - HH:MM AM  " = ~30 chars
	overhead := 30
	if o.ShowDuration {
		overhead += 8
	}
	available := tw - overhead
	if available > defaultWidth {
		return available
	}
	return defaultWidth
}

// PrintEventRow prints a single event row with consistent formatting.
// The index is the event's 1-based position within its day, which is also
// how edit and remove address events.
func PrintEventRow(ev event.Event, index int, conflicted bool, opts PrintOpts, maxTitleWidth int) {
	mark := " "
	if conflicted {
		mark = formatConflict("!")
	}

	title := ev.Title
	if len(title) > maxTitleWidth {
		title = title[:maxTitleWidth-3] + "..."
	}

	if opts.ShowDuration {
		fmt.Printf("  %d. %s %-21s  %-*s  %s\n",
			index, mark, ev.TimeRange(), maxTitleWidth, formatEvent(title),
			formatMuted(FormatDuration(ev.Duration())))
	} else {
		fmt.Printf("  %d. %s %-21s  %s\n",
			index, mark, ev.TimeRange(), formatEvent(title))
	}

	if opts.Verbose {
		if ev.Location != "" {
			fmt.Printf("       %s\n", formatMuted("@ "+ev.Location))
		}
		if ev.Description != "" {
			fmt.Printf("       %s\n", formatMuted(ev.Description))
		}
	}
}

// PrintDay prints one day's events with per-row conflict marks, returning
// whether the day contains any overlap.
func PrintDay(events []event.Event, opts PrintOpts) bool {
	maxTitleWidth := opts.CalcMaxTitleWidth(40)
	conflicted := conflictedSet(events)
	for i, ev := range events {
		PrintEventRow(ev, i+1, conflicted[i], opts, maxTitleWidth)
	}
	return anyTrue(conflicted)
}

// conflictedSet marks, per index, the events that overlap some other
// event in the list.
func conflictedSet(events []event.Event) []bool {
	marks := make([]bool, len(events))
	for i := range events {
		for j := i + 1; j < len(events); j++ {
			if event.Overlaps(events[i], events[j]) {
				marks[i] = true
				marks[j] = true
			}
		}
	}
	return marks
}

func anyTrue(marks []bool) bool {
	for _, m := range marks {
		if m {
			return true
		}
	}
	return false
}

// AccumulateStats updates stats based on a day's events.
func AccumulateStats(stats *Stats, day string, events []event.Event) {
	if stats.DayStats == nil {
		stats.DayStats = make(map[string]DayStats)
	}

	ds := stats.DayStats[day]
	for _, ev := range events {
		stats.TotalEvents++
		stats.BusyMinutes += ev.Duration()
		ds.Events++
		ds.BusyMinutes += ev.Duration()
	}
	if event.HasConflict(events) {
		if !ds.HasConflict {
			stats.ConflictDays++
		}
		ds.HasConflict = true
	}
	stats.DayStats[day] = ds
}

// PrintStats prints the stats summary line.
func PrintStats(stats Stats) {
	fmt.Printf("%s | Booked: %s",
		formatStats(fmt.Sprintf("%d events", stats.TotalEvents)),
		FormatDuration(stats.BusyMinutes))
	if stats.ConflictDays > 0 {
		fmt.Printf(" | %s", formatConflict(fmt.Sprintf("%d days with conflicts", stats.ConflictDays)))
	}
	fmt.Println()

	if len(stats.DayStats) > 1 {
		if day, minutes := stats.BusiestDay(); minutes > 0 {
			fmt.Printf("Busiest day: %s (%s booked)\n", day, formatStats(FormatDuration(minutes)))
		}
	}
}

// BusyBar creates an ASCII bar showing how much of the day is booked.
// dayMinutes is the span being measured against, normally a full day.
func BusyBar(busyMinutes, dayMinutes, width int) string {
	if dayMinutes == 0 {
		return "[" + strings.Repeat("░", width) + "] (0% booked)"
	}

	pct := (busyMinutes * 100) / dayMinutes
	filled := (busyMinutes * width) / dayMinutes
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatEvent(bar), formatStats(fmt.Sprintf("(%d%% booked)", pct)))
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}
