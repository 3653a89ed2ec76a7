package event

import "fmt"

const minutesPerDay = 24 * 60

// ParseClock converts "HH:MM" to minutes since midnight.
// Returns ErrInvalidTimeFormat unless the hour is in [0,23] and the
// minute in [0,59].
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, ErrInvalidTimeFormat
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, ErrInvalidTimeFormat
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, ErrInvalidTimeFormat
	}
	return hour*60 + minute, nil
}

// FormatClock converts minutes since midnight to "HH:MM" format.
func FormatClock(m int) string {
	if m < 0 {
		m = 0
	}
	m %= minutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Duration returns end minus start in minutes.
// Returns ErrInvalidRange when end is not strictly after start; overnight
// ranges are not supported.
func Duration(start, end string) (int, error) {
	s, err := ParseClock(start)
	if err != nil {
		return 0, fmt.Errorf("start time: %w", err)
	}
	e, err := ParseClock(end)
	if err != nil {
		return 0, fmt.Errorf("end time: %w", err)
	}
	d := e - s
	if d <= 0 {
		return 0, ErrInvalidRange
	}
	return d, nil
}

// AddMinutes adds d minutes to a start time, wrapping modulo 24h.
// wrapped reports that the result crossed midnight; callers that need
// same-day semantics must reject wrapped results. Invalid start times
// are treated as midnight, matching ParseClock's zero value.
func AddMinutes(start string, d int) (end string, wrapped bool) {
	s, _ := ParseClock(start)
	total := s + d
	wrapped = total >= minutesPerDay || total < 0
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return FormatClock(total), wrapped
}

// FormatDisplay renders "HH:MM" as "h:mm AM/PM".
// Hours 0 and 12 both display as 12. Unparseable input is returned as is.
func FormatDisplay(s string) string {
	m, err := ParseClock(s)
	if err != nil {
		return s
	}
	hour, minute := m/60, m%60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, suffix)
}
