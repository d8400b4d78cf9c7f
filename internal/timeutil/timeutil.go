package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// MonthLayout defines the calendar-month format (YYYY-MM).
const MonthLayout = "2006-01"

// ClockLayout defines the kickoff/meeting time format (HH:MM, 24h).
const ClockLayout = "15:04"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseMonth parses a YYYY-MM month string.
func ParseMonth(value string) (time.Time, error) {
	return time.Parse(MonthLayout, value)
}

// InMonth reports whether a YYYY-MM-DD date falls inside a YYYY-MM month.
// Malformed dates never match.
func InMonth(date, month string) bool {
	parsed, err := ParseDate(date)
	if err != nil {
		return false
	}
	return parsed.Format(MonthLayout) == month
}

// MinutesBefore shifts an HH:MM clock value back by the given minutes,
// wrapping within the day. It returns the input unchanged when it does not
// parse.
func MinutesBefore(clock string, minutes int) string {
	parsed, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return clock
	}
	return parsed.Add(-time.Duration(minutes) * time.Minute).Format(ClockLayout)
}
