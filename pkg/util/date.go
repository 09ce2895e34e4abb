package util

import "time"

// DateLayout is the calendar-day format used on the wire.
const DateLayout = "2006-01-02"

// FormatDate renders t as YYYY-MM-DD in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsWeekday reports whether t falls on Monday through Friday.
func IsWeekday(t time.Time) bool {
	switch t.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// Lookback returns the [now-days, now] window.
func Lookback(now time.Time, days int) (time.Time, time.Time) {
	return now.AddDate(0, 0, -days), now
}
