package models

import "time"

// Time range symbols accepted by list endpoints.
const (
	RangeWeek  = "week"
	RangeMonth = "month"
	RangeYear  = "year"
)

// RangeStart converts a symbolic window into the inclusive lower bound for a
// date filter: 7 calendar days, 1 calendar month, or 1 calendar year before
// now. Any unrecognized symbol falls back to week.
//
// Month and year subtraction clamp to the last valid day of the target month
// (e.g. Mar 31 minus one month is Feb 29 in a leap year) instead of letting
// the date normalize into the following month, which is what time.AddDate
// would do.
func RangeStart(symbol string, now time.Time) time.Time {
	switch symbol {
	case RangeMonth:
		return addMonthsClamped(now, -1)
	case RangeYear:
		return addMonthsClamped(now, -12)
	default:
		return now.AddDate(0, 0, -7)
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	// Compute the target month on the first, then clamp the day.
	first := time.Date(y, m, 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	first = first.AddDate(0, months, 0)
	if last := daysIn(first.Year(), first.Month()); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
