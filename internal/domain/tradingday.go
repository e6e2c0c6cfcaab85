package domain

import "time"

// DateFormat is the calendar-date layout used throughout: in hash inputs,
// source URLs (with slashes), provider tables, and rendered output.
const DateFormat = "2006-01-02"

// dateOnly normalizes t to its civil date at midnight UTC. Time of day and
// zone never influence hashing.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LatestTradingDayOnOrBefore returns the most recent day on or before date
// that is not a Saturday or Sunday. Market holidays are not modeled.
func LatestTradingDayOnOrBefore(date time.Time) time.Time {
	d := dateOnly(date)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, -1)
	}
	return d
}
