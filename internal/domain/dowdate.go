package domain

import "time"

// thirtyWestCutoff is the last date the original same-day rule applied east
// of 30°W. The ratified fix took effect the following day, 2008-05-27.
var thirtyWestCutoff = time.Date(2008, time.May, 26, 0, 0, 0, 0, time.UTC)

// ApplicableDowDate resolves which trading day's Dow opening price feeds the
// hash for target in graticule g (the "30W rule"). West of or on the 30°W
// meridian the target's own date applies; east of it, dates after the
// 2008-05-26 cutoff use the previous day. Either way the result is pulled
// back to the latest trading day.
func ApplicableDowDate(g Graticule, target time.Time) time.Time {
	day := dateOnly(target)
	if g.West() || !day.After(thirtyWestCutoff) {
		return LatestTradingDayOnOrBefore(day)
	}
	return LatestTradingDayOnOrBefore(day.AddDate(0, 0, -1))
}

// ApplicableDowDateGlobal resolves the Dow date for a global hash: the
// latest trading day before target, everywhere, on every date.
func ApplicableDowDateGlobal(target time.Time) time.Time {
	return LatestTradingDayOnOrBefore(dateOnly(target).AddDate(0, 0, -1))
}
