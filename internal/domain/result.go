package domain

import (
	"cmp"
	"time"
)

// Result is one computed geohash.
type Result struct {
	Latitude    float64
	Longitude   float64
	UsedDowDate time.Time // trading day whose opening price fed the hash
	UsedDate    time.Time // calendar date the hash is for
}

// Equal reports whether both coordinates and both dates match.
func (r Result) Equal(other Result) bool {
	return r.Latitude == other.Latitude &&
		r.Longitude == other.Longitude &&
		r.UsedDowDate.Equal(other.UsedDowDate) &&
		r.UsedDate.Equal(other.UsedDate)
}

// Compare orders results by date, then latitude, then longitude.
func (r Result) Compare(other Result) int {
	if c := r.UsedDate.Compare(other.UsedDate); c != 0 {
		return c
	}
	if c := cmp.Compare(r.Latitude, other.Latitude); c != 0 {
		return c
	}
	return cmp.Compare(r.Longitude, other.Longitude)
}
