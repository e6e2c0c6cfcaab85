// Package render formats computed geohashes for people, pipes, and maps.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/cloudmollusc/xkcd-geohash/internal/domain"
)

// Payload is the JSON shape of a result.
type Payload struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Date        string  `json:"date"`
	UsedDowDate string  `json:"used_dow_date"`
}

// NewPayload converts a result to its JSON shape.
func NewPayload(r domain.Result) Payload {
	return Payload{
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Date:        r.UsedDate.Format(domain.DateFormat),
		UsedDowDate: r.UsedDowDate.Format(domain.DateFormat),
	}
}

// Format renders r in the named format: decimal, dms, bare, or json. An
// empty name means decimal.
func Format(r domain.Result, format string) (string, error) {
	switch format {
	case "", "decimal":
		return Decimal(r), nil
	case "dms":
		return DMS(r), nil
	case "bare":
		return Bare(r), nil
	case "json":
		return JSON(r)
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// Decimal renders "68.857713, -30.544543".
func Decimal(r domain.Result) string {
	return fmt.Sprintf("%.6f, %.6f", r.Latitude, r.Longitude)
}

// Bare renders "68.857713 -30.544543", convenient for piping.
func Bare(r domain.Result) string {
	return fmt.Sprintf("%.6f %.6f", r.Latitude, r.Longitude)
}

// DMS renders degrees, minutes, and decimal seconds with hemisphere
// suffixes: 68°51'27.8"N 30°32'40.4"W.
func DMS(r domain.Result) string {
	return dms(r.Latitude, "N", "S") + " " + dms(r.Longitude, "E", "W")
}

func dms(deg float64, pos, neg string) string {
	hemi := pos
	if deg < 0 {
		hemi = neg
		deg = -deg
	}

	d := int(deg)
	rem := (deg - float64(d)) * 60
	m := int(rem)
	s := (rem - float64(m)) * 60

	// Rounding seconds to one decimal can reach 60.0; carry instead.
	if s >= 59.95 {
		s = 0
		m++
	}
	if m == 60 {
		m = 0
		d++
	}

	return fmt.Sprintf("%d°%02d'%04.1f\"%s", d, m, s, hemi)
}

// JSON renders the result as a single-line JSON object.
func JSON(r domain.Result) (string, error) {
	b, err := json.Marshal(NewPayload(r))
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(b), nil
}

// MapURL returns a marker link for the named service: osm or google.
func MapURL(r domain.Result, service string) (string, error) {
	switch service {
	case "osm":
		return OSMURL(r), nil
	case "google":
		return GoogleMapsURL(r), nil
	default:
		return "", fmt.Errorf("unknown map service %q", service)
	}
}

// OSMURL links to an OpenStreetMap marker at the result.
func OSMURL(r domain.Result) string {
	return fmt.Sprintf("https://www.openstreetmap.org/?mlat=%.6f&mlon=%.6f&zoom=12", r.Latitude, r.Longitude)
}

// GoogleMapsURL links to a Google Maps pin at the result.
func GoogleMapsURL(r domain.Result) string {
	return fmt.Sprintf("https://maps.google.com/?q=%.6f,%.6f", r.Latitude, r.Longitude)
}
