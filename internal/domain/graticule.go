package domain

import (
	"cmp"
	"fmt"
	"math"
)

// Graticule identifies a 1°×1° cell by its integer corner coordinates.
// Latitude is in [-90, 90], longitude in [-179, 179]; the ambiguous ±180
// column is excluded.
type Graticule struct {
	Lat int
	Lon int
}

// NewGraticule validates the coordinate ranges.
func NewGraticule(lat, lon int) (Graticule, error) {
	if lat < -90 || lat > 90 {
		return Graticule{}, fmt.Errorf("graticule latitude %d outside [-90, 90]", lat)
	}
	if lon < -179 || lon > 179 {
		return Graticule{}, fmt.Errorf("graticule longitude %d outside [-179, 179]", lon)
	}
	return Graticule{Lat: lat, Lon: lon}, nil
}

// GraticuleForPoint returns the graticule containing the given point,
// truncating each coordinate toward zero.
func GraticuleForPoint(lat, lon float64) (Graticule, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Graticule{}, fmt.Errorf("latitude %v is not a finite coordinate", lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Graticule{}, fmt.Errorf("longitude %v is not a finite coordinate", lon)
	}
	return NewGraticule(int(math.Trunc(lat)), int(math.Trunc(lon)))
}

// Compare orders graticules by latitude, then longitude.
func (g Graticule) Compare(other Graticule) int {
	if c := cmp.Compare(g.Lat, other.Lat); c != 0 {
		return c
	}
	return cmp.Compare(g.Lon, other.Lon)
}

// West reports whether the graticule lies west of, or exactly on, the 30°W
// meridian that splits the dow date rules.
func (g Graticule) West() bool {
	return g.Lon <= -30
}

func (g Graticule) String() string {
	return fmt.Sprintf("%d,%d", g.Lat, g.Lon)
}
