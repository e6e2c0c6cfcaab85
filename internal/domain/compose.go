package domain

import (
	"fmt"
	"strconv"
)

// ComposeLocal appends each fraction's decimal digits to the graticule's
// integer coordinates. The composition is textual: "-1" with digits "8577…"
// yields -1.8577…, so the fraction always moves the coordinate away from
// zero. Float addition would move negative coordinates toward zero instead
// and must not be substituted here.
func ComposeLocal(g Graticule, latFrac, lonFrac Fraction) (lat, lon float64, err error) {
	lat, err = composeCoordinate(g.Lat, latFrac)
	if err != nil {
		return 0, 0, err
	}
	lon, err = composeCoordinate(g.Lon, lonFrac)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}

func composeCoordinate(deg int, frac Fraction) (float64, error) {
	s := strconv.Itoa(deg) + "." + frac.Digits()
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("compose coordinate %q: %w", s, err)
	}
	return v, nil
}

// ComposeGlobal composes on the zero graticule and rescales the resulting
// [0,1) pair onto the full ranges: latitude [-90, 90), longitude [-180, 180).
func ComposeGlobal(latFrac, lonFrac Fraction) (lat, lon float64, err error) {
	f0, f1, err := ComposeLocal(Graticule{}, latFrac, lonFrac)
	if err != nil {
		return 0, 0, err
	}
	return f0*180 - 90, f1*360 - 180, nil
}
