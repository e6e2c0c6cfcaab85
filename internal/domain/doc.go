// Package domain implements the xkcd #426 geohashing algorithm.
//
// # Algorithm
//
// A geohash is a deterministic coordinate inside a 1°×1° graticule, derived
// from a calendar date and a Dow Jones Industrial Average opening price:
//
//	input  = "2005-05-26-10458.68"        date, "-", price with two decimals
//	digest = md5(input)                   32 lowercase hex digits
//	lat    = graticule.Lat . digest[0:16]  as base-16 fractional digits
//	lon    = graticule.Lon . digest[16:32]
//
// Each digest half is read as the fractional digits of a base-16 number in
// [0, 1). See [DecodeHexFraction] and [HashToOffsets].
//
// The global hash variant hashes the same input but rescales the two
// fractions onto the whole planet: lat = f0*180-90, lon = f1*360-180.
//
// # Dow Dates and the 30W Rule
//
// Which day's opening price feeds the hash depends on the graticule's
// longitude. West of or on the 30°W meridian, the target date's own price
// applies. East of 30°W, dates after 2008-05-26 use the previous day's
// price, because the east's geohash becomes known before the New York
// market opens; earlier dates predate that rule and use the same-day price.
// Global hashes always use the previous day's price. See [ApplicableDowDate]
// and [ApplicableDowDateGlobal].
//
// Whatever date those rules select is then pulled back to the latest
// non-weekend day ([LatestTradingDayOnOrBefore]). Market holidays are
// deliberately not modeled; a weekday holiday resolves to itself and the
// price lookup is left to the sources.
//
// # Coordinate Composition
//
// Fractions are appended to the graticule coordinates textually, not
// arithmetically: the graticule integer is rendered, a decimal point and the
// fraction's digit string follow, and the result is parsed back as a float.
// For negative graticules the fraction therefore grows the magnitude away
// from zero ("-1" + "8577…" → -1.8577…), where float addition would shrink
// it. Historical renderings of the fraction in scientific notation corrupted
// this step; the fixed-point digit string from [Fraction.Digits] is the only
// form composition accepts. See [ComposeLocal].
//
// # Prices
//
// Opening prices come from a [PriceProvider]. The HTTP implementation in the
// djia adapter package queries mirrored plain-text sources with failover;
// [StaticProvider] serves a fixed table for offline runs and tests.
package domain
