package domain

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// fracDigits is how many decimal digits Digits renders. Sixteen hex digits
// carry just over 19 decimal digits of information, so 20 preserves the
// whole fraction.
const fracDigits = 20

// five64 is 5^64. n/2^64 equals n·5^64/10^64, which makes the exact decimal
// expansion representable at scale 64.
var five64 = new(big.Int).Exp(big.NewInt(5), big.NewInt(64), nil)

// InvalidHexError reports codec input that is not exactly 16 hex digits.
type InvalidHexError struct {
	Input string
}

func (e *InvalidHexError) Error() string {
	return fmt.Sprintf("invalid hex fraction %q: want exactly 16 hexadecimal digits", e.Input)
}

// Fraction is a value in [0, 1) with 64 bits of precision: one decoded half
// of an MD5 digest.
type Fraction struct {
	num uint64 // value = num / 2^64
}

// DecodeHexFraction reads hex16 as the fractional digits of a base-16 number
// 0.hhhhhhhhhhhhhhhh. The input must be exactly 16 hex digits, upper or
// lower case; anything else fails with *InvalidHexError.
func DecodeHexFraction(hex16 string) (Fraction, error) {
	if len(hex16) != 16 {
		return Fraction{}, &InvalidHexError{Input: hex16}
	}
	n, err := strconv.ParseUint(hex16, 16, 64)
	if err != nil {
		return Fraction{}, &InvalidHexError{Input: hex16}
	}
	return Fraction{num: n}, nil
}

// Float64 returns the nearest float64 to the fraction. The all-ones digest
// rounds up to exactly 1.0 here; composition uses Digits, which never
// reaches 1.
func (f Fraction) Float64() float64 {
	return math.Ldexp(float64(f.num), -64)
}

// Decimal returns the exact value.
func (f Fraction) Decimal() decimal.Decimal {
	scaled := new(big.Int).Mul(new(big.Int).SetUint64(f.num), five64)
	return decimal.NewFromBigInt(scaled, -64)
}

// Digits returns the exact decimal expansion truncated to 20 fractional
// digits, without the leading "0.". Zero renders as twenty zeros; the
// all-ones digest stays strictly below one.
func (f Fraction) Digits() string {
	s := f.Decimal().Truncate(fracDigits).StringFixed(fracDigits)
	return strings.TrimPrefix(s, "0.")
}
