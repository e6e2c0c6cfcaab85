package domain

import (
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"time"
)

// BuildHashInput renders the canonical hash input: the date joined to the
// price formatted with exactly two decimals, e.g. "2005-05-26-10458.68".
func BuildHashInput(date time.Time, price float64) string {
	return dateOnly(date).Format(DateFormat) + "-" + strconv.FormatFloat(price, 'f', 2, 64)
}

// HashToOffsets computes the MD5 digest of input and decodes its two hex
// halves: first half latitude fraction, second half longitude fraction.
// MD5 is fixed by the algorithm; it is not a security boundary here.
func HashToOffsets(input string) (latFrac, lonFrac Fraction, err error) {
	sum := md5.Sum([]byte(input))
	digest := hex.EncodeToString(sum[:])

	latFrac, err = DecodeHexFraction(digest[:16])
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	lonFrac, err = DecodeHexFraction(digest[16:])
	if err != nil {
		return Fraction{}, Fraction{}, err
	}
	return latFrac, lonFrac, nil
}
