package geo

import (
	"strings"

	"github.com/gamecss/routefinder/pkg"
	"github.com/gamecss/routefinder/pkg/util"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

// base32 is the geohash character set. 'a', 'i', 'l' and 'o' are excluded.
const base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// EncodeGeohash encodes a coordinate into a fixed-length geohash code.
// Deterministic: the same coordinate always yields the same code.
func EncodeGeohash(c Coordinate) string {
	return geohash.EncodeWithPrecision(c.Lat, c.Lon, pkg.GEOHASH_PRECISION)
}

// DecodeGeohash decodes a geohash code into the center coordinate of its
// cell, rounded to 6 decimal places. Lossy: the result lies within the
// precision bound of a 9-character cell, not bit-exact at the encoded point.
func DecodeGeohash(code string) (Coordinate, error) {
	if err := ValidateGeohash(code); err != nil {
		return Coordinate{}, err
	}
	center := geohash.Decode(code).Center()
	return NewCoordinate(
		util.RoundFloat(center.Lat(), 6),
		util.RoundFloat(center.Lng(), 6),
	), nil
}

// ValidateGeohash rejects codes of the wrong length or outside the geohash
// alphabet. Internally generated codes always pass; codes read back from
// compiled data may not.
func ValidateGeohash(code string) error {
	if len(code) != pkg.GEOHASH_PRECISION {
		return util.WrapErrorf(nil, util.ErrDataCorruption,
			"geohash %q must be %d characters", code, pkg.GEOHASH_PRECISION)
	}
	for i := 0; i < len(code); i++ {
		if !strings.ContainsRune(base32, rune(code[i])) {
			return util.WrapErrorf(nil, util.ErrDataCorruption,
				"geohash %q contains invalid character %q", code, code[i])
		}
	}
	return nil
}
