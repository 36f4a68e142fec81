package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
)

// ValidateCoordinates reports whether lat/lon are inside WGS84 bounds.
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// RoundTenth rounds v to one decimal place, half away from zero.
func RoundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// CoarseGeohash encodes a point at the given precision (1..12 chars).
// Out-of-range precision is clamped.
func CoarseGeohash(lat, lon float64, precision uint) string {
	if precision < 1 {
		precision = 1
	}
	if precision > 12 {
		precision = 12
	}
	return geohash.EncodeWithPrecision(lat, lon, precision)
}
