package geodesy

import "math"

// NormalizeAzimuth maps an angle in degrees onto [0,360). Negative inputs and
// exact multiples of 360 come back as plain positive values, never -0.
func NormalizeAzimuth(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	// Tiny negative inputs can round up to exactly 360 after the shift, and
	// math.Mod preserves the sign of a -0 operand.
	if m >= 360 || m == 0 {
		return 0
	}
	return m
}

// NormalizeLongitude maps a longitude in degrees onto [-180,180). Exactly
// +180 wraps to -180.
func NormalizeLongitude(deg float64) float64 {
	m := math.Mod(deg+180, 360)
	if m < 0 {
		m += 360
	}
	if m >= 360 {
		m = 0
	}
	return m - 180
}
