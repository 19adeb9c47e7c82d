package geodesy

import (
	"math"
	"testing"
)

// Known inverse solutions, checked against GeographicLib output.
func TestDistanceKnownValues(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tol                    float64
	}{
		// One degree of longitude along the equator.
		{"equator degree", 0, 0, 0, 1, 111319.49, 1.0},
		// Vincenty's classic test line (Land's End to Dunnet Head area).
		{"long line", 50.06632, -5.71475, 58.64402, -3.07009, 969954.114, 1.0},
		// Short meridional hop at mid latitude.
		{"short hop", 40.0, -3.0, 40.001, -3.0, 111.04, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("Distance = %.3f m, want %.3f ± %.1f", got, tt.want, tt.tol)
			}
		})
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][4]float64{
		{40.0, -3.0, 40.001, -3.0},          // < 1 km
		{40.0, -3.0, 40.5, -2.5},            // tens of km
		{50.06632, -5.71475, 58.64402, -3.07009}, // ~970 km
		{-33.8, 151.2, 35.6, 139.7},         // hemispheric
	}
	for _, p := range pairs {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-6*ab {
			t.Errorf("Distance(%v) asymmetric: %.9f vs %.9f", p, ab, ba)
		}
	}
}

func TestDistanceCoincidentEpsilon(t *testing.T) {
	got := Distance(40.0, -3.0, 40.0, -3.0)
	if got != CoincidentEpsilonMeters {
		t.Errorf("coincident Distance = %g, want %g", got, CoincidentEpsilonMeters)
	}
}

// Near-antipodal inputs must degrade to the spherical fallback, never fail.
func TestDistanceAntipodalFallback(t *testing.T) {
	got := Distance(0, 0, 0.5, 179.7)
	// Half the mean circumference is ~20,015 km; anything in that region is
	// acceptable, the point is that we get a finite positive number.
	if math.IsNaN(got) || got < 19_000_000 || got > 20_100_000 {
		t.Errorf("near-antipodal Distance = %g, want ~2.0e7", got)
	}
}

func TestInitialAzimuth(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tol                    float64
	}{
		{"due north", 40.0, -3.0, 41.0, -3.0, 0, 1e-9},
		{"due east at equator", 0, 0, 0, 1, 90, 1e-9},
		{"due south", 41.0, -3.0, 40.0, -3.0, 180, 1e-9},
		{"vincenty line", 50.06632, -5.71475, 58.64402, -3.07009, 9.12, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InitialAzimuth(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("InitialAzimuth = %.6f, want %.6f ± %g", got, tt.want, tt.tol)
			}
		})
	}
}

func TestInitialAzimuthRangeAndCoincident(t *testing.T) {
	if got := InitialAzimuth(40.0, -3.0, 40.0, -3.0); got != 0 {
		t.Errorf("coincident azimuth = %g, want 0", got)
	}
	// West-going bearings must come back normalized, not negative.
	got := InitialAzimuth(0, 0, 0, -1)
	if got < 0 || got >= 360 {
		t.Errorf("azimuth %g outside [0,360)", got)
	}
	if math.Abs(got-270) > 1e-9 {
		t.Errorf("due-west azimuth = %g, want 270", got)
	}
}

// The direct and inverse problems must agree: travel d along any bearing,
// then the inverse distance back to the start is d again.
func TestDestinationPointRoundTrip(t *testing.T) {
	start := Point{Lat: 40.0, Lon: -3.0}
	for _, az := range []float64{0, 37, 90, 133, 180, 225, 270, 359} {
		for _, d := range []float64{10, 500, 5_000, 50_000, 100_000} {
			lat, lon := DestinationPoint(start.Lat, start.Lon, az, d)
			back := Distance(start.Lat, start.Lon, lat, lon)
			if math.Abs(back-d) > 1.0 {
				t.Errorf("az=%g d=%g: round-trip distance %.3f", az, d, back)
			}
		}
	}
}

func TestDestinationPointLongitudeNormalized(t *testing.T) {
	// Cross the antimeridian heading east.
	_, lon := DestinationPoint(10.0, 179.9, 90, 50_000)
	if lon < -180 || lon >= 180 {
		t.Errorf("longitude %g outside [-180,180)", lon)
	}
	if lon > 0 {
		t.Errorf("longitude %g should have wrapped negative", lon)
	}
}

func TestNormalizeAzimuth(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{360, 0},
		{-360, 0},
		{720, 0},
		{-90, 270},
		{450, 90},
		{359.5, 359.5},
		{-0.0, 0},
	}
	for _, tt := range tests {
		got := NormalizeAzimuth(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeAzimuth(%g) = %g, want %g", tt.in, got, tt.want)
		}
		if math.Signbit(got) {
			t.Errorf("NormalizeAzimuth(%g) returned signed zero", tt.in)
		}
	}
}

func TestNormalizeLongitude(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{180, -180},
		{-180, -180},
		{360, 0},
		{540, -180},
		{-190, 170},
		{190, -170},
		{-0.0, 0},
	}
	for _, tt := range tests {
		got := NormalizeLongitude(tt.in)
		if got != tt.want {
			t.Errorf("NormalizeLongitude(%g) = %g, want %g", tt.in, got, tt.want)
		}
	}
	if math.Signbit(NormalizeLongitude(0)) {
		t.Error("NormalizeLongitude(0) returned signed zero")
	}
}

func TestInterpolateAndMidpoint(t *testing.T) {
	a := Point{Lat: 40.0, Lon: -3.0}
	b := Point{Lat: 41.0, Lon: -2.0}

	mid := Midpoint(a, b)
	if mid.Lat != 40.5 || mid.Lon != -2.5 {
		t.Errorf("Midpoint = %+v, want {40.5 -2.5}", mid)
	}

	q := Interpolate(a, b, 0.25)
	if q.Lat != 40.25 || q.Lon != -2.75 {
		t.Errorf("Interpolate(0.25) = %+v, want {40.25 -2.75}", q)
	}
	if got := Interpolate(a, b, 0); got != a {
		t.Errorf("Interpolate(0) = %+v, want %+v", got, a)
	}
	if got := Interpolate(a, b, 1); got != b {
		t.Errorf("Interpolate(1) = %+v, want %+v", got, b)
	}
}

func TestBoundingBox(t *testing.T) {
	points := []Point{
		{Lat: 40.0, Lon: -3.0},
		{Lat: 40.5, Lon: -2.0},
		{Lat: 39.8, Lon: -2.5},
	}
	bbox, err := BoundingBox(points)
	if err != nil {
		t.Fatalf("BoundingBox: %v", err)
	}
	want := [4]float64{-3.0, 39.8, -2.0, 40.5}
	if bbox != want {
		t.Errorf("BoundingBox = %v, want %v", bbox, want)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	if _, err := BoundingBox(nil); err != ErrEmptyPointSet {
		t.Errorf("BoundingBox(nil) error = %v, want ErrEmptyPointSet", err)
	}
}
