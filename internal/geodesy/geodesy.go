package geodesy

import (
	"math"

	"github.com/golang/geo/s2"
)

// WGS84 ellipsoid parameters.
const (
	SemiMajorAxisMeters = 6378137.0
	Flattening          = 1.0 / 298.257223563
	SemiMinorAxisMeters = SemiMajorAxisMeters * (1.0 - Flattening)

	// MeanEarthRadiusMeters is the IUGG mean radius, used by the spherical
	// fallback formulas when the ellipsoidal solution does not converge.
	MeanEarthRadiusMeters = 6371008.8

	// CoincidentEpsilonMeters is returned by Distance for coincident points
	// so that downstream buffer math never divides by zero.
	CoincidentEpsilonMeters = 0.01
)

const (
	vincentyTolerance  = 1e-12
	vincentyIterations = 200
)

// Distance returns the geodesic distance in meters between two points on the
// WGS84 ellipsoid. Coincident points yield CoincidentEpsilonMeters instead of
// zero. If the ellipsoidal solution fails to converge (antipodal or
// near-antipodal inputs), the great-circle Haversine distance on the mean
// Earth radius is returned instead; this function never fails.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return CoincidentEpsilonMeters
	}
	s, _, ok := vincentyInverse(lat1, lon1, lat2, lon2)
	if !ok || math.IsNaN(s) {
		return haversineDistance(lat1, lon1, lat2, lon2)
	}
	if s == 0 {
		return CoincidentEpsilonMeters
	}
	return s
}

// InitialAzimuth returns the forward bearing in degrees [0,360) from point 1
// to point 2 on the WGS84 ellipsoid. Coincident points yield 0. Falls back to
// the spherical bearing formula when the ellipsoidal solution does not
// converge.
func InitialAzimuth(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}
	_, az, ok := vincentyInverse(lat1, lon1, lat2, lon2)
	if !ok || math.IsNaN(az) {
		return sphericalBearing(lat1, lon1, lat2, lon2)
	}
	return NormalizeAzimuth(az)
}

// DestinationPoint solves the direct geodesic problem: the point reached by
// traveling distanceMeters along azimuthDeg from (lat, lon) on the WGS84
// ellipsoid. The returned longitude is normalized to [-180,180). Falls back
// to the spherical direct formula on numerical failure.
func DestinationPoint(lat, lon, azimuthDeg, distanceMeters float64) (float64, float64) {
	dLat, dLon, ok := vincentyDirect(lat, lon, azimuthDeg, distanceMeters)
	if !ok || math.IsNaN(dLat) || math.IsNaN(dLon) {
		dLat, dLon = sphericalDestination(lat, lon, azimuthDeg, distanceMeters)
	}
	return dLat, NormalizeLongitude(dLon)
}

// vincentyInverse solves the inverse geodesic problem on the WGS84 ellipsoid.
// Returns distance in meters, the initial azimuth in degrees, and whether the
// iteration converged.
func vincentyInverse(lat1, lon1, lat2, lon2 float64) (float64, float64, bool) {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	diffLon := (lon2 - lon1) * math.Pi / 180

	u1 := math.Atan((1 - Flattening) * math.Tan(phi1))
	u2 := math.Atan((1 - Flattening) * math.Tan(phi2))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := diffLon
	var sinLambda, cosLambda float64
	var sinSigma, cosSigma, sigma float64
	var cosSqAlpha, cos2SigmaM float64

	converged := false
	for i := 0; i < vincentyIterations; i++ {
		sinLambda, cosLambda = math.Sincos(lambda)
		sinSigma = math.Sqrt(
			(cosU2*sinLambda)*(cosU2*sinLambda) +
				(cosU1*sinU2-sinU1*cosU2*cosLambda)*(cosU1*sinU2-sinU1*cosU2*cosLambda))
		if sinSigma == 0 {
			// Coincident points.
			return 0, 0, true
		}
		cosSigma = sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma = math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha = 1 - sinAlpha*sinAlpha
		if cosSqAlpha == 0 {
			// Equatorial line.
			cos2SigmaM = 0
		} else {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}

		c := Flattening / 16 * cosSqAlpha * (4 + Flattening*(4-3*cosSqAlpha))
		lambdaPrev := lambda
		lambda = diffLon + (1-c)*Flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda) > math.Pi {
			// Near-antipodal, the iteration will not converge.
			return 0, 0, false
		}
		if math.Abs(lambda-lambdaPrev) < vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, false
	}

	uSq := cosSqAlpha * (SemiMajorAxisMeters*SemiMajorAxisMeters - SemiMinorAxisMeters*SemiMinorAxisMeters) /
		(SemiMinorAxisMeters * SemiMinorAxisMeters)
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
		(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
			bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))

	distance := SemiMinorAxisMeters * bigA * (sigma - deltaSigma)
	azimuth := math.Atan2(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda) * 180 / math.Pi
	return distance, azimuth, true
}

// vincentyDirect solves the direct geodesic problem on the WGS84 ellipsoid.
// Returns the destination latitude and longitude in degrees and whether the
// iteration converged.
func vincentyDirect(lat, lon, azimuthDeg, distanceMeters float64) (float64, float64, bool) {
	phi1 := lat * math.Pi / 180
	alpha1 := azimuthDeg * math.Pi / 180
	sinAlpha1, cosAlpha1 := math.Sincos(alpha1)

	tanU1 := (1 - Flattening) * math.Tan(phi1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	sigma1 := math.Atan2(tanU1, cosAlpha1)
	sinAlpha := cosU1 * sinAlpha1
	cosSqAlpha := 1 - sinAlpha*sinAlpha

	uSq := cosSqAlpha * (SemiMajorAxisMeters*SemiMajorAxisMeters - SemiMinorAxisMeters*SemiMinorAxisMeters) /
		(SemiMinorAxisMeters * SemiMinorAxisMeters)
	bigA := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	bigB := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))

	sigma := distanceMeters / (SemiMinorAxisMeters * bigA)
	var sinSigma, cosSigma, cos2SigmaM float64

	converged := false
	for i := 0; i < vincentyIterations; i++ {
		cos2SigmaM = math.Cos(2*sigma1 + sigma)
		sinSigma, cosSigma = math.Sincos(sigma)
		deltaSigma := bigB * sinSigma * (cos2SigmaM + bigB/4*
			(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
				bigB/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
		sigmaPrev := sigma
		sigma = distanceMeters/(SemiMinorAxisMeters*bigA) + deltaSigma
		if math.Abs(sigma-sigmaPrev) < vincentyTolerance {
			converged = true
			break
		}
	}
	if !converged {
		return 0, 0, false
	}

	cos2SigmaM = math.Cos(2*sigma1 + sigma)
	sinSigma, cosSigma = math.Sincos(sigma)

	tmp := sinU1*sinSigma - cosU1*cosSigma*cosAlpha1
	phi2 := math.Atan2(sinU1*cosSigma+cosU1*sinSigma*cosAlpha1,
		(1-Flattening)*math.Sqrt(sinAlpha*sinAlpha+tmp*tmp))
	lambda := math.Atan2(sinSigma*sinAlpha1, cosU1*cosSigma-sinU1*sinSigma*cosAlpha1)
	c := Flattening / 16 * cosSqAlpha * (4 + Flattening*(4-3*cosSqAlpha))
	diffLon := lambda - (1-c)*Flattening*sinAlpha*
		(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

	return phi2 * 180 / math.Pi, lon + diffLon*180/math.Pi, true
}

// haversineDistance is the great-circle fallback, computed on the mean Earth
// radius via the S2 spherical angle between the two points.
func haversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	d := p1.Distance(p2).Radians() * MeanEarthRadiusMeters
	if d == 0 {
		return CoincidentEpsilonMeters
	}
	return d
}

// sphericalBearing is the great-circle forward-azimuth fallback.
func sphericalBearing(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lonDiff := (lon2 - lon1) * math.Pi / 180

	y := math.Sin(lonDiff) * math.Cos(lat2Rad)
	x := math.Cos(lat1Rad)*math.Sin(lat2Rad) - math.Sin(lat1Rad)*math.Cos(lat2Rad)*math.Cos(lonDiff)
	return NormalizeAzimuth(math.Atan2(y, x) * 180 / math.Pi)
}

// sphericalDestination is the great-circle direct-problem fallback.
func sphericalDestination(lat, lon, azimuthDeg, distanceMeters float64) (float64, float64) {
	latRad := lat * math.Pi / 180
	lonRad := lon * math.Pi / 180
	azRad := azimuthDeg * math.Pi / 180
	angular := distanceMeters / MeanEarthRadiusMeters

	lat2 := math.Asin(math.Sin(latRad)*math.Cos(angular) +
		math.Cos(latRad)*math.Sin(angular)*math.Cos(azRad))
	lon2 := lonRad + math.Atan2(
		math.Sin(azRad)*math.Sin(angular)*math.Cos(latRad),
		math.Cos(angular)-math.Sin(latRad)*math.Sin(lat2))

	return lat2 * 180 / math.Pi, lon2 * 180 / math.Pi
}
