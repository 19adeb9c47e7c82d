package geodesy

import "errors"

// Point is a geographic position in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// ErrEmptyPointSet is returned by BoundingBox when there are no points to
// bound.
var ErrEmptyPointSet = errors.New("geodesy: bounding box of empty point set")

// Interpolate returns the point at the given fraction along the straight line
// from p1 to p2 in lat/lon space. Linear rather than geodesic interpolation:
// for the short segments typical of UAS trajectories (well under a few km)
// the error is negligible, and the volume builder relies on the same
// approximation for segment midpoints.
func Interpolate(p1, p2 Point, fraction float64) Point {
	return Point{
		Lat: p1.Lat + (p2.Lat-p1.Lat)*fraction,
		Lon: p1.Lon + (p2.Lon-p1.Lon)*fraction,
	}
}

// Midpoint returns the linear midpoint of p1 and p2. See Interpolate for the
// approximation note.
func Midpoint(p1, p2 Point) Point {
	return Interpolate(p1, p2, 0.5)
}

// BoundingBox returns the axis-aligned bounds of the points as
// [minLon, minLat, maxLon, maxLat], the ordering used by GeoJSON bbox
// members.
func BoundingBox(points []Point) ([4]float64, error) {
	if len(points) == 0 {
		return [4]float64{}, ErrEmptyPointSet
	}

	minLon, maxLon := points[0].Lon, points[0].Lon
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, p := range points[1:] {
		if p.Lon < minLon {
			minLon = p.Lon
		}
		if p.Lon > maxLon {
			maxLon = p.Lon
		}
		if p.Lat < minLat {
			minLat = p.Lat
		}
		if p.Lat > maxLat {
			maxLat = p.Lat
		}
	}
	return [4]float64{minLon, minLat, maxLon, maxLat}, nil
}
