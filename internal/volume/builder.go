package volume

import (
	"math"
	"time"

	"github.com/uasplan/uplan-backend-go/internal/geodesy"
	"github.com/uasplan/uplan-backend-go/internal/models"
)

// timeLayout is the authorization service's timestamp format: ISO-8601 with
// no fractional seconds and no zone suffix.
const timeLayout = "2006-01-02T15:04:05"

// RectangleCorners builds the closed oriented-rectangle ring around a segment
// midpoint. Front-center and back-center are alongTrack meters along
// azimuthDeg and its reverse; each is then pushed crossTrack meters left and
// right. Corner order is front-left, front-right, back-right, back-left,
// front-left, with the first point repeated to close the ring. Downstream
// consumers depend on this exact winding.
func RectangleCorners(midLat, midLon, azimuthDeg, alongTrack, crossTrack float64) []geodesy.Point {
	left := azimuthDeg - 90
	right := azimuthDeg + 90

	frontLat, frontLon := geodesy.DestinationPoint(midLat, midLon, azimuthDeg, alongTrack)
	backLat, backLon := geodesy.DestinationPoint(midLat, midLon, azimuthDeg+180, alongTrack)

	frontLeftLat, frontLeftLon := geodesy.DestinationPoint(frontLat, frontLon, left, crossTrack)
	frontRightLat, frontRightLon := geodesy.DestinationPoint(frontLat, frontLon, right, crossTrack)
	backRightLat, backRightLon := geodesy.DestinationPoint(backLat, backLon, right, crossTrack)
	backLeftLat, backLeftLon := geodesy.DestinationPoint(backLat, backLon, left, crossTrack)

	return []geodesy.Point{
		{Lat: frontLeftLat, Lon: frontLeftLon},
		{Lat: frontRightLat, Lon: frontRightLon},
		{Lat: backRightLat, Lon: backRightLon},
		{Lat: backLeftLat, Lon: backLeftLon},
		{Lat: frontLeftLat, Lon: frontLeftLon},
	}
}

// Build assembles the operation volume for one waypoint pair.
func Build(wp1, wp2 models.Waypoint, ordinal int, startTimestamp float64, cfg Config) models.OperationVolume {
	horizontalDist := geodesy.Distance(wp1.Lat, wp1.Lon, wp2.Lat, wp2.Lon)
	azimuth := geodesy.InitialAzimuth(wp1.Lat, wp1.Lon, wp2.Lat, wp2.Lon)
	verticalDist := math.Abs(wp2.H - wp1.H)

	segType := Classify(horizontalDist, verticalDist, cfg)
	buf := BuffersFor(segType, horizontalDist, verticalDist, cfg)

	// Arithmetic-mean midpoint, consistent with the linear interpolation
	// approximation in the geodesy package.
	midLat := (wp1.Lat + wp2.Lat) / 2
	midLon := (wp1.Lon + wp2.Lon) / 2
	midAlt := (wp1.H + wp2.H) / 2

	corners := RectangleCorners(midLat, midLon, azimuth, buf.AlongTrack, buf.CrossTrack)
	// The ring is never empty here, so the error branch is unreachable.
	bbox, _ := geodesy.BoundingBox(corners)

	ring := make([][]float64, len(corners))
	for i, c := range corners {
		ring[i] = []float64{c.Lon, c.Lat}
	}

	begin, end := absoluteSeconds(wp1.Time, wp2.Time, startTimestamp)

	minAlt := midAlt - buf.Vertical
	if minAlt < models.MinimumGroundClearanceMeters {
		minAlt = models.MinimumGroundClearanceMeters
	}

	return models.OperationVolume{
		Ordinal: ordinal,
		Geometry: models.Geometry{
			Type:        "Polygon",
			Coordinates: [][][]float64{ring},
			BBox:        bbox,
		},
		TimeBegin: formatVolumeTime(begin - cfg.TimeBuffer),
		TimeEnd:   formatVolumeTime(end + cfg.TimeBuffer),
		MinAltitude: models.Altitude{
			Value:     minAlt,
			Reference: models.AltitudeReferenceAGL,
			Uom:       models.AltitudeUomMeters,
		},
		MaxAltitude: models.Altitude{
			Value:     midAlt + buf.Vertical,
			Reference: models.AltitudeReferenceAGL,
			Uom:       models.AltitudeUomMeters,
		},
	}
}

// BuildAll emits one volume per consecutive waypoint pair, with contiguous
// ordinals starting at 0. Fewer than two waypoints means there is no segment
// to bound, and the result is empty.
func BuildAll(waypoints []models.Waypoint, startTimestamp float64, cfg Config) []models.OperationVolume {
	if len(waypoints) < 2 {
		return []models.OperationVolume{}
	}
	volumes := make([]models.OperationVolume, 0, len(waypoints)-1)
	for i := 0; i+1 < len(waypoints); i++ {
		volumes = append(volumes, Build(waypoints[i], waypoints[i+1], i, startTimestamp, cfg))
	}
	return volumes
}

// absoluteSeconds resolves a segment's waypoint times against the scheduled
// start. The first waypoint's time decides for both: below
// models.AbsoluteTimeThreshold means offsets from the start, otherwise both
// are taken as already-absolute POSIX seconds.
func absoluteSeconds(t1, t2, startTimestamp float64) (float64, float64) {
	if t1 < models.AbsoluteTimeThreshold {
		return startTimestamp + t1, startTimestamp + t2
	}
	return t1, t2
}

// formatVolumeTime truncates to whole seconds and renders UTC in the
// authorization service's layout.
func formatVolumeTime(posixSeconds float64) string {
	return time.Unix(int64(posixSeconds), 0).UTC().Format(timeLayout)
}
