package models

// Geometry is the GeoJSON-flavored polygon carried by an operation volume.
// Coordinates hold a single closed ring of [lon, lat] pairs; BBox is
// [minLon, minLat, maxLon, maxLat].
type Geometry struct {
	Type        string        `json:"type"`
	Coordinates [][][]float64 `json:"coordinates"`
	BBox        [4]float64    `json:"bbox"`
}

// Altitude is a referenced altitude value as the authorization service
// expects it.
type Altitude struct {
	Value     float64 `json:"value"`
	Reference string  `json:"reference"`
	Uom       string  `json:"uom"`
}

// OperationVolume is one 4D envelope of the flight: an oriented rectangle in
// space, an altitude band, and a buffered time window. Ordinals are
// contiguous from 0 in trajectory order, one per consecutive waypoint pair.
// Time strings are ISO-8601 without fractional seconds or zone suffix.
type OperationVolume struct {
	Ordinal     int      `json:"ordinal"`
	Geometry    Geometry `json:"geometry"`
	TimeBegin   string   `json:"timeBegin"`
	TimeEnd     string   `json:"timeEnd"`
	MinAltitude Altitude `json:"minAltitude"`
	MaxAltitude Altitude `json:"maxAltitude"`
}

const (
	// AltitudeReferenceAGL is the altitude reference for every volume this
	// system emits.
	AltitudeReferenceAGL = "AGL"

	// AltitudeUomMeters is the unit of measure for volume altitudes.
	AltitudeUomMeters = "M"

	// MinimumGroundClearanceMeters is the regulatory floor applied to every
	// volume's minimum altitude.
	MinimumGroundClearanceMeters = 10.0
)
