package export

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/twpayne/go-kml"

	"github.com/uasplan/uplan-backend-go/internal/models"
)

// VolumesKML renders an operation-volume sequence as a KML document for
// review in Google Earth. Each volume becomes an extruded polygon at its
// maximum altitude, named by ordinal, with the buffered time window in the
// description.
func VolumesKML(name string, volumes []models.OperationVolume) ([]byte, error) {
	d := kml.Document(
		kml.Name(name),
		kml.SharedStyle("volume",
			kml.LineStyle(
				kml.Color(color.RGBA{R: 255, G: 128, B: 0, A: 255}),
				kml.Width(2),
			),
			kml.PolyStyle(
				kml.Color(color.RGBA{R: 255, G: 128, B: 0, A: 96}),
			),
		),
	)

	for _, vol := range volumes {
		if len(vol.Geometry.Coordinates) == 0 {
			continue
		}
		ring := vol.Geometry.Coordinates[0]
		coords := make([]kml.Coordinate, 0, len(ring))
		for _, pos := range ring {
			if len(pos) < 2 {
				continue
			}
			coords = append(coords, kml.Coordinate{
				Lon: pos[0],
				Lat: pos[1],
				Alt: vol.MaxAltitude.Value,
			})
		}

		d.Add(kml.Placemark(
			kml.Name(fmt.Sprintf("Volume %d", vol.Ordinal)),
			kml.Description(fmt.Sprintf("%s .. %s, %.0f-%.0f m AGL",
				vol.TimeBegin, vol.TimeEnd,
				vol.MinAltitude.Value, vol.MaxAltitude.Value)),
			kml.StyleURL("#volume"),
			kml.Polygon(
				kml.Extrude(true),
				kml.AltitudeMode(kml.AltitudeModeRelativeToGround),
				kml.OuterBoundaryIs(
					kml.LinearRing(kml.Coordinates(coords...)),
				),
			),
		))
	}

	var buf bytes.Buffer
	if err := kml.KML(d).WriteIndent(&buf, "", "  "); err != nil {
		return nil, fmt.Errorf("render volumes kml: %w", err)
	}
	return buf.Bytes(), nil
}
