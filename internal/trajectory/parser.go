package trajectory

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/uasplan/uplan-backend-go/internal/models"
)

// Parse converts raw trajectory CSV text into waypoints. Expected columns are
// SimTime,Lat,Lon,Alt; any trailing columns (attitude quaternions, velocity)
// are ignored. Blank lines, //-comment lines, the header line, and rows with
// missing or non-numeric fields are dropped rather than failing the whole
// trajectory.
//
// groundElevation (meters AMSL) is subtracted from every altitude to
// normalize it to AGL. Times are re-baselined so the first parsed waypoint
// sits at t=0; volume generation applies the scheduled start on top.
func Parse(csvText string, groundElevation float64) []models.Waypoint {
	var waypoints []models.Waypoint

	scanner := bufio.NewScanner(strings.NewReader(csvText))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	headerSkipped := false

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if !headerSkipped && (strings.Contains(line, "SimTime") || strings.Contains(line, "Lat")) {
			headerSkipped = true
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 4 {
			continue
		}
		t, err1 := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		lon, err3 := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		alt, err4 := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			continue
		}

		waypoints = append(waypoints, models.Waypoint{
			Time: t,
			Lat:  lat,
			Lon:  lon,
			H:    alt - groundElevation,
		})
	}

	if len(waypoints) > 0 {
		base := waypoints[0].Time
		for i := range waypoints {
			waypoints[i].Time -= base
		}
	}
	return waypoints
}
