package trajectory

import "github.com/uasplan/uplan-backend-go/internal/models"

// Compress decimates a waypoint sequence with a fixed stride to bound the
// number of operation volumes on long trajectories. Sequences of two or fewer
// waypoints come back unchanged.
//
// Sampling starts at index 1, the second waypoint, and takes every factor-th
// waypoint from there; the equivalent of the MATLAB slice wp(2:factor:end).
// Skipping index 0 is deliberate and load-bearing: the generated volume
// boundaries feed a regulatory approval pipeline, so the sampling pattern
// must stay bit-for-bit stable. The final waypoint is always kept, compared
// by its time stamp so an already-sampled endpoint is not duplicated.
func Compress(waypoints []models.Waypoint, factor int) []models.Waypoint {
	if len(waypoints) <= 2 {
		return waypoints
	}
	if factor < 1 {
		factor = 1
	}

	reduced := make([]models.Waypoint, 0, len(waypoints)/factor+2)
	for i := 1; i < len(waypoints); i += factor {
		reduced = append(reduced, waypoints[i])
	}

	last := waypoints[len(waypoints)-1]
	if reduced[len(reduced)-1].Time != last.Time {
		reduced = append(reduced, last)
	}
	return reduced
}
