package models

// Waypoint is one time-stamped trajectory sample. Times are seconds since the
// start of the flight unless they exceed AbsoluteTimeThreshold, in which case
// they are already-absolute POSIX seconds. Altitude is meters above ground
// level.
type Waypoint struct {
	Time float64 `json:"time"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	H    float64 `json:"h"`
}

// AbsoluteTimeThreshold separates relative waypoint times (offsets from the
// scheduled start) from absolute POSIX timestamps. An offset trajectory
// longer than ~11.5 days would be misread as absolute; the parser re-baselines
// trajectories to start at zero, so in practice only hand-built waypoint
// slices approach the threshold.
const AbsoluteTimeThreshold = 1_000_000
