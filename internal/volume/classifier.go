package volume

// SegmentType labels the dominant motion of a trajectory segment.
type SegmentType int

const (
	// SegmentHorizontal covers cruise-like segments where horizontal travel
	// dominates.
	SegmentHorizontal SegmentType = iota
	// SegmentVertical covers takeoff/landing-like segments where vertical
	// travel dominates.
	SegmentVertical
	// SegmentMixed covers everything in between.
	SegmentMixed
)

// String implements fmt.Stringer for log and test output.
func (t SegmentType) String() string {
	switch t {
	case SegmentHorizontal:
		return "HORIZONTAL"
	case SegmentVertical:
		return "VERTICAL"
	case SegmentMixed:
		return "MIXED"
	}
	return "UNKNOWN"
}

// Classify labels a segment from its horizontal and vertical travel
// distances in meters. Horizontal dominance is checked first; a degenerate
// (0,0) segment satisfies neither threshold and classifies as MIXED.
func Classify(horizontalDist, verticalDist float64, cfg Config) SegmentType {
	if horizontalDist > cfg.AlphaH*verticalDist {
		return SegmentHorizontal
	}
	if verticalDist > cfg.AlphaV*horizontalDist {
		return SegmentVertical
	}
	return SegmentMixed
}

// Buffers are the half-extents of an operation volume in meters: along the
// direction of travel, across it, and vertically.
type Buffers struct {
	AlongTrack float64
	CrossTrack float64
	Vertical   float64
}

// BuffersFor derives the buffer sizes for a segment. The dominant axis of
// motion gets half the travel distance plus the system-error budget so the
// volume contains the whole segment; the other axes get the fixed budget
// only.
func BuffersFor(t SegmentType, horizontalDist, verticalDist float64, cfg Config) Buffers {
	switch t {
	case SegmentHorizontal:
		return Buffers{
			AlongTrack: horizontalDist/2 + cfg.TSEH,
			CrossTrack: cfg.TSEH,
			Vertical:   cfg.TSEV,
		}
	case SegmentVertical:
		return Buffers{
			AlongTrack: cfg.TSEH,
			CrossTrack: cfg.TSEH,
			Vertical:   verticalDist/2 + cfg.TSEV,
		}
	default:
		return Buffers{
			AlongTrack: horizontalDist/2 + cfg.TSEH,
			CrossTrack: cfg.TSEH,
			Vertical:   verticalDist/2 + cfg.TSEV,
		}
	}
}
