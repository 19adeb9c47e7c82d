package volume

import "fmt"

// Config holds the error budgets and shaping parameters for volume
// generation. All values must be positive. Zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// TSEH is the horizontal total-system-error budget in meters.
	TSEH float64 `yaml:"tse_h" json:"tseH"`
	// TSEV is the vertical total-system-error budget in meters.
	TSEV float64 `yaml:"tse_v" json:"tseV"`
	// AlphaH is the horizontal-dominance threshold for segment
	// classification.
	AlphaH float64 `yaml:"alpha_h" json:"alphaH"`
	// AlphaV is the vertical-dominance threshold for segment classification.
	AlphaV float64 `yaml:"alpha_v" json:"alphaV"`
	// TimeBuffer widens each volume's time window by this many seconds on
	// both ends.
	TimeBuffer float64 `yaml:"tbuf" json:"tbuf"`
	// CompressionFactor is the waypoint decimation stride, at least 1.
	CompressionFactor int `yaml:"compression_factor" json:"compressionFactor"`
}

// DefaultConfig returns the standard generation parameters.
func DefaultConfig() Config {
	return Config{
		TSEH:              15.0,
		TSEV:              10.0,
		AlphaH:            7.0,
		AlphaV:            1.0,
		TimeBuffer:        5.0,
		CompressionFactor: 20,
	}
}

// Validate reports the first out-of-range parameter, if any.
func (c Config) Validate() error {
	switch {
	case c.TSEH <= 0:
		return fmt.Errorf("volume config: TSE_H must be positive, got %g", c.TSEH)
	case c.TSEV <= 0:
		return fmt.Errorf("volume config: TSE_V must be positive, got %g", c.TSEV)
	case c.AlphaH <= 0:
		return fmt.Errorf("volume config: Alpha_H must be positive, got %g", c.AlphaH)
	case c.AlphaV <= 0:
		return fmt.Errorf("volume config: Alpha_V must be positive, got %g", c.AlphaV)
	case c.TimeBuffer <= 0:
		return fmt.Errorf("volume config: tbuf must be positive, got %g", c.TimeBuffer)
	case c.CompressionFactor < 1:
		return fmt.Errorf("volume config: compression factor must be >= 1, got %d", c.CompressionFactor)
	}
	return nil
}
