package pathengine

import (
	"errors"
	"fmt"

	"github.com/mempa-rover/pathplanner/geotransform"
)

// Sentinel errors for Config construction. PlanStep itself never returns an
// error — see doc.go — these only guard option validation at config build
// time, mirroring the teacher's functional-option panics for programmer
// errors and plain errors for values that may originate outside the
// program (CLI flags, config files).
var (
	// ErrSlopeOutOfRange indicates MaxSlopeDeg was set outside [0, 90].
	ErrSlopeOutOfRange = errors.New("pathengine: max slope must be within [0, 90] degrees")

	// ErrNonPositivePixelSize indicates PixelSizeM was set to zero or less.
	ErrNonPositivePixelSize = errors.New("pathengine: pixel size must be positive")
)

// Path is an ordered sequence of local cells from a search's start to goal,
// including both endpoints. An empty Path means goal is unreachable from
// start under the slope constraint, start has no-data elevation, the window
// was empty, or an endpoint was out of bounds.
type Path []geotransform.Local

// Config is the immutable, validated configuration for one PlanStep call.
type Config struct {
	MaxSlopeDeg float64
	PixelSizeM  float64
}

// Option configures a Config via NewConfig.
type Option func(*Config) error

// WithMaxSlopeDeg sets the maximum tolerable slope in degrees, must be
// within [0, 90].
func WithMaxSlopeDeg(deg float64) Option {
	return func(c *Config) error {
		if deg < 0 || deg > 90 {
			return fmt.Errorf("%w: got %g", ErrSlopeOutOfRange, deg)
		}
		c.MaxSlopeDeg = deg
		return nil
	}
}

// WithPixelSizeM sets the window's metric pixel size, must be positive.
func WithPixelSizeM(m float64) Option {
	return func(c *Config) error {
		if m <= 0 {
			return fmt.Errorf("%w: got %g", ErrNonPositivePixelSize, m)
		}
		c.PixelSizeM = m
		return nil
	}
}

// NewConfig builds a Config from functional options, applied in order and
// validated as they are applied. Returns the first validation error
// encountered, if any.
func NewConfig(opts ...Option) (Config, error) {
	var cfg Config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}
