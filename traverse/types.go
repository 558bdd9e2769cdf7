package traverse

import (
	"errors"
	"fmt"

	"github.com/mempa-rover/pathplanner/geotransform"
	"github.com/mempa-rover/pathplanner/terrain"
)

// Sentinel errors for Config construction.
var (
	// ErrSlopeOutOfRange indicates MaxSlopeDeg was set outside [0, 90].
	ErrSlopeOutOfRange = errors.New("traverse: max slope must be within [0, 90] degrees")
	// ErrNonPositiveBuffer indicates Buffer was set to zero or less.
	ErrNonPositiveBuffer = errors.New("traverse: buffer must be positive")
)

// ErrorKind distinguishes the reasons a traverse can fail to reach its goal.
type ErrorKind int

const (
	// InvalidConfiguration means a precondition was violated before any
	// planning occurred: start or goal outside the raster, or an invalid
	// Config. No partial route is produced.
	InvalidConfiguration ErrorKind = iota
	// WindowReadFailure means the TerrainWindowProvider reported an I/O or
	// bounds error while reading a window.
	WindowReadFailure
	// Unreachable means pathengine.PlanStep returned an empty path for a
	// non-trivial sub-problem within one window.
	Unreachable
	// NoProgress means the controller detected it would revisit the same
	// current pixel and sub-goal without advancing: PlanStep returned a path
	// holding only the current pixel, so the iteration appended nothing.
	NoProgress
)

// String renders the ErrorKind's name, used in PlanError.Error.
func (k ErrorKind) String() string {
	switch k {
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case WindowReadFailure:
		return "WindowReadFailure"
	case Unreachable:
		return "Unreachable"
	case NoProgress:
		return "NoProgress"
	default:
		return "ErrorKind(?)"
	}
}

// PlanError is the error a failed Run returns. It always carries whatever
// partial route was produced before the failure, except for
// InvalidConfiguration, which surfaces before any route exists.
type PlanError struct {
	Kind  ErrorKind
	Route []geotransform.Pixel
	Err   error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("traverse: %s: %v", e.Kind, e.Err)
}

func (e *PlanError) Unwrap() error { return e.Err }

// Result is the outcome of a successful or failed Run. Route always holds
// whatever pixels were produced, full on success, partial on failure.
type Result struct {
	Route []geotransform.Pixel
}

// Config is the immutable, validated configuration for one Planner.
type Config struct {
	MaxSlopeDeg float64
	Buffer      int
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

// WithBuffer sets the search window's half-extent in pixels, must be positive.
func WithBuffer(buffer int) Option {
	return func(c *Config) error {
		if buffer <= 0 {
			return fmt.Errorf("%w: got %d", ErrNonPositiveBuffer, buffer)
		}
		c.Buffer = buffer
		return nil
	}
}

// NewConfig builds a Config from functional options, applied and validated
// in order. Returns the first validation error encountered, if any.
func NewConfig(opts ...Option) (Config, error) {
	var cfg Config
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// TerrainWindowProvider is the collaborator Planner reads elevation data
// from. *terrain.Raster satisfies it; tests and the demo subcommand may
// substitute any implementation with the same bounded-window contract.
type TerrainWindowProvider interface {
	XSize() int
	YSize() int
	ResolutionMeters() float64
	InBounds(p geotransform.Pixel) bool
	ReadSquareWindow(centre geotransform.Pixel, buffer int) (*terrain.Window, error)
	ValueAt(p geotransform.Pixel) (float64, error)
}
