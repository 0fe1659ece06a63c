// Package life implements a "particle life" simulation on a toroidal 2D
// surface: typed particles attract or repel each other according to an
// asymmetric affinity matrix, within a bounded interaction radius.
package life

import (
	"github.com/pkg/errors"
)

// Default simulation constants
const (
	DefaultParticles     = 1000
	DefaultTypes         = 6
	DefaultRadius        = 60.0
	DefaultForceScale    = 5.0
	DefaultBeta          = 0.2
	DefaultFriction      = 0.94
	DefaultCellSize      = 70.0 // Must be greater than DefaultRadius
	DefaultDT            = 1.0 / 60.0
	DefaultPositionScale = 100.0
)

// Placement selects how initial particle positions are drawn
type Placement int

const (
	PlacementUniform Placement = iota // Uniform over the surface
	PlacementPerlin                   // Clumped along a Perlin noise field
)

// String returns the config name of the placement
func (p Placement) String() string {
	switch p {
	case PlacementUniform:
		return "uniform"
	case PlacementPerlin:
		return "perlin"
	}
	return "unknown"
}

// ParsePlacement maps a config name to a Placement
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "", "uniform":
		return PlacementUniform, nil
	case "perlin":
		return PlacementPerlin, nil
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "unknown placement %q", s)
}

// Params holds the constants of one simulation. It is copied into the
// simulation at creation and never changes afterwards.
type Params struct {
	Particles     int     // Number of particles
	Types         int     // Number of particle types
	Radius        float64 // Maximum interaction distance
	ForceScale    float64 // Strength of forces
	Beta          float64 // Normalized repulsion threshold, in (0,1)
	Friction      float64 // Per-tick velocity multiplier, in (0,1)
	CellSize      float64 // Spatial grid cell size, must exceed Radius
	DT            float64 // Nominal tick duration
	PositionScale float64 // Velocity to displacement scale

	Workers       int  // Force pass workers; 0 uses GOMAXPROCS, 1 runs inline
	WrapNeighbors bool // Let neighbor queries wrap across grid edges
	Placement     Placement
}

// DefaultParams returns the tuned defaults
func DefaultParams() Params {
	return Params{
		Particles:     DefaultParticles,
		Types:         DefaultTypes,
		Radius:        DefaultRadius,
		ForceScale:    DefaultForceScale,
		Beta:          DefaultBeta,
		Friction:      DefaultFriction,
		CellSize:      DefaultCellSize,
		DT:            DefaultDT,
		PositionScale: DefaultPositionScale,
	}
}

// Validate reports the first invalid field, wrapped around ErrInvalidConfig
func (p Params) Validate() error {
	switch {
	case p.Types <= 0:
		return errors.Wrapf(ErrInvalidConfig, "type count %d must be positive", p.Types)
	case p.Particles < 0:
		return errors.Wrapf(ErrInvalidConfig, "particle count %d is negative", p.Particles)
	case !(p.Radius > 0):
		return errors.Wrapf(ErrInvalidConfig, "interaction radius %g must be positive", p.Radius)
	case !(p.CellSize > p.Radius):
		return errors.Wrapf(ErrInvalidConfig, "cell size %g must exceed interaction radius %g", p.CellSize, p.Radius)
	case !(p.Friction > 0 && p.Friction < 1):
		return errors.Wrapf(ErrInvalidConfig, "friction %g outside (0,1)", p.Friction)
	case !(p.Beta > 0 && p.Beta < 1):
		return errors.Wrapf(ErrInvalidConfig, "repulsion threshold %g outside (0,1)", p.Beta)
	case !(p.PositionScale > 0):
		return errors.Wrapf(ErrInvalidConfig, "position scale %g must be positive", p.PositionScale)
	case p.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "worker count %d is negative", p.Workers)
	case p.Placement != PlacementUniform && p.Placement != PlacementPerlin:
		return errors.Wrapf(ErrInvalidConfig, "unknown placement %d", int(p.Placement))
	}
	return nil
}
