package life

import (
	"math"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// minParallel is the particle count below which the force pass stays inline
const minParallel = 512

// Simulation owns the particles, affinity matrix and grid of one
// simulation. It is not safe for concurrent use: the host must not read a
// snapshot while Tick runs.
type Simulation struct {
	params        Params
	width, height float64
	resized       bool // Positions need rewrapping before the next tick

	particles []Particle
	affinity  Matrix
	grid      *Grid
	ticks     uint64

	rng *rand.Rand
}

// Option customizes New
type Option func(*Simulation)

// WithRand sets the random source used for the matrix and placement
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) { s.rng = rng }
}

// WithSeed seeds a private random source, for reproducible runs
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithAffinity uses m instead of a generated matrix. Its size must match
// the type count.
func WithAffinity(m Matrix) Option {
	return func(s *Simulation) { s.affinity = m }
}

// New creates a simulation on a width x height surface with particles at
// rest, uniform random types and a fresh affinity matrix
func New(width, height float64, params Params, opts ...Option) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := checkSurface(width, height); err != nil {
		return nil, err
	}

	s := &Simulation{
		params: params,
		width:  width,
		height: height,
		grid:   NewGrid(params.CellSize, params.WrapNeighbors),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if s.affinity.vals == nil {
		s.affinity = GenerateMatrix(params.Types, s.rng)
	} else if s.affinity.Size() != params.Types {
		return nil, invalidConfig("affinity matrix covers %d types, want %d", s.affinity.Size(), params.Types)
	}

	s.particles = placeParticles(params.Particles, params.Types, width, height, params.Placement, s.rng)
	return s, nil
}

// Params returns the simulation constants
func (s *Simulation) Params() Params { return s.params }

// Size returns the current surface size
func (s *Simulation) Size() (width, height float64) { return s.width, s.height }

// Affinity returns the affinity matrix
func (s *Simulation) Affinity() Matrix { return s.affinity }

// Len returns the particle count
func (s *Simulation) Len() int { return len(s.particles) }

// Resize changes the surface size. Particles are wrapped into the new
// bounds at the start of the next tick.
func (s *Simulation) Resize(width, height float64) error {
	if err := checkSurface(width, height); err != nil {
		return err
	}
	if width == s.width && height == s.height {
		return nil
	}
	s.width, s.height = width, height
	s.resized = true
	return nil
}

// Snapshot appends the position and type of every particle to dst
func (s *Simulation) Snapshot(dst []Point) []Point {
	for _, p := range s.particles {
		dst = append(dst, Point{X: p.X, Y: p.Y, Type: p.Type})
	}
	return dst
}

// Tick advances the simulation by one step of duration dt
func (s *Simulation) Tick(dt float64) {
	if s.resized {
		for i := range s.particles {
			p := &s.particles[i]
			p.X = wrap(p.X, s.width)
			p.Y = wrap(p.Y, s.height)
		}
		s.resized = false
	}

	s.grid.Rebuild(s.particles, s.width, s.height)

	// Velocities only depend on positions, which stay fixed until every
	// particle has its new velocity
	s.updateVelocities(dt)

	scale := dt * s.params.PositionScale
	for i := range s.particles {
		p := &s.particles[i]
		p.X = wrap(p.X+p.VX*scale, s.width)
		p.Y = wrap(p.Y+p.VY*scale, s.height)
	}

	s.ticks++
}

// updateVelocities runs the force pass, split across workers when the
// population is large enough
func (s *Simulation) updateVelocities(dt float64) {
	n := len(s.particles)
	workers := s.params.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers <= 1 || n < minParallel {
		s.updateRange(0, n, dt)
		return
	}

	var g errgroup.Group
	g.SetLimit(workers)
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			s.updateRange(lo, hi, dt)
			return nil
		})
	}
	_ = g.Wait() // Workers never fail
}

// updateRange accumulates forces on particles [lo,hi) and updates their
// velocities. Only each particle's own velocity is written.
func (s *Simulation) updateRange(lo, hi int, dt float64) {
	for i := lo; i < hi; i++ {
		fx, fy := s.forceOn(i)
		p := &s.particles[i]
		p.VX += fx * s.params.ForceScale * dt
		p.VY += fy * s.params.ForceScale * dt
		p.VX *= s.params.Friction
		p.VY *= s.params.Friction
	}
}

// forceOn sums the force law over the grid neighbors of particle i
func (s *Simulation) forceOn(i int) (fx, fy float64) {
	self := s.particles[i]
	radius := s.params.Radius
	maxDistSq := radius * radius

	for j := range s.grid.Neighbors(i) {
		other := &s.particles[j]
		dx, dy := Displacement(other.X-self.X, other.Y-self.Y, s.width, s.height)

		distSq := dx*dx + dy*dy
		if distSq == 0 || distSq >= maxDistSq {
			continue
		}
		dist := math.Sqrt(distSq)
		f := Force(dist/radius, s.affinity.At(self.Type, other.Type), s.params.Beta)
		fx += dx / dist * f
		fy += dy / dist * f
	}
	return fx, fy
}

// Stats summarizes the simulation state
type Stats struct {
	Ticks     uint64
	Particles int
	MeanSpeed float64
}

// Stats returns the tick count and mean particle speed
func (s *Simulation) Stats() Stats {
	st := Stats{Ticks: s.ticks, Particles: len(s.particles)}
	if len(s.particles) == 0 {
		return st
	}
	var sum float64
	for _, p := range s.particles {
		sum += math.Hypot(p.VX, p.VY)
	}
	st.MeanSpeed = sum / float64(len(s.particles))
	return st
}
