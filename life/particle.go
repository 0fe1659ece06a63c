package life

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Particle is one simulated point mass
type Particle struct {
	X, Y   float64 // Position, within [0,width) x [0,height) after a tick
	VX, VY float64 // Velocity
	Type   int     // Type (0 to Types-1), fixed for the particle's life
}

// Point is the read-only state a renderer needs
type Point struct {
	X, Y float64
	Type int
}

// Perlin field settings for PlacementPerlin
const (
	perlinAlpha    = 2.0
	perlinBeta     = 2.0
	perlinOctaves  = 3
	perlinScale    = 1.0 / 150.0 // Noise units per surface unit
	perlinAttempts = 32          // Rejected candidates before falling back to uniform
)

// placeParticles creates n particles at rest with uniform random types
func placeParticles(n, types int, width, height float64, placement Placement, rng *rand.Rand) []Particle {
	particles := make([]Particle, n)

	var noise *perlin.Perlin
	if placement == PlacementPerlin {
		noise = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, rng.Int63())
	}

	for i := range particles {
		var x, y float64
		if noise != nil {
			x, y = perlinPosition(noise, width, height, rng)
		} else {
			x, y = rng.Float64()*width, rng.Float64()*height
		}
		particles[i] = Particle{
			X:    x,
			Y:    y,
			Type: rng.Intn(types),
		}
	}
	return particles
}

// perlinPosition rejection-samples a position, favoring high noise values
func perlinPosition(noise *perlin.Perlin, width, height float64, rng *rand.Rand) (float64, float64) {
	x, y := rng.Float64()*width, rng.Float64()*height
	for range perlinAttempts {
		// Noise2D is roughly in [-1,1]; squash into an acceptance probability
		v := noise.Noise2D(x*perlinScale, y*perlinScale)
		accept := math.Max(0, math.Min(1, v+0.5))
		if rng.Float64() < accept {
			break
		}
		x, y = rng.Float64()*width, rng.Float64()*height
	}
	return x, y
}
