package life

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForceBoundaries(t *testing.T) {
	for _, beta := range []float64{0.1, 0.2, 0.5, 0.9} {
		for _, a := range []float64{-1, -0.3, 0, 0.7, 1} {
			assert.InDelta(t, 0, Force(beta, a, beta), 1e-12, "d=beta beta=%g a=%g", beta, a)
			assert.Equal(t, 0.0, Force(1, a, beta), "d=1 beta=%g a=%g", beta, a)
			assert.Equal(t, 0.0, Force(1.5, a, beta), "d>1 beta=%g a=%g", beta, a)
		}
	}
}

func TestForceShortRangeRepels(t *testing.T) {
	beta := 0.2
	for _, a := range []float64{-1, 0, 1} {
		for d := 0.0; d < beta; d += 0.01 {
			assert.Less(t, Force(d, a, beta), 0.0, "d=%g a=%g", d, a)
		}
	}
	assert.Equal(t, -1.0, Force(0, 1, beta))
}

func TestForceMediumRangeFollowsAffinity(t *testing.T) {
	beta := 0.2
	// Peak sits halfway between beta and 1
	assert.InDelta(t, 1.0, Force(0.6, 1, beta), 1e-12)
	assert.InDelta(t, -0.5, Force(0.6, -0.5, beta), 1e-12)
	assert.InDelta(t, 0.75, Force(0.5, 1, beta), 1e-12)
	assert.Equal(t, 0.0, Force(0.5, 0, beta))
	assert.Greater(t, Force(0.9, 0.2, beta), 0.0)
	assert.Less(t, Force(0.3, -0.2, beta), 0.0)
}

func TestDisplacement(t *testing.T) {
	dx, dy := Displacement(99-1, 0, 100, 100)
	assert.InDelta(t, -2, dx, 1e-12)
	assert.Equal(t, 0.0, dy)

	dx, dy = Displacement(1-99, 3-97, 100, 100)
	assert.InDelta(t, 2, dx, 1e-12)
	assert.InDelta(t, 6, dy, 1e-12)

	// Short paths are left alone
	dx, dy = Displacement(-30, 49, 100, 100)
	assert.Equal(t, -30.0, dx)
	assert.Equal(t, 49.0, dy)
}

func TestWrap(t *testing.T) {
	cases := []struct{ v, size, want float64 }{
		{5, 10, 5},
		{0, 10, 0},
		{10, 10, 0},
		{-1, 10, 9},
		{23, 10, 3},
		{-37, 10, 3},
		{1e6 + 4, 10, 4},
	}
	for _, c := range cases {
		got := wrap(c.v, c.size)
		assert.InDelta(t, c.want, got, 1e-6, "wrap(%g, %g)", c.v, c.size)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.Less(t, got, c.size)
	}
}
