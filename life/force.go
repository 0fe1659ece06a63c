package life

import "math"

// Force maps a normalized distance d (distance / radius) and an affinity a
// to a signed force magnitude along the line towards the other particle.
// Below beta every pair repels; between beta and 1 the sign follows a,
// peaking halfway; at 1 and beyond there is no force. Both branch
// boundaries evaluate to zero.
func Force(d, a, beta float64) float64 {
	switch {
	case d < beta:
		return d/beta - 1
	case d < 1:
		return a * (1 - math.Abs(2*d-1-beta)/(1-beta))
	default:
		return 0
	}
}

// Displacement returns the nearest-image offset (dx, dy) on a torus of the
// given size
func Displacement(dx, dy, width, height float64) (float64, float64) {
	if math.Abs(dx) > width/2 {
		if dx > 0 {
			dx -= width
		} else {
			dx += width
		}
	}
	if math.Abs(dy) > height/2 {
		if dy > 0 {
			dy -= height
		} else {
			dy += height
		}
	}
	return dx, dy
}

// wrap brings v into [0, size) by whole steps of size
func wrap(v, size float64) float64 {
	if v < -size || v >= 2*size {
		v = math.Mod(v, size)
	}
	for v < 0 {
		v += size
	}
	for v >= size {
		v -= size
	}
	return v
}
