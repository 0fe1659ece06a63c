package life

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Matrix is a square table of affinity coefficients in [-1,1], stored row
// major. At(a, b) is how strongly type a is drawn to type b; it need not
// equal At(b, a).
type Matrix struct {
	n    int
	vals []float64
}

// GenerateMatrix fills an n by n matrix with independent uniform values
// in [-1,1]
func GenerateMatrix(n int, rng *rand.Rand) Matrix {
	m := Matrix{n: n, vals: make([]float64, n*n)}
	for i := range m.vals {
		m.vals[i] = rng.Float64()*2 - 1
	}
	return m
}

// NewMatrix builds a matrix from explicit rows. Rows are copied.
func NewMatrix(rows [][]float64) (Matrix, error) {
	n := len(rows)
	m := Matrix{n: n, vals: make([]float64, 0, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return Matrix{}, errors.Wrapf(ErrInvalidConfig, "affinity row %d has %d entries, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v < -1 || v > 1 {
				return Matrix{}, errors.Wrapf(ErrInvalidConfig, "affinity[%d][%d] = %g outside [-1,1]", i, j, v)
			}
		}
		m.vals = append(m.vals, row...)
	}
	return m, nil
}

// Size returns the number of types the matrix covers
func (m Matrix) Size() int { return m.n }

// At returns the affinity of type a towards type b
func (m Matrix) At(a, b int) float64 {
	return m.vals[a*m.n+b]
}

// Rows returns a copy of the matrix as nested slices
func (m Matrix) Rows() [][]float64 {
	rows := make([][]float64, m.n)
	for i := range rows {
		rows[i] = append([]float64(nil), m.vals[i*m.n:(i+1)*m.n]...)
	}
	return rows
}
