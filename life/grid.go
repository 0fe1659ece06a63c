package life

import (
	"iter"
	"math"
)

// Grid buckets particle indices by uniform cell so neighbor candidates
// come from the 3x3 block around a particle's cell. Cell size must exceed
// the interaction radius or pairs in range can be missed.
type Grid struct {
	cellSize     float64
	cellW, cellH float64 // Effective cell extent for the current surface
	cols, rows   int
	wrap       bool
	cells      [][]int // row*cols+col -> particle indices
	cellOf     []int   // particle index -> cell, -1 when not bucketed
}

// NewGrid returns an empty grid. With wrap set, neighbor blocks continue
// across the grid edges, and cells are stretched to tile the surface
// exactly so no partial cell sits on the seam.
func NewGrid(cellSize float64, wrap bool) *Grid {
	return &Grid{cellSize: cellSize, wrap: wrap}
}

// Dims returns the grid size in cells
func (g *Grid) Dims() (cols, rows int) { return g.cols, g.rows }

// Rebuild discards all buckets and reassigns every particle. Positions
// outside the grid are left out.
func (g *Grid) Rebuild(particles []Particle, width, height float64) {
	var cols, rows int
	if g.wrap {
		cols = max(1, int(math.Floor(width/g.cellSize)))
		rows = max(1, int(math.Floor(height/g.cellSize)))
		g.cellW, g.cellH = width/float64(cols), height/float64(rows)
	} else {
		cols = int(math.Ceil(width / g.cellSize))
		rows = int(math.Ceil(height / g.cellSize))
		g.cellW, g.cellH = g.cellSize, g.cellSize
	}
	if cols != g.cols || rows != g.rows {
		g.cols, g.rows = cols, rows
		g.cells = make([][]int, cols*rows)
	} else {
		for i := range g.cells {
			g.cells[i] = g.cells[i][:0]
		}
	}

	if cap(g.cellOf) < len(particles) {
		g.cellOf = make([]int, len(particles))
	}
	g.cellOf = g.cellOf[:len(particles)]

	for i := range particles {
		g.cellOf[i] = -1
		x, y := particles[i].X, particles[i].Y
		if !(x >= 0 && y >= 0) {
			continue
		}
		col := int(x / g.cellW)
		row := int(y / g.cellH)
		// Rounding can push a position just inside the surface one cell out
		if col >= cols && x < width {
			col = cols - 1
		}
		if row >= rows && y < height {
			row = rows - 1
		}
		if col >= cols || row >= rows {
			continue
		}
		cell := row*cols + col
		g.cells[cell] = append(g.cells[cell], i)
		g.cellOf[i] = cell
	}
}

// Neighbors yields the indices in the 3x3 cell block around particle i,
// excluding i. The sequence is only valid until the next Rebuild.
func (g *Grid) Neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if i < 0 || i >= len(g.cellOf) || g.cellOf[i] < 0 {
			return
		}
		col := g.cellOf[i] % g.cols
		row := g.cellOf[i] / g.cols

		var seen [9]int
		n := 0
		for dRow := -1; dRow <= 1; dRow++ {
			for dCol := -1; dCol <= 1; dCol++ {
				c, r := col+dCol, row+dRow
				if g.wrap {
					c = (c + g.cols) % g.cols
					r = (r + g.rows) % g.rows
				} else if c < 0 || c >= g.cols || r < 0 || r >= g.rows {
					continue
				}
				cell := r*g.cols + c
				if g.wrap && visited(seen[:n], cell) {
					continue // Grids under 3 cells wide revisit cells
				}
				seen[n] = cell
				n++

				for _, j := range g.cells[cell] {
					if j == i {
						continue
					}
					if !yield(j) {
						return
					}
				}
			}
		}
	}
}

func visited(cells []int, cell int) bool {
	for _, c := range cells {
		if c == cell {
			return true
		}
	}
	return false
}
