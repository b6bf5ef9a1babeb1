package systems

import (
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"
)

// Grid buckets agents into fixed-size cells for O(rows*cols + N) proximity
// queries, replacing pairwise distance checks. It is rebuilt from scratch
// every tick; no history is retained between ticks.
type Grid struct {
	rows  int
	cols  int
	cellW float32
	cellH float32
	cells [][]ecs.Entity // flat, row-major
}

// NewGrid creates a grid with the given dimensions and cell sizes.
func NewGrid(rows, cols int, cellW, cellH float32) *Grid {
	cells := make([][]ecs.Entity, rows*cols)
	for i := range cells {
		cells[i] = make([]ecs.Entity, 0, 8) // pre-allocate small capacity
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cellW: cellW,
		cellH: cellH,
		cells: cells,
	}
}

// Clear resets every cell to an empty list. Called once per tick, before any
// insertion.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// Insert adds an entity at the given position. Must be called once per agent
// per tick, after the agent's position is finalized.
//
// A position mapping outside the grid is an invariant violation, not a
// recoverable condition: it means boundary clamping has failed. The caller is
// expected to abort the run with the returned error.
func (g *Grid) Insert(e ecs.Entity, x, y float32) error {
	row, col := g.CellOf(x, y)
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return fmt.Errorf("position (%.2f, %.2f) maps to cell (%d, %d) outside %dx%d grid",
			x, y, row, col, g.rows, g.cols)
	}
	idx := row*g.cols + col
	g.cells[idx] = append(g.cells[idx], e)
	return nil
}

// CellOf returns the cell coordinates a position maps to, without bounds
// checking. The mapping floors, so slightly negative coordinates land in
// cell -1 rather than truncating into cell 0.
func (g *Grid) CellOf(x, y float32) (row, col int) {
	return floorDiv(y, g.cellH), floorDiv(x, g.cellW)
}

func floorDiv(v, size float32) int {
	return int(math.Floor(float64(v / size)))
}

// Cell returns the entities bucketed at (row, col) this tick.
// The slice is owned by the grid; callers must not retain it across Clear.
func (g *Grid) Cell(row, col int) []ecs.Entity {
	return g.cells[row*g.cols+col]
}

// Rows returns the number of grid rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Grid) Cols() int { return g.cols }

// CellW returns the cell width.
func (g *Grid) CellW() float32 { return g.cellW }

// CellH returns the cell height.
func (g *Grid) CellH() float32 { return g.cellH }
