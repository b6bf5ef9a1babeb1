package systems

import (
	"strings"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kinderdrome/components"
)

func newTestEntities(n int) []ecs.Entity {
	world := ecs.NewWorld()
	mapper := ecs.NewMap1[components.Position](world)
	out := make([]ecs.Entity, n)
	for i := range out {
		pos := components.Position{}
		out[i] = mapper.NewEntity(&pos)
	}
	return out
}

func TestGridBucketing(t *testing.T) {
	// 12x20 grid over a 1280x720 arena: 64x60 cells.
	g := NewGrid(12, 20, 64, 60)
	ents := newTestEntities(4)

	tests := []struct {
		x, y     float32
		row, col int
	}{
		{0, 0, 0, 0},
		{63.9, 59.9, 0, 0},
		{64, 60, 1, 1},
		{1279, 719, 11, 19},
	}

	for i, tt := range tests {
		if err := g.Insert(ents[i], tt.x, tt.y); err != nil {
			t.Fatalf("Insert(%v, %v): %v", tt.x, tt.y, err)
		}
	}

	for i, tt := range tests {
		found := false
		for r := 0; r < g.Rows(); r++ {
			for c := 0; c < g.Cols(); c++ {
				for _, e := range g.Cell(r, c) {
					if e != ents[i] {
						continue
					}
					if r != tt.row || c != tt.col {
						t.Errorf("entity at (%v, %v) bucketed in cell (%d, %d), want (%d, %d)",
							tt.x, tt.y, r, c, tt.row, tt.col)
					}
					if found {
						t.Errorf("entity at (%v, %v) appears in more than one cell", tt.x, tt.y)
					}
					found = true
				}
			}
		}
		if !found {
			t.Errorf("entity at (%v, %v) not found in any cell", tt.x, tt.y)
		}
	}
}

func TestGridClear(t *testing.T) {
	g := NewGrid(2, 2, 10, 10)
	ents := newTestEntities(3)
	for _, e := range ents {
		if err := g.Insert(e, 5, 5); err != nil {
			t.Fatal(err)
		}
	}
	if n := len(g.Cell(0, 0)); n != 3 {
		t.Fatalf("cell (0,0) holds %d entities, want 3", n)
	}

	g.Clear()
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if n := len(g.Cell(r, c)); n != 0 {
				t.Errorf("cell (%d,%d) holds %d entities after Clear", r, c, n)
			}
		}
	}
}

func TestGridInsertOutOfRange(t *testing.T) {
	g := NewGrid(2, 2, 10, 10)
	e := newTestEntities(1)[0]

	for _, p := range []struct{ x, y float32 }{
		{-1, 5},
		{5, -1},
		{-0.5, 5}, // fractionally negative must not truncate into cell 0
		{5, -0.5},
		{20, 5},
		{5, 20},
	} {
		err := g.Insert(e, p.x, p.y)
		if err == nil {
			t.Errorf("Insert(%v, %v) = nil, want out-of-range error", p.x, p.y)
			continue
		}
		if !strings.Contains(err.Error(), "outside") {
			t.Errorf("Insert(%v, %v) error %q lacks cell diagnostics", p.x, p.y, err)
		}
	}
}

func TestGridCellOf(t *testing.T) {
	g := NewGrid(12, 20, 64, 60)

	tests := []struct {
		x, y     float32
		row, col int
	}{
		{130, 245, 4, 2},
		{0, 0, 0, 0},
		{-0.5, 245, 4, -1}, // floors, never truncates toward zero
		{130, -0.5, -1, 2},
		{-64.5, -60.5, -2, -2},
	}

	for _, tt := range tests {
		row, col := g.CellOf(tt.x, tt.y)
		if row != tt.row || col != tt.col {
			t.Errorf("CellOf(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, row, col, tt.row, tt.col)
		}
	}
}
