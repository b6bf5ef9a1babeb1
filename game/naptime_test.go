package game

import (
	"testing"

	"github.com/pthm-cable/kinderdrome/config"
)

func TestNapTimeEntryDropsEverything(t *testing.T) {
	g := newTestGame(t, 5, 0, 9)
	es := agentEntities(g)
	grantBlock(g, es[0])
	grantBlock(g, es[0])
	grantBlock(g, es[0])
	grantBlock(g, es[2])

	// Put two agents mid stand-off to verify it gets cancelled
	placeTogether(g, 400, 300)
	if err := g.step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if !g.contestMap.Get(es[0]).Engaged {
		t.Fatal("setup: expected a contest in progress")
	}

	g.ToggleNapTime()

	if g.Mode() != ModeNapTime {
		t.Fatalf("mode = %v, want %v", g.Mode(), ModeNapTime)
	}
	for _, a := range g.Agents() {
		if a.Score != 0 || a.Held != 0 {
			t.Errorf("agent %d kept its stack (score %d, held %d)", a.ID, a.Score, a.Held)
		}
		if a.Engaged {
			t.Errorf("agent %d still engaged after nap time began", a.ID)
		}
	}
	if g.RemainingBlocks() != g.totalBlocks {
		t.Errorf("free blocks = %d after the drop, want %d", g.RemainingBlocks(), g.totalBlocks)
	}
	for _, b := range g.Blocks() {
		if b.Held {
			t.Errorf("block %d still held", b.ID)
		}
		if b.X < g.margin || b.X > g.arenaW-g.margin || b.Y < g.margin || b.Y > g.arenaH-g.margin {
			t.Errorf("block %d dropped out of bounds at (%.1f, %.1f)", b.ID, b.X, b.Y)
		}
	}
	checkConservation(t, g)
}

func TestNapTimeBedPool(t *testing.T) {
	g := newTestGame(t, 5, 0, 14)
	g.ToggleNapTime()

	beds := g.Beds()
	want := min(config.Cfg().Derived.PerimeterSlots, 5)
	if len(beds) != want {
		t.Fatalf("bed pool size = %d, want %d", len(beds), want)
	}

	rows := g.grid.Rows()
	cols := g.grid.Cols()
	seen := make(map[[2]int]bool)
	for _, b := range beds {
		if b.Row != 0 && b.Row != rows-1 && b.Col != 0 && b.Col != cols-1 {
			t.Errorf("bed at cell (%d, %d) is not on the perimeter", b.Row, b.Col)
		}
		key := [2]int{b.Row, b.Col}
		if seen[key] {
			t.Errorf("two beds share cell (%d, %d)", b.Row, b.Col)
		}
		seen[key] = true
		if b.Occupied {
			t.Errorf("bed at (%d, %d) created occupied", b.Row, b.Col)
		}
	}
}

func TestNapTimeEveryoneFindsABed(t *testing.T) {
	g := newTestGame(t, 5, 0, 27)
	g.ToggleNapTime()

	for i := 0; i < 5000; i++ {
		if err := g.step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		asleep := 0
		for _, a := range g.Agents() {
			if a.Asleep {
				asleep++
			}
		}
		if asleep == 5 {
			break
		}
	}

	occupants := make(map[uint32]bool)
	occupied := 0
	for _, b := range g.Beds() {
		if b.Occupied {
			occupied++
			if occupants[b.Occupant] {
				t.Errorf("agent %d occupies two beds", b.Occupant)
			}
			occupants[b.Occupant] = true
		}
	}
	if occupied != 5 {
		t.Fatalf("%d beds occupied, want 5", occupied)
	}

	for _, a := range g.Agents() {
		if !a.Asleep {
			t.Errorf("agent %d never fell asleep", a.ID)
		}
	}

	// Sleepers stay put
	before := g.Agents()
	for i := 0; i < 10; i++ {
		if err := g.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	after := g.Agents()
	for i := range before {
		if before[i].X != after[i].X || before[i].Y != after[i].Y {
			t.Errorf("sleeping agent %d moved", before[i].ID)
		}
	}
}

func TestNapTimeToggleOffRestoresPlay(t *testing.T) {
	g := newTestGame(t, 5, 6, 31)
	g.ToggleNapTime()
	if g.Mode() != ModeNapTime {
		t.Fatalf("mode = %v, want %v", g.Mode(), ModeNapTime)
	}

	for i := 0; i < 200; i++ {
		if err := g.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}

	g.ToggleNapTime()

	if g.Mode() != ModeSurplus {
		t.Fatalf("mode = %v after waking with free blocks, want %v", g.Mode(), ModeSurplus)
	}
	if len(g.Beds()) != 0 {
		t.Errorf("bed pool survived the toggle: %d beds", len(g.Beds()))
	}
	for _, a := range g.Agents() {
		if a.Asleep {
			t.Errorf("agent %d still asleep", a.ID)
		}
	}

	// Play resumes: agents can pick blocks up again
	for i := 0; i < 2000; i++ {
		if err := g.step(); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
	checkConservation(t, g)
}
