package game

import (
	"log/slog"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kinderdrome/components"
	"github.com/pthm-cable/kinderdrome/config"
	"github.com/pthm-cable/kinderdrome/systems"
)

// Bed is one sleeping spot on a perimeter grid cell. Beds exist only while
// the arena is in nap time.
type Bed struct {
	Row, Col int
	X, Y     float32 // cell center
	Occupied bool
	Occupant uint32 // Kinder.ID, valid only while Occupied
}

// ToggleNapTime switches nap time on or off. Entry interrupts everything:
// contests are cancelled and held stacks are dropped. Exit returns the
// arena to surplus with the dropped blocks free for pickup.
func (g *Game) ToggleNapTime() {
	if g.mode == ModeNapTime {
		g.exitNapTime()
	} else {
		g.enterNapTime()
	}
}

func (g *Game) enterNapTime() {
	g.mode = ModeNapTime
	g.createBeds()

	dropRadius := min(g.grid.CellW(), g.grid.CellH())

	query := g.kinderFilter.Query()
	for query.Next() {
		pos, _, _, kin, contest, inv := query.Get()

		contest.Engaged = false
		contest.Timer = 0
		contest.Snatcher = false
		contest.Opponent = ecs.Entity{}

		dropped := len(inv.Blocks)
		for _, be := range inv.Blocks {
			blk := g.blockMap.Get(be)
			blk.Held = false
			blk.Owner = 0

			bx, by := systems.RandPointInCircle(g.rng, pos.X, pos.Y, dropRadius)
			bpos := g.posMap.Get(be)
			bpos.X = systems.ClampToSpan(bx, g.blockHalf, g.margin, g.arenaW-g.margin)
			bpos.Y = systems.ClampToSpan(by, g.blockHalf, g.margin, g.arenaH-g.margin)
		}
		if dropped > 0 {
			inv.Blocks = inv.Blocks[:0]
			kin.Score = 0
			g.remaining += dropped
			g.collector.RecordBlocksDropped(dropped)
		}

		kin.Asleep = false
		kin.Bed = -1
	}

	slog.Info("nap time begins",
		"tick", g.tick,
		"beds", len(g.beds),
		"free_blocks", g.remaining,
	)
}

func (g *Game) exitNapTime() {
	g.mode = ModeSurplus
	if g.remaining == 0 {
		// Nothing left to collect, straight back to saturation
		g.mode = ModeSaturation
	}
	g.beds = nil

	query := g.kinderFilter.Query()
	for query.Next() {
		_, _, _, kin, _, _ := query.Get()
		kin.Asleep = false
		kin.Bed = -1
	}

	slog.Info("nap time ends", "tick", g.tick, "free_blocks", g.remaining)
}

// createBeds lays beds on the perimeter cells of the grid, walking the ring
// clockwise from the top-left corner. The pool never exceeds the agent count.
func (g *Game) createBeds() {
	capacity := min(config.Cfg().Derived.PerimeterSlots, g.agentCount)
	g.beds = make([]Bed, 0, capacity)

	rows := g.grid.Rows()
	cols := g.grid.Cols()

	addBed := func(row, col int) {
		if len(g.beds) >= capacity {
			return
		}
		g.beds = append(g.beds, Bed{
			Row: row,
			Col: col,
			X:   (float32(col) + 0.5) * g.grid.CellW(),
			Y:   (float32(row) + 0.5) * g.grid.CellH(),
		})
	}

	for col := 0; col < cols; col++ {
		addBed(0, col)
	}
	for row := 1; row < rows-1; row++ {
		addBed(row, cols-1)
	}
	if rows > 1 {
		for col := cols - 1; col >= 0; col-- {
			addBed(rows-1, col)
		}
	}
	for row := rows - 2; row >= 1; row-- {
		addBed(row, 0)
	}
}

// updateNapTime moves one awake agent toward the nearest free bed and claims
// it on contact. Sleeping agents stay put.
func (g *Game) updateNapTime(pos *components.Position, vel *components.Velocity, kin *components.Kinder) {
	if kin.Asleep {
		return
	}

	target := g.nearestFreeBed(pos.X, pos.Y)
	if target < 0 {
		// More agents than beds never happens with a validated config,
		// but an agent left standing just waits.
		vel.X, vel.Y = 0, 0
		return
	}

	bed := &g.beds[target]
	dx := bed.X - pos.X
	dy := bed.Y - pos.Y
	dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if dist > 0 {
		step := min(kin.Speed, dist)
		vel.X = dx / dist * step
		vel.Y = dy / dist * step
	}

	pos.X += vel.X
	pos.Y += vel.Y

	g.tryClaimBed(pos, vel, kin)
}

// tryClaimBed puts the agent to sleep on the first free bed its bounding box
// touches, snapping it to the bed center.
func (g *Game) tryClaimBed(pos *components.Position, vel *components.Velocity, kin *components.Kinder) {
	halfW := g.grid.CellW() / 2
	halfH := g.grid.CellH() / 2

	for i := range g.beds {
		bed := &g.beds[i]
		if bed.Occupied {
			continue
		}
		if !boxesOverlap(pos.X, pos.Y, kin.HalfExtent, kin.HalfExtent, bed.X, bed.Y, halfW, halfH) {
			continue
		}

		bed.Occupied = true
		bed.Occupant = kin.ID
		kin.Asleep = true
		kin.Bed = int32(i)
		pos.X = bed.X
		pos.Y = bed.Y
		vel.X, vel.Y = 0, 0
		g.collector.RecordBedClaimed()
		return
	}
}

// nearestFreeBed returns the index of the closest unoccupied bed, or -1.
func (g *Game) nearestFreeBed(x, y float32) int {
	best := -1
	var bestDist float32
	for i := range g.beds {
		if g.beds[i].Occupied {
			continue
		}
		d := systems.DistanceSq(x, y, g.beds[i].X, g.beds[i].Y)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// boxesOverlap tests two axis-aligned boxes with per-axis half extents.
// Beds span a full grid cell, which is rarely square.
func boxesOverlap(x1, y1, hw1, hh1, x2, y2, hw2, hh2 float32) bool {
	return x1-hw1 < x2+hw2 && x1+hw1 > x2-hw2 &&
		y1-hh1 < y2+hh2 && y1+hh1 > y2-hh2
}
