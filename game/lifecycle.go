package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kinderdrome/components"
	"github.com/pthm-cable/kinderdrome/config"
	"github.com/pthm-cable/kinderdrome/systems"
)

// spawnInitialPopulation creates the starting agents and field blocks.
func (g *Game) spawnInitialPopulation() {
	cfg := config.Cfg()

	for i := 0; i < cfg.Population.Kinder; i++ {
		g.spawnKinder(float32(cfg.Population.Speed), float32(cfg.Population.HalfExtent))
	}
	for i := 0; i < cfg.Blocks.Count; i++ {
		g.spawnBlock()
	}

	g.totalBlocks = cfg.Blocks.Count
	g.remaining = cfg.Blocks.Count
	if g.remaining == 0 {
		g.mode = ModeSaturation
	}
}

// spawnKinder creates one agent at a random in-bounds position with a fresh
// noise stream and a random baseline heading.
func (g *Game) spawnKinder(speed, halfExtent float32) ecs.Entity {
	id := g.nextID
	g.nextID++

	x, y := g.randomFieldPoint(halfExtent)
	bx, by := systems.RandDirection(g.rng)

	pos := components.Position{X: x, Y: y}
	vel := components.Velocity{X: bx * speed, Y: by * speed}
	traj := components.Trajectory{BaseX: bx, BaseY: by}
	kin := components.Kinder{ID: id, Speed: speed, HalfExtent: halfExtent, Bed: -1}
	contest := components.Contest{}
	inv := components.Inventory{}

	// One noise stream per agent, octave density scaled to its speed
	seed := g.rng.Int63n(1000) + 1
	g.noise[id] = systems.NewNoise(seed, systems.OctavesForSpeed(speed))

	entity := g.kinderMapper.NewEntity(&pos, &vel, &traj, &kin, &contest, &inv)
	g.agentCount++

	return entity
}

// spawnBlock creates one free block at a random in-bounds position.
func (g *Game) spawnBlock() ecs.Entity {
	id := g.nextBlockID
	g.nextBlockID++

	x, y := g.randomFieldPoint(g.blockHalf)
	pos := components.Position{X: x, Y: y}
	blk := components.Block{ID: id}

	return g.blockMapper.NewEntity(&pos, &blk)
}

// randomFieldPoint returns a random position whose bounding box of the given
// half extent sits fully inside the bounce margin.
func (g *Game) randomFieldPoint(half float32) (x, y float32) {
	x = g.margin + half + (g.arenaW-2*(g.margin+half))*g.rng.Float32()
	y = g.margin + half + (g.arenaH-2*(g.margin+half))*g.rng.Float32()
	return x, y
}
