package game

import (
	"fmt"

	"github.com/pthm-cable/kinderdrome/components"
	"github.com/pthm-cable/kinderdrome/systems"
	"github.com/pthm-cable/kinderdrome/telemetry"
)

// Update runs input handling and one or more simulation steps.
// Used in graphical mode, once per frame.
func (g *Game) Update() error {
	g.handleInput()

	if g.paused {
		return nil
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// UpdateHeadless runs simulation steps without touching raylib.
func (g *Game) UpdateHeadless() error {
	if g.paused {
		return nil
	}

	for i := 0; i < g.stepsPerUpdate; i++ {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

// step runs a single tick of the simulation.
func (g *Game) step() error {
	g.perf.StartTick()

	// 1. Reset the spatial index; agents re-insert as they move
	g.perf.StartPhase(telemetry.PhaseSpatialGrid)
	g.grid.Clear()
	g.refreshFieldBlocks()

	// 2. Move every agent and rebuild the grid
	g.perf.StartPhase(telemetry.PhaseAgents)
	if err := g.updateKinders(); err != nil {
		g.perf.EndTick()
		return err
	}

	// 3. Resolve stand-offs cell by cell
	g.perf.StartPhase(telemetry.PhaseContests)
	if g.mode == ModeSaturation {
		g.resolveContests()
	}

	// 4. Flush telemetry windows
	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.flushTelemetry()

	g.perf.EndTick()
	g.tick++
	return nil
}

// refreshFieldBlocks rebuilds the list of free blocks for pickup tests.
func (g *Game) refreshFieldBlocks() {
	g.fieldBlocks = g.fieldBlocks[:0]
	if g.mode != ModeSurplus {
		return
	}

	query := g.blockFilter.Query()
	for query.Next() {
		_, blk := query.Get()
		if !blk.Held {
			g.fieldBlocks = append(g.fieldBlocks, query.Entity())
		}
	}
}

// updateKinders advances every agent one tick and inserts it into the grid.
// A grid insertion failure means an agent escaped the arena, which the
// movement rules are supposed to make impossible; it aborts the run.
func (g *Game) updateKinders() error {
	var insertErr error

	query := g.kinderFilter.Query()
	for query.Next() {
		entity := query.Entity()
		pos, vel, traj, kin, contest, inv := query.Get()

		switch {
		case g.mode == ModeNapTime:
			g.updateNapTime(pos, vel, kin)
		case contest.Engaged:
			g.updateEngaged(traj, kin, contest, inv)
		default:
			g.updateFreeRoam(pos, vel, traj, kin, inv)
		}

		// Must consume the entire query to release the world lock, so
		// remember the first failure instead of returning early.
		if err := g.grid.Insert(entity, pos.X, pos.Y); err != nil && insertErr == nil {
			insertErr = fmt.Errorf("agent %d (score %d): %w", kin.ID, kin.Score, err)
		}
	}

	return insertErr
}

// updateFreeRoam applies noise steering and movement, then pickup checks.
func (g *Game) updateFreeRoam(
	pos *components.Position,
	vel *components.Velocity,
	traj *components.Trajectory,
	kin *components.Kinder,
	inv *components.Inventory,
) {
	if g.applyBounds(pos, vel, traj, kin.HalfExtent) {
		// Run straight off the wall for a few ticks before steering resumes
		kin.RunTimer = g.bounceRunTicks
		g.collector.RecordBounce()
	}

	if kin.RunTimer > 0 {
		kin.RunTimer--
	} else {
		g.steer(vel, traj, kin)
	}

	pos.X += vel.X
	pos.Y += vel.Y

	if g.mode == ModeSurplus {
		g.collectBlocks(pos, kin, inv)
	}
}

// steer perturbs the agent's baseline heading by its noise stream and
// occasionally recenters the baseline onto the current heading.
func (g *Game) steer(vel *components.Velocity, traj *components.Trajectory, kin *components.Kinder) {
	traj.Phase += float64(kin.Speed) / g.phaseRate

	sample := g.noise[kin.ID].Sample(traj.Phase)
	heading := systems.PerturbHeading(systems.VelToDir(traj.BaseX, traj.BaseY), sample)
	ux, uy := systems.DirToVel(heading)
	vel.X = ux * kin.Speed
	vel.Y = uy * kin.Speed

	if g.rng.Intn(g.recenterInterval) == 0 {
		traj.BaseX = ux
		traj.BaseY = uy
		traj.Phase = float64(g.rng.Intn(g.maxPhaseOffset))
	}
}

// applyBounds bounces the agent off the arena margin. On a crossing the
// center is clamped back inside and both the velocity and the baseline
// heading are negated on that axis.
func (g *Game) applyBounds(
	pos *components.Position,
	vel *components.Velocity,
	traj *components.Trajectory,
	half float32,
) bool {
	bounced := false

	if pos.X-half < g.margin || pos.X+half > g.arenaW-g.margin {
		pos.X = systems.ClampToSpan(pos.X, half, g.margin, g.arenaW-g.margin)
		vel.X = -vel.X
		traj.BaseX = -traj.BaseX
		bounced = true
	}
	if pos.Y-half < g.margin || pos.Y+half > g.arenaH-g.margin {
		pos.Y = systems.ClampToSpan(pos.Y, half, g.margin, g.arenaH-g.margin)
		vel.Y = -vel.Y
		traj.BaseY = -traj.BaseY
		bounced = true
	}

	return bounced
}
