package game

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/kinderdrome/components"
	"github.com/pthm-cable/kinderdrome/systems"
)

// resolveContests starts at most one stand-off per grid cell per tick.
// Agents already engaged or holding nothing are not eligible.
func (g *Game) resolveContests() {
	for row := 0; row < g.grid.Rows(); row++ {
		for col := 0; col < g.grid.Cols(); col++ {
			cell := g.grid.Cell(row, col)
			if len(cell) < 2 {
				continue
			}

			eligible := g.cellEligible[:0]
			for _, e := range cell {
				kin := g.kinderMap.Get(e)
				contest := g.contestMap.Get(e)
				if contest.Engaged || kin.Score == 0 {
					continue
				}
				eligible = append(eligible, e)
			}
			g.cellEligible = eligible
			if len(eligible) < 2 {
				continue
			}

			challenger := eligible[g.rng.Intn(len(eligible))]
			chKin := g.kinderMap.Get(challenger)
			chContest := g.contestMap.Get(challenger)

			// No immediate rematches, and no stand-off that could not
			// move a block: a lone block is never snatchable.
			candidates := g.cellCandidate[:0]
			for _, e := range eligible {
				if e == challenger {
					continue
				}
				if chContest.HasLast && e == chContest.LastOpponent {
					continue
				}
				if chKin.Score == 1 && g.kinderMap.Get(e).Score <= 1 {
					continue
				}
				candidates = append(candidates, e)
			}
			g.cellCandidate = candidates
			if len(candidates) == 0 {
				continue
			}

			opponent := candidates[g.rng.Intn(len(candidates))]
			g.beginContest(challenger, opponent)
			g.collector.RecordContestStarted()
		}
	}
}

// beginContest freezes both agents facing each other and draws the snatcher.
// The draw happens exactly once, weighted by score: P(challenger) = a/(a+b).
func (g *Game) beginContest(challenger, opponent ecs.Entity) {
	chPos := g.posMap.Get(challenger)
	opPos := g.posMap.Get(opponent)

	nx, ny := faceDirection(chPos, opPos)
	if nx == 0 && ny == 0 {
		nx, ny = systems.RandDirection(g.rng)
	}

	chTraj := g.trajMap.Get(challenger)
	chTraj.BaseX = nx
	chTraj.BaseY = ny
	opTraj := g.trajMap.Get(opponent)
	opTraj.BaseX = -nx
	opTraj.BaseY = -ny

	chVel := g.velMap.Get(challenger)
	chVel.X, chVel.Y = 0, 0
	opVel := g.velMap.Get(opponent)
	opVel.X, opVel.Y = 0, 0

	chKin := g.kinderMap.Get(challenger)
	opKin := g.kinderMap.Get(opponent)
	challengerWins := systems.DrawSnatcher(g.rng, chKin.Score, opKin.Score)

	chContest := g.contestMap.Get(challenger)
	chContest.Engaged = true
	chContest.Timer = g.contestTicks
	chContest.Opponent = opponent
	chContest.Snatcher = challengerWins

	opContest := g.contestMap.Get(opponent)
	opContest.Engaged = true
	opContest.Timer = g.contestTicks
	opContest.Opponent = challenger
	opContest.Snatcher = !challengerWins
}

// updateEngaged ticks one side of a stand-off. The snatcher transfers blocks
// when the timer hits the snatch point; both sides disengage at zero and
// remember each other to suppress an immediate rematch.
func (g *Game) updateEngaged(
	traj *components.Trajectory,
	kin *components.Kinder,
	contest *components.Contest,
	inv *components.Inventory,
) {
	contest.Timer--

	if contest.Timer == g.snatchTick && contest.Snatcher {
		moved := g.executeSnatch(kin, inv, contest.Opponent)
		g.collector.RecordSnatch(moved)

		// Turn around and walk off with the take
		traj.BaseX = -traj.BaseX
		traj.BaseY = -traj.BaseY
	}

	if contest.Timer <= 0 {
		contest.Engaged = false
		contest.LastOpponent = contest.Opponent
		contest.HasLast = true
		contest.Opponent = ecs.Entity{}
		contest.Snatcher = false
	}
}

// executeSnatch moves blocks from the victim's stack to the winner's, one at
// a time, never taking the victim's last block. Returns the number moved.
func (g *Game) executeSnatch(winKin *components.Kinder, winInv *components.Inventory, victim ecs.Entity) int {
	vKin := g.kinderMap.Get(victim)
	vInv := g.invMap.Get(victim)

	amount := systems.SnatchAmount(winKin.Score, vKin.Score)
	moved := 0
	for i := int32(0); i < amount; i++ {
		if vKin.Score <= 1 {
			break
		}

		top := vInv.Blocks[len(vInv.Blocks)-1]
		vInv.Blocks = vInv.Blocks[:len(vInv.Blocks)-1]
		vKin.Score--

		g.blockMap.Get(top).Owner = winKin.ID
		winInv.Blocks = append(winInv.Blocks, top)
		winKin.Score++
		moved++
	}

	return moved
}

// faceDirection returns the unit vector from a toward b, or zero if they
// share a position.
func faceDirection(a, b *components.Position) (x, y float32) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if dist == 0 {
		return 0, 0
	}
	return dx / dist, dy / dist
}
