package game

import (
	"log/slog"

	"github.com/pthm-cable/kinderdrome/components"
	"github.com/pthm-cable/kinderdrome/systems"
)

// heldX, heldY park a held block's position off the field. Held blocks are
// never rendered or picked up, so the exact point is irrelevant.
const (
	heldX = -1000
	heldY = -1000
)

// collectBlocks claims every free block the agent's bounding box overlaps.
// Claiming the last one flips the arena to saturation on the spot.
func (g *Game) collectBlocks(pos *components.Position, kin *components.Kinder, inv *components.Inventory) {
	for _, be := range g.fieldBlocks {
		blk := g.blockMap.Get(be)
		if blk.Held {
			// Claimed by an earlier agent this tick
			continue
		}

		bpos := g.posMap.Get(be)
		if !systems.Overlaps(pos.X, pos.Y, kin.HalfExtent, bpos.X, bpos.Y, g.blockHalf) {
			continue
		}

		blk.Held = true
		blk.Owner = kin.ID
		bpos.X = heldX
		bpos.Y = heldY

		inv.Blocks = append(inv.Blocks, be)
		kin.Score++
		g.remaining--
		g.collector.RecordPickup()

		if g.remaining == 0 {
			g.mode = ModeSaturation
			slog.Info("all blocks claimed, entering saturation",
				"tick", g.tick,
				"blocks", g.totalBlocks,
			)
		}
	}
}
