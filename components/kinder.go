package components

import "github.com/mlange-42/ark/ecs"

// Kinder bundles identity, movement, and economy state for one agent.
type Kinder struct {
	ID         uint32
	Speed      float32 // pixels per tick, constant for the agent's lifetime
	HalfExtent float32 // half side of the square bounding box
	Score      int32   // invariant: equals len(Inventory.Blocks)
	RunTimer   int32   // ticks of suppressed steering after a boundary bounce
	Asleep     bool
	Bed        int32 // index into the bed pool, valid only while Asleep
}

// Contest holds an agent's stand-off state. Opponent references are entity
// handles into the world, not pointers, so two engaged agents never form an
// ownership cycle.
type Contest struct {
	Engaged      bool
	Timer        int32 // ticks remaining in the stand-off
	Snatcher     bool  // win designate, drawn once at contest entry
	Opponent     ecs.Entity
	LastOpponent ecs.Entity // suppresses immediate rematches
	HasLast      bool
}

// Inventory is the agent's held-block stack, most recently acquired on top
// (end of the slice).
type Inventory struct {
	Blocks []ecs.Entity
}

// Block is a collectible unit of score. A block is either on the field
// (Held false) or in exactly one agent's inventory (Held true, Owner set).
type Block struct {
	ID    uint32
	Held  bool
	Owner uint32 // owning agent's Kinder.ID, valid only while Held
}
