package game

// AgentState is a read-only view of one agent.
type AgentState struct {
	ID      uint32
	X, Y    float32
	Score   int32
	Held    int // blocks in inventory
	Engaged bool
	Asleep  bool
}

// BlockState is a read-only view of one block.
type BlockState struct {
	ID    uint32
	X, Y  float32
	Held  bool
	Owner uint32
}

// Agents returns a snapshot of every agent's observable state.
func (g *Game) Agents() []AgentState {
	out := make([]AgentState, 0, g.agentCount)

	query := g.kinderFilter.Query()
	for query.Next() {
		pos, _, _, kin, contest, inv := query.Get()
		out = append(out, AgentState{
			ID:      kin.ID,
			X:       pos.X,
			Y:       pos.Y,
			Score:   kin.Score,
			Held:    len(inv.Blocks),
			Engaged: contest.Engaged,
			Asleep:  kin.Asleep,
		})
	}
	return out
}

// Blocks returns a snapshot of every block's observable state.
func (g *Game) Blocks() []BlockState {
	out := make([]BlockState, 0, g.totalBlocks)

	query := g.blockFilter.Query()
	for query.Next() {
		pos, blk := query.Get()
		out = append(out, BlockState{
			ID:    blk.ID,
			X:     pos.X,
			Y:     pos.Y,
			Held:  blk.Held,
			Owner: blk.Owner,
		})
	}
	return out
}

// Beds returns the current bed pool. Empty outside nap time.
func (g *Game) Beds() []Bed {
	out := make([]Bed, len(g.beds))
	copy(out, g.beds)
	return out
}
