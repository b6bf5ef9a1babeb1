package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	if rl.IsKeyPressed(rl.KeyN) {
		g.ToggleNapTime()
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		g.selectAgentAt(mouse.X, mouse.Y)
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonRight) {
		g.hasSelected = false
	}
}

// selectAgentAt picks the agent whose bounding box contains the point, if any.
func (g *Game) selectAgentAt(x, y float32) {
	g.hasSelected = false

	query := g.kinderFilter.Query()
	for query.Next() {
		pos, _, _, kin, _, _ := query.Get()
		if x >= pos.X-kin.HalfExtent && x <= pos.X+kin.HalfExtent &&
			y >= pos.Y-kin.HalfExtent && y <= pos.Y+kin.HalfExtent {
			g.selected = query.Entity()
			g.hasSelected = true
			// Keep scanning so the topmost drawn agent wins
		}
	}
}
