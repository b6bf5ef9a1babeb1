package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kinderdrome/systems"
	"github.com/pthm-cable/kinderdrome/ui"
)

// backgroundColor is the off-white play mat the arena is drawn on.
var backgroundColor = rl.NewColor(244, 235, 208, 255)

var (
	agentColor   = rl.NewColor(87, 142, 202, 255)  // roaming
	engagedColor = rl.NewColor(201, 79, 79, 255)   // mid stand-off
	asleepColor  = rl.NewColor(147, 112, 184, 255) // on a bed
	blockColor   = rl.NewColor(224, 164, 58, 255)
	bedColor     = rl.NewColor(164, 132, 108, 255)
)

// Draw renders the game state.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(backgroundColor)

	g.drawBeds()
	g.drawBlocks()
	g.drawKinders()
	g.drawSelection()
	g.drawHUD()

	rl.EndDrawing()
}

// drawSelection rings the selected agent and fills the inspector panel.
func (g *Game) drawSelection() {
	if !g.hasSelected {
		return
	}

	pos := g.posMap.Get(g.selected)
	vel := g.velMap.Get(g.selected)
	traj := g.trajMap.Get(g.selected)
	kin := g.kinderMap.Get(g.selected)
	contest := g.contestMap.Get(g.selected)

	rl.DrawCircleLines(int32(pos.X), int32(pos.Y), kin.HalfExtent+6, rl.DarkGray)

	heading := systems.VelToDir(vel.X, vel.Y)
	if vel.X == 0 && vel.Y == 0 {
		heading = systems.VelToDir(traj.BaseX, traj.BaseY)
	}

	g.inspector.Draw(ui.AgentInfo{
		ID:       kin.ID,
		X:        pos.X,
		Y:        pos.Y,
		Score:    kin.Score,
		Heading:  heading,
		Phase:    traj.Phase,
		RunTimer: kin.RunTimer,
		Engaged:  contest.Engaged,
		Snatcher: contest.Snatcher,
		Timer:    contest.Timer,
		Asleep:   kin.Asleep,
	}, int32(g.arenaW), int32(g.arenaH))
}

// drawBeds renders the bed pool, filled when occupied.
func (g *Game) drawBeds() {
	cellW := g.grid.CellW()
	cellH := g.grid.CellH()

	for i := range g.beds {
		bed := &g.beds[i]
		rect := rl.Rectangle{
			X:      bed.X - cellW/2 + 4,
			Y:      bed.Y - cellH/2 + 4,
			Width:  cellW - 8,
			Height: cellH - 8,
		}
		if bed.Occupied {
			rl.DrawRectangleRec(rect, rl.Fade(bedColor, 0.4))
		}
		rl.DrawRectangleLinesEx(rect, 2, bedColor)
	}
}

// drawBlocks renders the free blocks still on the field.
func (g *Game) drawBlocks() {
	query := g.blockFilter.Query()
	for query.Next() {
		pos, blk := query.Get()
		if blk.Held {
			continue
		}
		rl.DrawRectangle(
			int32(pos.X-g.blockHalf), int32(pos.Y-g.blockHalf),
			int32(2*g.blockHalf), int32(2*g.blockHalf),
			blockColor,
		)
	}
}

// drawKinders renders every agent with its score.
func (g *Game) drawKinders() {
	query := g.kinderFilter.Query()
	for query.Next() {
		pos, _, _, kin, contest, _ := query.Get()

		color := agentColor
		switch {
		case kin.Asleep:
			color = asleepColor
		case contest.Engaged:
			color = engagedColor
		}

		half := kin.HalfExtent
		rect := rl.Rectangle{
			X:      pos.X - half,
			Y:      pos.Y - half,
			Width:  2 * half,
			Height: 2 * half,
		}
		rl.DrawRectangleRounded(rect, 0.4, 6, color)

		if kin.Score > 0 {
			label := fmt.Sprintf("%d", kin.Score)
			textW := rl.MeasureText(label, 16)
			rl.DrawText(label, int32(pos.X)-textW/2, int32(pos.Y)-8, 16, rl.RayWhite)
		}
	}
}

// drawHUD renders the overlay and applies its control interactions.
func (g *Game) drawHUD() {
	_, asleep := g.sampleScores()

	actions := g.hud.Draw(ui.HUDData{
		Title:        "The Kinderdrome",
		Mode:         g.mode.String(),
		Tick:         g.tick,
		Agents:       g.agentCount,
		FreeBlocks:   g.remaining,
		Asleep:       asleep,
		Steps:        g.stepsPerUpdate,
		FPS:          rl.GetFPS(),
		Paused:       g.paused,
		NapTime:      g.mode == ModeNapTime,
		ScreenWidth:  int32(g.arenaW),
		ScreenHeight: int32(g.arenaH),
	})

	if actions.TogglePause {
		g.paused = !g.paused
	}
	if actions.ToggleNapTime {
		g.ToggleNapTime()
	}
	if actions.Steps >= 1 && actions.Steps <= 10 {
		g.stepsPerUpdate = actions.Steps
	}
}
