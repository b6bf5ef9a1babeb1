package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// AgentInfo holds the observable state of one selected agent.
type AgentInfo struct {
	ID       uint32
	X, Y     float32
	Score    int32
	Heading  float32 // degrees
	Phase    float64
	RunTimer int32
	Engaged  bool
	Snatcher bool
	Timer    int32
	Asleep   bool
}

// Inspector renders the selected-agent panel.
type Inspector struct{}

// NewInspector creates a new inspector renderer.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Draw renders the panel in the bottom-right corner.
func (ins *Inspector) Draw(info AgentInfo, screenW, screenH int32) {
	const w, h = 230, 150
	x := screenW - w - 10
	y := screenH - h - 10

	rl.DrawRectangle(x, y, w, h, rl.Fade(rl.RayWhite, 0.9))
	rl.DrawRectangleLines(x, y, w, h, rl.DarkGray)

	line := y + 8
	put := func(s string) {
		rl.DrawText(s, x+10, line, 14, rl.DarkGray)
		line += 18
	}

	put(fmt.Sprintf("Agent %d", info.ID))
	put(fmt.Sprintf("pos: (%.0f, %.0f)  heading: %.0f", info.X, info.Y, info.Heading))
	put(fmt.Sprintf("score: %d", info.Score))
	put(fmt.Sprintf("phase: %.2f  run: %d", info.Phase, info.RunTimer))

	switch {
	case info.Asleep:
		put("state: asleep")
	case info.Engaged:
		role := "holding out"
		if info.Snatcher {
			role = "snatching"
		}
		put(fmt.Sprintf("state: stand-off (%s)", role))
		put(fmt.Sprintf("timer: %d", info.Timer))
	default:
		put("state: roaming")
	}
}
