// Package ui renders the heads-up display and its controls.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Mode         string
	Tick         int32
	Agents       int
	FreeBlocks   int
	Asleep       int
	Steps        int
	FPS          int32
	Paused       bool
	NapTime      bool
	ScreenWidth  int32
	ScreenHeight int32
}

// Actions reports control interactions back to the caller.
type Actions struct {
	TogglePause   bool
	ToggleNapTime bool
	Steps         int
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD and returns any control interactions.
func (h *HUD) Draw(data HUDData) Actions {
	actions := Actions{Steps: data.Steps}

	// Title
	rl.DrawText(data.Title, 10, 10, 20, rl.DarkGray)

	// Arena state
	rl.DrawText(
		fmt.Sprintf("Mode: %s | Free blocks: %d | Asleep: %d/%d", data.Mode, data.FreeBlocks, data.Asleep, data.Agents),
		10, 35, 16, rl.Gray,
	)

	// Simulation info
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.Steps, data.FPS),
		10, 55, 16, rl.Gray,
	)

	// Status
	statusText := "Running"
	statusColor := rl.DarkGreen
	if data.Paused {
		statusText = "PAUSED"
		statusColor = rl.Maroon
	}
	rl.DrawText(statusText, 10, 75, 16, statusColor)

	// Control buttons, top right
	x := float32(data.ScreenWidth) - 130
	pauseLabel := "Pause"
	if data.Paused {
		pauseLabel = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: 10, Width: 120, Height: 28}, pauseLabel) {
		actions.TogglePause = true
	}

	napLabel := "Nap Time"
	if data.NapTime {
		napLabel = "Wake Up"
	}
	if gui.Button(rl.Rectangle{X: x, Y: 44, Width: 120, Height: 28}, napLabel) {
		actions.ToggleNapTime = true
	}

	steps := gui.SliderBar(
		rl.Rectangle{X: x, Y: 78, Width: 120, Height: 20},
		"Speed", fmt.Sprintf("%dx", data.Steps),
		float32(data.Steps), 1, 10,
	)
	actions.Steps = int(steps + 0.5)

	// Controls legend
	rl.DrawText("SPACE: Pause | N: Nap Time | < >: Speed", 10, data.ScreenHeight-25, 14, rl.Gray)

	return actions
}
