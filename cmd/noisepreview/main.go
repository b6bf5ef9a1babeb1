// Steering noise preview tool - interactive visualization with sliders.
//
// Draws one agent's noise stream as a curve and the wander path it produces,
// for tuning seeds, octave counts, and the phase rate.
//
// Usage: go run ./cmd/noisepreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/kinderdrome/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 640
	plotWidth    = 640
	plotHeight   = 200
	pathSize     = 380
	panelX       = float32(plotWidth + 30)
	panelWidth   = windowWidth - plotWidth - 45
)

type previewParams struct {
	Seed      int64
	Octaves   int
	Speed     float32
	PhaseRate float32
	Steps     int
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Steering Noise Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := previewParams{
		Seed:      1,
		Octaves:   1,
		Speed:     2,
		PhaseRate: 200,
		Steps:     4000,
	}
	prev := params

	noise := systems.NewNoise(params.Seed, params.Octaves)

	for !rl.WindowShouldClose() {
		if params != prev {
			noise = systems.NewNoise(params.Seed, params.Octaves)
			prev = params
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		drawCurve(noise, params)
		drawPath(noise, params)
		drawPanel(&params)

		rl.EndDrawing()
	}
}

// drawCurve plots the raw noise samples over the phase range one run covers.
func drawCurve(noise *systems.Noise, params previewParams) {
	const x0, y0 = 10, 10
	rl.DrawRectangleLines(x0, y0, plotWidth, plotHeight, rl.DarkGray)
	rl.DrawLine(x0, y0+plotHeight/2, x0+plotWidth, y0+plotHeight/2, rl.LightGray)

	phaseSpan := float64(params.Speed) / float64(params.PhaseRate) * float64(params.Steps)

	var prevY int32
	for px := 0; px < plotWidth; px++ {
		phase := float64(px) / plotWidth * phaseSpan
		sample := noise.Sample(phase)
		y := y0 + plotHeight/2 - int32(sample*plotHeight/2)
		if px > 0 {
			rl.DrawLine(x0+int32(px)-1, prevY, x0+int32(px), y, rl.Maroon)
		}
		prevY = y
	}

	rl.DrawText(fmt.Sprintf("sample over %.1f phase units (%d ticks)", phaseSpan, params.Steps),
		x0+5, y0+plotHeight+5, 14, rl.Gray)
}

// drawPath traces the wander walk the stream produces: a fixed baseline
// heading perturbed by the noise, stepped at the agent's speed.
func drawPath(noise *systems.Noise, params previewParams) {
	const x0, y0 = 10, 250
	rl.DrawRectangleLines(x0, y0, pathSize, pathSize, rl.DarkGray)

	rng := rand.New(rand.NewSource(params.Seed))
	baseX, baseY := systems.RandDirection(rng)

	x := float32(pathSize / 2)
	y := float32(pathSize / 2)
	phase := 0.0

	for i := 0; i < params.Steps; i++ {
		phase += float64(params.Speed) / float64(params.PhaseRate)
		heading := systems.PerturbHeading(systems.VelToDir(baseX, baseY), noise.Sample(phase))
		ux, uy := systems.DirToVel(heading)

		nx := x + ux*params.Speed
		ny := y + uy*params.Speed
		if nx > 1 && nx < pathSize-1 && ny > 1 && ny < pathSize-1 {
			rl.DrawLine(x0+int32(x), y0+int32(y), x0+int32(nx), y0+int32(ny),
				rl.Fade(rl.DarkBlue, 0.3+0.7*float32(i)/float32(params.Steps)))
			x, y = nx, ny
		} else {
			// Bounce the walk back into the frame like the arena would
			if nx <= 1 || nx >= pathSize-1 {
				baseX = -baseX
			}
			if ny <= 1 || ny >= pathSize-1 {
				baseY = -baseY
			}
		}
	}

	rl.DrawText("wander path", x0+5, y0+pathSize+5, 14, rl.Gray)
}

// drawPanel renders the parameter sliders and buttons.
func drawPanel(params *previewParams) {
	y := float32(10)

	rl.DrawText("Steering Noise Parameters", int32(panelX), int32(y), 20, rl.DarkGray)
	y += 35

	slider := func(label string, value, minVal, maxVal float32) float32 {
		rl.DrawText(label, int32(panelX), int32(y), 14, rl.Gray)
		y += 18
		v := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: y, Width: panelWidth - 80, Height: 20},
			fmt.Sprintf("%.0f", minVal), fmt.Sprintf("%.0f", maxVal),
			value, minVal, maxVal,
		)
		y += 30
		return v
	}

	params.Seed = int64(slider(fmt.Sprintf("Seed: %d", params.Seed), float32(params.Seed), 1, 1000))
	params.Octaves = int(slider(fmt.Sprintf("Octaves: %d", params.Octaves), float32(params.Octaves), 1, 4) + 0.5)
	params.Speed = slider(fmt.Sprintf("Speed: %.1f px/tick", params.Speed), params.Speed, 1, 8)
	params.PhaseRate = slider(fmt.Sprintf("Phase rate: %.0f", params.PhaseRate), params.PhaseRate, 50, 400)
	params.Steps = int(slider(fmt.Sprintf("Ticks: %d", params.Steps), float32(params.Steps), 500, 20000))

	if gui.Button(rl.Rectangle{X: panelX, Y: y, Width: 120, Height: 30}, "Random Seed") {
		params.Seed = rand.Int63n(1000) + 1
	}
	if gui.Button(rl.Rectangle{X: panelX + 130, Y: y, Width: 120, Height: 30}, "Reset") {
		*params = previewParams{Seed: 1, Octaves: 1, Speed: 2, PhaseRate: 200, Steps: 4000}
	}
}
