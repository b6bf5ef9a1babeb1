// Package components defines ECS components for the simulation.
package components

// Position represents an entity's world position (center of its bounding box).
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in pixels per tick.
type Velocity struct {
	X, Y float32
}

// Trajectory holds the baseline heading vector that noise steering perturbs,
// and the phase of the agent's noise stream. The baseline only changes on
// boundary bounces, recentring events, and contest entry/exit.
type Trajectory struct {
	BaseX, BaseY float32 // baseline unit direction vector
	Phase        float64 // noise stream phase, monotonically increasing
}
