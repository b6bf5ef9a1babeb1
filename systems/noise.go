// Package systems provides the simulation systems: noise steering, spatial
// bucketing, and contest arithmetic.
package systems

import (
	"github.com/ojrac/opensimplex-go"
)

// Noise is a per-agent coherent noise stream with bounded output.
// Sampling is pure in (seed, phase): the same stream sampled at the same
// phase always returns the same value, which keeps runs reproducible under
// a fixed global seed.
type Noise struct {
	src     opensimplex.Noise
	octaves int
}

// NewNoise creates a noise stream for the given seed.
// octaves controls detail density; agents derive it from their speed.
func NewNoise(seed int64, octaves int) *Noise {
	if octaves < 1 {
		octaves = 1
	}
	return &Noise{
		src:     opensimplex.New(seed),
		octaves: octaves,
	}
}

// Sample returns the stream value at the given phase, in [-1, 1].
// Octaves are summed with halving amplitude and doubling frequency, then
// normalized so the bound holds regardless of octave count.
func (n *Noise) Sample(phase float64) float64 {
	var sum, norm float64
	amp := 1.0
	freq := 1.0
	for i := 0; i < n.octaves; i++ {
		sum += amp * n.src.Eval2(phase*freq, 0)
		norm += amp
		amp *= 0.5
		freq *= 2
	}
	return sum / norm
}

// OctavesForSpeed derives the noise octave density from an agent's speed.
func OctavesForSpeed(speed float32) int {
	o := int(speed / 2)
	if o < 1 {
		o = 1
	}
	return o
}
