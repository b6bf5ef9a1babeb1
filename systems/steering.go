package systems

import (
	"math"
	"math/rand"
)

// Headings are in degrees throughout: steering perturbs the baseline heading
// by the noise sample scaled to a full circle, so degree arithmetic keeps the
// scale factor a plain 360.

// DirToVel returns the unit vector for a heading in degrees.
func DirToVel(deg float32) (x, y float32) {
	rad := float64(deg) * math.Pi / 180
	return float32(math.Cos(rad)), float32(math.Sin(rad))
}

// VelToDir returns the heading in degrees of a vector. Zero vectors map to 0.
func VelToDir(x, y float32) float32 {
	if x == 0 && y == 0 {
		return 0
	}
	return float32(math.Atan2(float64(y), float64(x)) * 180 / math.Pi)
}

// PerturbHeading applies a noise sample to a baseline heading.
// The sample is nominally in [-1, 1], so the perturbation spans a full
// rotation per tick; this wide arc is deliberate tuning, kept as-is.
func PerturbHeading(baseDeg float32, sample float64) float32 {
	return baseDeg + float32(sample)*360
}

// RandDirection returns a uniformly random unit vector.
func RandDirection(rng *rand.Rand) (x, y float32) {
	return DirToVel(float32(rng.Float64() * 360))
}

// RandPointInCircle returns a uniformly-angled random point within radius of
// the center. Distance is drawn linearly, matching the drop scatter used when
// agents dump their blocks.
func RandPointInCircle(rng *rand.Rand, cx, cy, radius float32) (x, y float32) {
	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Float64() * float64(radius)
	return cx + float32(math.Cos(angle)*dist), cy + float32(math.Sin(angle)*dist)
}

// Overlaps reports whether two axis-aligned boxes, given by centers and half
// extents, intersect.
func Overlaps(x1, y1, half1, x2, y2, half2 float32) bool {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx < half1+half2 && dy < half1+half2
}

// DistanceSq returns the squared distance between two points.
func DistanceSq(x1, y1, x2, y2 float32) float32 {
	dx := x1 - x2
	dy := y1 - y2
	return dx*dx + dy*dy
}

// clampFloat clamps a float32 value between min and max.
func clampFloat(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// ClampToSpan clamps a box center so the box stays inside [lo+half, hi-half].
func ClampToSpan(center, half, lo, hi float32) float32 {
	return clampFloat(center, lo+half, hi-half)
}
