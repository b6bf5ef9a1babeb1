package systems

import (
	"math"
	"math/rand"
)

// DrawSnatcher performs the single win-designation trial for a contest.
// It returns true if the challenger (score a) is the snatcher:
// P(challenger wins) = a / (a + b). Drawn exactly once at contest entry.
func DrawSnatcher(rng *rand.Rand, a, b int32) bool {
	total := a + b
	if total <= 0 {
		return false
	}
	return rng.Float64() < float64(a)/float64(total)
}

// SnatchAmount returns the target number of blocks transferred from victim
// to winner: round(winner/(winner+victim) * victim). The actual transfer may
// stop short of this to leave the victim at least one block.
func SnatchAmount(winner, victim int32) int32 {
	total := winner + victim
	if total <= 0 {
		return 0
	}
	return int32(math.Round(float64(winner) / float64(total) * float64(victim)))
}
