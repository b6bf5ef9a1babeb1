package systems

import (
	"math"
	"math/rand"
	"testing"
)

// TestDrawSnatcherConverges runs the win draw many times and checks the
// empirical probability against score/(score+score).
func TestDrawSnatcherConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const trials = 10000

	wins := 0
	for i := 0; i < trials; i++ {
		if DrawSnatcher(rng, 7, 3) {
			wins++
		}
	}

	p := float64(wins) / trials
	// Three-sigma bound for p=0.7 over 10000 trials is about 0.014.
	if math.Abs(p-0.7) > 0.02 {
		t.Errorf("P(score-7 agent wins) = %v, want 0.7 +/- 0.02", p)
	}
}

func TestDrawSnatcherDegenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	if DrawSnatcher(rng, 0, 0) {
		t.Error("DrawSnatcher(0, 0) = true, want false")
	}
	for i := 0; i < 100; i++ {
		if DrawSnatcher(rng, 0, 5) {
			t.Fatal("zero-score challenger won the draw")
		}
		if !DrawSnatcher(rng, 5, 0) {
			t.Fatal("challenger lost against zero-score opponent")
		}
	}
}

func TestSnatchAmount(t *testing.T) {
	tests := []struct {
		winner, victim int32
		want           int32
	}{
		{7, 3, 2},  // 0.7 * 3 = 2.1 -> 2
		{3, 7, 2},  // 0.3 * 7 = 2.1 -> 2
		{5, 5, 3},  // 0.5 * 5 = 2.5 -> 3 (round half away from zero)
		{1, 1, 1},  // 0.5 * 1 = 0.5 -> 1
		{10, 1, 1}, // 10/11 * 1 -> 1
		{1, 10, 1}, // 1/11 * 10 = 0.909 -> 1
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := SnatchAmount(tt.winner, tt.victim); got != tt.want {
			t.Errorf("SnatchAmount(%d, %d) = %d, want %d", tt.winner, tt.victim, got, tt.want)
		}
	}
}
