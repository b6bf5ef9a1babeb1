package systems

import (
	"math"
	"math/rand"
	"testing"
)

func TestDirToVelRoundTrip(t *testing.T) {
	for _, deg := range []float32{0, 45, 90, 135, 180, -90, 270, 359} {
		x, y := DirToVel(deg)

		length := math.Sqrt(float64(x*x + y*y))
		if math.Abs(length-1) > 1e-5 {
			t.Errorf("DirToVel(%v) has length %v, want 1", deg, length)
		}

		back := VelToDir(x, y)
		diff := math.Mod(float64(back-deg), 360)
		if diff < -180 {
			diff += 360
		} else if diff > 180 {
			diff -= 360
		}
		if math.Abs(diff) > 1e-3 {
			t.Errorf("VelToDir(DirToVel(%v)) = %v", deg, back)
		}
	}
}

func TestVelToDirZero(t *testing.T) {
	if d := VelToDir(0, 0); d != 0 {
		t.Errorf("VelToDir(0, 0) = %v, want 0", d)
	}
}

func TestPerturbHeadingFullCircle(t *testing.T) {
	// A unit sample swings the heading by a full rotation.
	if got := PerturbHeading(10, 1); got != 370 {
		t.Errorf("PerturbHeading(10, 1) = %v, want 370", got)
	}
	if got := PerturbHeading(10, -0.5); got != -170 {
		t.Errorf("PerturbHeading(10, -0.5) = %v, want -170", got)
	}
}

func TestRandPointInCircle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const cx, cy, radius = 100, 200, 64

	for i := 0; i < 1000; i++ {
		x, y := RandPointInCircle(rng, cx, cy, radius)
		if DistanceSq(x, y, cx, cy) > radius*radius+1e-3 {
			t.Fatalf("point (%v, %v) outside radius %v of (%v, %v)", x, y, radius, cx, cy)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                         string
		x1, y1, h1, x2, y2, h2       float32
		want                         bool
	}{
		{"coincident", 0, 0, 10, 0, 0, 10, true},
		{"touching edges excluded", 0, 0, 10, 20, 0, 10, false},
		{"overlapping x only", 0, 0, 10, 15, 50, 10, false},
		{"overlapping both", 0, 0, 10, 15, 15, 10, true},
		{"small in large", 5, 5, 2, 0, 0, 24, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.x1, tt.y1, tt.h1, tt.x2, tt.y2, tt.h2); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClampToSpan(t *testing.T) {
	if got := ClampToSpan(1, 24, 2, 1278); got != 26 {
		t.Errorf("ClampToSpan(1, 24, 2, 1278) = %v, want 26", got)
	}
	if got := ClampToSpan(1277, 24, 2, 1278); got != 1254 {
		t.Errorf("ClampToSpan(1277, 24, 2, 1278) = %v, want 1254", got)
	}
	if got := ClampToSpan(640, 24, 2, 1278); got != 640 {
		t.Errorf("ClampToSpan(640, 24, 2, 1278) = %v, want 640", got)
	}
}
