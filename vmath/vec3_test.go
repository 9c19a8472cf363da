package vmath

import (
	"math"
	"math/rand"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestV3MoveTowards(t *testing.T) {
	tests := []struct {
		name     string
		current  Vec3
		target   Vec3
		maxDelta float64
		want     Vec3
	}{
		{"Partial step on X", Vec3{0, 0, 0}, Vec3{10, 0, 0}, 1, Vec3{1, 0, 0}},
		{"Reaches target exactly", Vec3{9, 0, 0}, Vec3{10, 0, 0}, 1, Vec3{10, 0, 0}},
		{"Clamped past target", Vec3{9.5, 0, 0}, Vec3{10, 0, 0}, 1, Vec3{10, 0, 0}},
		{"Zero delta holds position", Vec3{3, 4, 5}, Vec3{10, 0, 0}, 0, Vec3{3, 4, 5}},
		{"Already at target", Vec3{2, 2, 2}, Vec3{2, 2, 2}, 1, Vec3{2, 2, 2}},
		{"Diagonal step normalized", Vec3{0, 0, 0}, Vec3{3, 4, 0}, 5, Vec3{3, 4, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := V3MoveTowards(tt.current, tt.target, tt.maxDelta)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) || !almostEqual(got.Z, tt.want.Z) {
				t.Errorf("V3MoveTowards() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// TestV3MoveTowardsNeverOvershoots fuzzes random start/target/step
// combinations and verifies the step length never exceeds maxDelta and
// the remaining distance never goes negative.
func TestV3MoveTowardsNeverOvershoots(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		current := Vec3{rng.Float64()*20 - 10, rng.Float64()*20 - 10, rng.Float64()*20 - 10}
		target := Vec3{rng.Float64()*20 - 10, rng.Float64()*20 - 10, rng.Float64()*20 - 10}
		maxDelta := rng.Float64() * 5

		next := V3MoveTowards(current, target, maxDelta)

		step := V3Dist(current, next)
		if step > maxDelta+epsilon {
			t.Fatalf("step %.9f exceeds maxDelta %.9f", step, maxDelta)
		}

		before := V3Dist(current, target)
		after := V3Dist(next, target)
		if after > before+epsilon {
			t.Fatalf("moved away from target: before %.9f, after %.9f", before, after)
		}
	}
}

func TestV3Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"Unit X", Vec3{1, 0, 0}},
		{"Long diagonal", Vec3{10, -20, 5}},
		{"Tiny vector", Vec3{1e-6, 2e-6, -3e-6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := V3Normalize(tt.v)
			if !almostEqual(V3Mag(n), 1.0) {
				t.Errorf("normalized magnitude = %.12f, want 1", V3Mag(n))
			}
		})
	}

	t.Run("Zero vector stays zero", func(t *testing.T) {
		n := V3Normalize(Vec3{})
		if n != (Vec3{}) {
			t.Errorf("V3Normalize(zero) = %+v, want zero", n)
		}
	})
}

func TestV3DistSq(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 6, 3}
	if got := V3DistSq(a, b); !almostEqual(got, 25) {
		t.Errorf("V3DistSq = %v, want 25", got)
	}
	if got := V3Dist(a, b); !almostEqual(got, 5) {
		t.Errorf("V3Dist = %v, want 5", got)
	}
}
