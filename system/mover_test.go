package system

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/snatch/component"
	"github.com/lixenwraith/snatch/route"
	"github.com/lixenwraith/snatch/vmath"
)

func newTestChaser(r route.Route, speed float64) *component.Chaser {
	return &component.Chaser{
		ID:            1,
		Position:      r.Start(),
		WaypointIndex: 1,
		Speed:         speed,
		Forward:       true,
		State:         component.ChaserActive,
	}
}

// TestMoverStraightLineTiming pins the reference timing: unit speed on
// a 10-unit segment with dt=1 reaches the far waypoint on the 10th
// tick and reports completed on the 11th evaluation.
func TestMoverStraightLineTiming(t *testing.T) {
	r := route.New(vmath.Vec3{X: 0, Y: 0, Z: 0}, vmath.Vec3{X: 10, Y: 0, Z: 0})
	m := &Mover{ReachDistance: 0.1}
	ch := newTestChaser(r, 1.0)

	for tick := 1; tick <= 10; tick++ {
		if m.Advance(ch, r, 1.0) {
			t.Fatalf("completed early on tick %d", tick)
		}
	}

	if ch.Position.X != 10 {
		t.Errorf("after 10 ticks position.X = %v, want 10", ch.Position.X)
	}
	if ch.WaypointIndex != 2 {
		t.Errorf("after 10 ticks waypoint index = %d, want 2", ch.WaypointIndex)
	}

	if !m.Advance(ch, r, 1.0) {
		t.Errorf("11th evaluation should report completed")
	}
}

func TestMoverNeverOvershoots(t *testing.T) {
	r := route.New(vmath.Vec3{X: 0, Y: 0, Z: 0}, vmath.Vec3{X: 3, Y: 4, Z: 0}, vmath.Vec3{X: 3, Y: 4, Z: 12})
	rng := rand.New(rand.NewSource(99))
	m := &Mover{ReachDistance: 0.2}
	ch := newTestChaser(r, 2.5)

	for i := 0; i < 500; i++ {
		dt := rng.Float64() * 0.1
		before := ch.Position
		if m.Advance(ch, r, dt) {
			return
		}
		step := vmath.V3Dist(before, ch.Position)
		if step > ch.Speed*dt+1e-9 {
			t.Fatalf("tick %d: step %.9f exceeds speed*dt %.9f", i, step, ch.Speed*dt)
		}
	}
}

func TestMoverMultiWaypointRoute(t *testing.T) {
	r := route.New(
		vmath.Vec3{X: 0, Y: 0, Z: 0},
		vmath.Vec3{X: 2, Y: 0, Z: 0},
		vmath.Vec3{X: 2, Y: 2, Z: 0},
		vmath.Vec3{X: 0, Y: 2, Z: 0},
	)
	m := &Mover{ReachDistance: 0.05}
	ch := newTestChaser(r, 1.0)

	completed := false
	for tick := 0; tick < 100; tick++ {
		if m.Advance(ch, r, 0.25) {
			completed = true
			break
		}
	}
	if !completed {
		t.Fatalf("chaser never completed a 6-unit route at speed 1")
	}
	if got := vmath.V3Dist(ch.Position, r.Waypoint(r.Len()-1)); got > 0.05 {
		t.Errorf("final position %.3f away from last waypoint", got)
	}
}

// TestMoverLargeReachDistance documents the waypoint-skip tolerance: a
// reach distance wider than the waypoint spacing consumes one waypoint
// per tick with almost no travel.
func TestMoverLargeReachDistance(t *testing.T) {
	r := route.New(
		vmath.Vec3{X: 0, Y: 0, Z: 0},
		vmath.Vec3{X: 0.5, Y: 0, Z: 0},
		vmath.Vec3{X: 1.0, Y: 0, Z: 0},
		vmath.Vec3{X: 1.5, Y: 0, Z: 0},
	)
	m := &Mover{ReachDistance: 2.0}
	ch := newTestChaser(r, 0.01)

	// Indexes 1..3 are each within reach immediately
	for tick := 1; tick <= 3; tick++ {
		if m.Advance(ch, r, 1.0) {
			t.Fatalf("completed on tick %d, want index walk first", tick)
		}
	}
	if !m.Advance(ch, r, 1.0) {
		t.Errorf("expected completion after index passed last waypoint")
	}
}

func TestMoverBounceNeverCompletes(t *testing.T) {
	r := route.New(vmath.Vec3{X: 0, Y: 0, Z: 0}, vmath.Vec3{X: 4, Y: 0, Z: 0})
	m := &Mover{ReachDistance: 0.1, Mode: TraverseBounce}
	ch := newTestChaser(r, 2.0)

	flips := 0
	forward := ch.Forward
	for tick := 0; tick < 1000; tick++ {
		if m.Advance(ch, r, 0.1) {
			t.Fatalf("bounce mode completed on tick %d", tick)
		}
		if ch.Forward != forward {
			flips++
			forward = ch.Forward
		}
		if ch.WaypointIndex < 0 || ch.WaypointIndex >= r.Len() {
			t.Fatalf("bounce index %d out of range", ch.WaypointIndex)
		}
		if ch.Position.X < -0.001 || ch.Position.X > 4.001 {
			t.Fatalf("bounce position %.3f left the segment", ch.Position.X)
		}
	}
	if flips < 2 {
		t.Errorf("expected repeated direction flips, got %d", flips)
	}
}

func TestMoverIgnoresRetiredChaser(t *testing.T) {
	r := route.New(vmath.Vec3{X: 0, Y: 0, Z: 0}, vmath.Vec3{X: 10, Y: 0, Z: 0})
	m := &Mover{ReachDistance: 0.1}
	ch := newTestChaser(r, 1.0)
	ch.State = component.ChaserCaught

	before := ch.Position
	if m.Advance(ch, r, 1.0) {
		t.Errorf("retired chaser reported completed")
	}
	if ch.Position != before {
		t.Errorf("retired chaser moved")
	}
}
