package system

import (
	"github.com/lixenwraith/snatch/component"
	"github.com/lixenwraith/snatch/route"
	"github.com/lixenwraith/snatch/vmath"
)

// TraversalMode selects how a chaser behaves at the end of its route
type TraversalMode int

const (
	// TraverseForward completes the chaser once the waypoint index
	// passes the last waypoint. Default.
	TraverseForward TraversalMode = iota

	// TraverseBounce ping-pongs between route ends and never
	// completes on its own; such chasers only retire when caught or
	// when the round ends
	TraverseBounce
)

// Mover advances chasers along their routes with move-towards
// semantics: each tick steps at most speed*dt toward the current
// waypoint, clamped to never overshoot it.
type Mover struct {
	ReachDistance float64
	Mode          TraversalMode
}

// Advance evaluates one tick of dt seconds for ch on route r.
//
// Evaluation order matters for the caller's retire timing: the
// completion check runs before the movement step, so a chaser that
// passes the final waypoint on tick N reports completed on tick N+1.
// Waypoint advancement triggers when the post-step distance drops to
// ReachDistance or below; one index step per tick, so a ReachDistance
// larger than the waypoint spacing walks the route one waypoint per
// tick without moving far. Accepted behavior, not compensated.
func (m *Mover) Advance(ch *component.Chaser, r route.Route, dt float64) (completed bool) {
	if ch.State != component.ChaserActive {
		return false
	}

	if ch.Forward && ch.WaypointIndex >= r.Len() {
		return true
	}

	target := r.Waypoint(ch.WaypointIndex)
	ch.Position = vmath.V3MoveTowards(ch.Position, target, ch.Speed*dt)

	if vmath.V3Dist(ch.Position, target) <= m.ReachDistance {
		m.nextWaypoint(ch, r)
	}
	return false
}

// nextWaypoint advances the waypoint index in the travel direction.
// Forward mode lets the index run one past the end; the completion
// check above picks that up on the next evaluation. Bounce mode flips
// direction at both ends instead.
func (m *Mover) nextWaypoint(ch *component.Chaser, r route.Route) {
	if ch.Forward {
		if m.Mode == TraverseBounce && ch.WaypointIndex+1 >= r.Len() {
			ch.Forward = false
			ch.WaypointIndex--
			return
		}
		ch.WaypointIndex++
		return
	}

	if ch.WaypointIndex-1 < 0 {
		ch.Forward = true
		ch.WaypointIndex++
		return
	}
	ch.WaypointIndex--
}
