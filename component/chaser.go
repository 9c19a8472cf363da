package component

import (
	"github.com/lixenwraith/snatch/vmath"
)

// ChaserState is the lifecycle state of a chaser.
// Transitions are one-way: Active -> Completed or Active -> Caught.
type ChaserState int

const (
	ChaserActive ChaserState = iota
	ChaserCompleted
	ChaserCaught
)

func (s ChaserState) String() string {
	switch s {
	case ChaserActive:
		return "active"
	case ChaserCompleted:
		return "completed"
	case ChaserCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// Chaser is a moving target owned by the round. It holds its own
// movement state plus the index of its immutable route; the round
// mutates it directly, no component lookup involved.
type Chaser struct {
	// ID is unique within a game session, assigned at spawn
	ID int

	// RouteIndex identifies the assigned route in the registered set
	RouteIndex int

	// WaypointIndex is the waypoint currently being approached
	WaypointIndex int

	// Position is the current world position
	Position vmath.Vec3

	// Speed in world units per second, sampled once at spawn
	Speed float64

	// Forward is the travel direction; only flips in bounce mode
	Forward bool

	// State is the lifecycle state
	State ChaserState
}
