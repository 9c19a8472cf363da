package route

import (
	"math/rand"

	"github.com/lixenwraith/snatch/vmath"
)

// Route is an ordered sequence of waypoints a chaser runs along.
// Immutable once registered; identity is the index in the registered set.
type Route struct {
	waypoints []vmath.Vec3
}

// New copies the given waypoints into an immutable Route
func New(waypoints ...vmath.Vec3) Route {
	wp := make([]vmath.Vec3, len(waypoints))
	copy(wp, waypoints)
	return Route{waypoints: wp}
}

// Len returns the number of waypoints
func (r Route) Len() int {
	return len(r.waypoints)
}

// Waypoint returns the waypoint at index i
func (r Route) Waypoint(i int) vmath.Vec3 {
	return r.waypoints[i]
}

// Start returns the first waypoint, where a chaser is placed at spawn
func (r Route) Start() vmath.Vec3 {
	return r.waypoints[0]
}

// Selector picks routes uniformly at random from a registered set.
// The set must be non-empty; Config.Validate enforces that before a
// Selector is ever constructed.
type Selector struct {
	routes []Route
	rng    *rand.Rand
}

// NewSelector creates a selector over the given routes
func NewSelector(routes []Route, rng *rand.Rand) *Selector {
	return &Selector{routes: routes, rng: rng}
}

// Pick returns a uniformly chosen route index and the route itself
func (s *Selector) Pick() (int, Route) {
	i := s.rng.Intn(len(s.routes))
	return i, s.routes[i]
}
