package system

import (
	"github.com/lixenwraith/snatch/vmath"
)

// WithinCaptureRadius reports whether the player point is close enough
// to retire a chaser at pos. Pure function, compared on squared
// distance to skip the sqrt.
func WithinCaptureRadius(player, pos vmath.Vec3, radius float64) bool {
	return vmath.V3DistSq(player, pos) <= radius*radius
}
