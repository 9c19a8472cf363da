package vmath

import (
	"math"
)

// Vec3 is a float64 3D vector for world-space positions and steps
type Vec3 struct {
	X, Y, Z float64
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3MagSq(v Vec3) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float64 {
	return math.Sqrt(V3MagSq(v))
}

func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1.0 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3Dist returns the Euclidean distance between two points
func V3Dist(a, b Vec3) float64 {
	return V3Mag(V3Sub(b, a))
}

// V3DistSq avoids the sqrt for radius comparisons in hot paths
func V3DistSq(a, b Vec3) float64 {
	return V3MagSq(V3Sub(b, a))
}

// V3MoveTowards steps from current toward target by at most maxDelta.
// The step is clamped so the result never travels past target.
func V3MoveTowards(current, target Vec3, maxDelta float64) Vec3 {
	if maxDelta <= 0 {
		return current
	}
	delta := V3Sub(target, current)
	dist := V3Mag(delta)
	if dist == 0 || dist <= maxDelta {
		return target
	}
	inv := maxDelta / dist
	return Vec3{
		current.X + delta.X*inv,
		current.Y + delta.Y*inv,
		current.Z + delta.Z*inv,
	}
}
