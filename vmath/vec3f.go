package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector in world space
// Y is up; the board lies on the X/Z plane
type Vec3F struct {
	X, Y, Z float64
}

// Up is the world up axis
var Up = Vec3F{0, 1, 0}

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FLerp interpolates linearly, t clamped to [0,1]
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	t = Clamp01(t)
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FWithY returns v with its height replaced
func V3FWithY(v Vec3F, y float64) Vec3F {
	return Vec3F{v.X, y, v.Z}
}

// PlanarDistance is the distance between a and b projected onto the X/Z plane
func PlanarDistance(a, b Vec3F) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return math.Sqrt(dx*dx + dz*dz)
}

// Clamp01 clamps t to [0,1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
