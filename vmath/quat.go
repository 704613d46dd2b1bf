package vmath

import "math"

// Quat is a unit quaternion rotation
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the no-rotation quaternion
var QuatIdentity = Quat{0, 0, 0, 1}

// QuatFromAxisAngle builds a rotation of deg degrees about axis
func QuatFromAxisAngle(axis Vec3F, deg float64) Quat {
	n := V3FNormalize(axis)
	half := deg * math.Pi / 360
	s := math.Sin(half)
	return Quat{n.X * s, n.Y * s, n.Z * s, math.Cos(half)}
}

// QuatFromYaw builds a rotation of deg degrees about world up
func QuatFromYaw(deg float64) Quat {
	return QuatFromAxisAngle(Up, deg)
}

// QMul composes rotations: the result applies b first, then a
func QMul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

func QDot(a, b Quat) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func QNormalize(q Quat) Quat {
	mag := math.Sqrt(QDot(q, q))
	if mag == 0 {
		return QuatIdentity
	}
	inv := 1.0 / mag
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// QSlerp interpolates spherically along the shortest arc, t clamped to [0,1]
func QSlerp(a, b Quat, t float64) Quat {
	t = Clamp01(t)
	cos := QDot(a, b)
	if cos < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		cos = -cos
	}

	// Nearly parallel: fall back to normalized lerp
	if cos > 0.9995 {
		return QNormalize(Quat{
			a.X + (b.X-a.X)*t,
			a.Y + (b.Y-a.Y)*t,
			a.Z + (b.Z-a.Z)*t,
			a.W + (b.W-a.W)*t,
		})
	}

	theta := math.Acos(cos)
	sin := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sin
	wb := math.Sin(t*theta) / sin
	return Quat{
		a.X*wa + b.X*wb,
		a.Y*wa + b.Y*wb,
		a.Z*wa + b.Z*wb,
		a.W*wa + b.W*wb,
	}
}

// QYawDegrees returns the rotation about world up in [0,360)
// Only meaningful for rotations about the up axis
func QYawDegrees(q Quat) float64 {
	deg := 2 * math.Atan2(q.Y, q.W) * 180 / math.Pi
	return NormalizeDegrees(deg)
}

// NormalizeDegrees wraps deg into [0,360)
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// Snap float noise at the wrap point
	if 360-deg < 1e-9 {
		deg = 0
	}
	return deg
}

// QApproxEqual reports whether a and b describe the same rotation within eps
func QApproxEqual(a, b Quat, eps float64) bool {
	return math.Abs(math.Abs(QDot(a, b))-1) <= eps
}
