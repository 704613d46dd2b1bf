package vmath

import "math"

// Ray is a half-line from Origin along Dir
type Ray struct {
	Origin Vec3F
	Dir    Vec3F
}

// RayPoint returns the point at distance d along r
func RayPoint(r Ray, d float64) Vec3F {
	return V3FAdd(r.Origin, V3FScale(r.Dir, d))
}

// Plane is the set of points p with Dot(Normal, p) == Distance
type Plane struct {
	Normal   Vec3F
	Distance float64
}

// GroundPlane is the board surface at y=0
var GroundPlane = Plane{Normal: Up}

// RayPlane intersects r with p
// Returns false when the ray is parallel to the plane or points away from it
func RayPlane(r Ray, p Plane) (float64, bool) {
	denom := V3FDot(p.Normal, r.Dir)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	d := (p.Distance - V3FDot(p.Normal, r.Origin)) / denom
	if d < 0 {
		return 0, false
	}
	return d, true
}

// AABB is an axis-aligned box given by its center and half extents
type AABB struct {
	Center Vec3F
	Half   Vec3F
}

// RayAABB returns the entry distance of r into b using the slab method
func RayAABB(r Ray, b AABB) (float64, bool) {
	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Dir.X, r.Dir.Y, r.Dir.Z}
	lo := [3]float64{b.Center.X - b.Half.X, b.Center.Y - b.Half.Y, b.Center.Z - b.Half.Z}
	hi := [3]float64{b.Center.X + b.Half.X, b.Center.Y + b.Half.Y, b.Center.Z + b.Half.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < lo[i] || origin[i] > hi[i] {
				return 0, false
			}
			continue
		}
		inv := 1.0 / dir[i]
		t1 := (lo[i] - origin[i]) * inv
		t2 := (hi[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		return 0, true // Origin inside box
	}
	return tMin, true
}
