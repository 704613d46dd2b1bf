package engine

import (
	"math"
	"testing"

	"github.com/lixenwraith/puzzle-snap/vmath"
)

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(80, 24)

	points := []vmath.Vec3F{{}, {X: 3, Z: 2}, {X: -4.25, Z: -1.5}}
	for _, p := range points {
		x, y := c.WorldToScreen(p)
		back := c.ScreenToWorld(x, y)
		if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Z-p.Z) > 1e-9 {
			t.Errorf("round trip %+v: got %+v", p, back)
		}

		ray := c.ScreenRay(x, y)
		d, ok := vmath.RayPlane(ray, vmath.GroundPlane)
		if !ok {
			t.Fatalf("ray through %+v misses the ground", p)
		}
		hit := vmath.RayPoint(ray, d)
		if math.Abs(hit.X-p.X) > 1e-9 || math.Abs(hit.Z-p.Z) > 1e-9 || math.Abs(hit.Y) > 1e-9 {
			t.Errorf("ground hit for %+v: got %+v", p, hit)
		}
	}
}

func TestCameraCentersOnResize(t *testing.T) {
	c := NewCamera(80, 24)
	c.Resize(120, 40)

	x, y := c.WorldToScreen(vmath.Vec3F{})
	if x != 59.5 || y != 19.5 {
		t.Errorf("origin after resize: got (%v, %v)", x, y)
	}
}
