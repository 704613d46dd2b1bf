package engine

import (
	"github.com/lixenwraith/puzzle-snap/parameter"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// Camera is an orthographic top-down view of the board
// Screen columns map to world X and rows to world Z, centered on the viewport
type Camera struct {
	Width, Height int
	ColsPerUnit   float64
	RowsPerUnit   float64
	EyeHeight     float64
}

// NewCamera creates a camera for a viewport of w x h cells
func NewCamera(w, h int) *Camera {
	return &Camera{
		Width:       w,
		Height:      h,
		ColsPerUnit: parameter.CameraColsPerUnit,
		RowsPerUnit: parameter.CameraRowsPerUnit,
		EyeHeight:   parameter.CameraEyeHeight,
	}
}

// Resize recenters the view on a new viewport size
func (c *Camera) Resize(w, h int) {
	c.Width, c.Height = w, h
}

// ScreenToWorld returns the ground-plane point under cell (x, y)
func (c *Camera) ScreenToWorld(x, y float64) vmath.Vec3F {
	return vmath.Vec3F{
		X: (x + 0.5 - float64(c.Width)/2) / c.ColsPerUnit,
		Z: (y + 0.5 - float64(c.Height)/2) / c.RowsPerUnit,
	}
}

// WorldToScreen returns the fractional cell position of a world point
func (c *Camera) WorldToScreen(p vmath.Vec3F) (x, y float64) {
	x = p.X*c.ColsPerUnit + float64(c.Width)/2 - 0.5
	y = p.Z*c.RowsPerUnit + float64(c.Height)/2 - 0.5
	return x, y
}

// ScreenRay returns the downward pick ray through cell (x, y)
func (c *Camera) ScreenRay(x, y float64) vmath.Ray {
	return vmath.Ray{
		Origin: vmath.V3FWithY(c.ScreenToWorld(x, y), c.EyeHeight),
		Dir:    vmath.Vec3F{Y: -1},
	}
}
