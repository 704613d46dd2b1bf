package render

import (
	"github.com/lixenwraith/puzzle-snap/engine"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Board  engine.Snapshot
	Status []string // HUD lines, drawn top-left
	Paused bool
	Muted  bool
}

// project maps a world point to the nearest cell
func (ctx RenderContext) project(x, z float64) (int, int) {
	sx, sy := ctx.Board.Camera.WorldToScreen(vec(x, z))
	return roundCell(sx), roundCell(sy)
}

// extent returns the cell span of a half-extent along each screen axis
func (ctx RenderContext) extent(halfX, halfZ float64) (int, int) {
	cam := ctx.Board.Camera
	return max(roundCell(halfX*cam.ColsPerUnit), 1), max(roundCell(halfZ*cam.RowsPerUnit), 1)
}
