package render

import (
	"fmt"
	"math"
	"slices"

	"github.com/lixenwraith/puzzle-snap/engine"
	"github.com/lixenwraith/puzzle-snap/parameter"
	"github.com/lixenwraith/puzzle-snap/puzzle"
	"github.com/lixenwraith/puzzle-snap/vmath"
)

// yawArrows indexes 45 degree sectors; yaw 0 faces +Z, which is screen down
var yawArrows = []rune{'↓', '↘', '→', '↗', '↑', '↖', '←', '↙'}

// YawArrow returns the arrow for a yaw in degrees
func YawArrow(yaw float64) rune {
	i := int(math.Round(yaw/45)) % len(yawArrows)
	if i < 0 {
		i += len(yawArrows)
	}
	return yawArrows[i]
}

func vec(x, z float64) vmath.Vec3F {
	return vmath.Vec3F{X: x, Z: z}
}

func roundCell(v float64) int {
	return int(math.Round(v))
}

// GridRenderer dots every world unit on the board
type GridRenderer struct {
	Hidden bool
}

func (r *GridRenderer) IsVisible() bool { return !r.Hidden }

func (r *GridRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	cam := ctx.Board.Camera
	lo := cam.ScreenToWorld(0, 0)
	hi := cam.ScreenToWorld(float64(buf.Width()-1), float64(buf.Height()-1))

	for z := math.Ceil(lo.Z); z <= hi.Z; z++ {
		for x := math.Ceil(lo.X); x <= hi.X; x++ {
			cx, cy := ctx.project(x, z)
			buf.SetFgOnly(cx, cy, '·', RgbGrid)
		}
	}
}

// SlotRenderer draws the visible slots as outlined targets
type SlotRenderer struct{}

func (r *SlotRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for _, s := range ctx.Board.Slots {
		if !s.Visible {
			continue
		}

		cx, cy := ctx.project(s.Position.X, s.Position.Z)
		hw, hh := ctx.extent(parameter.PieceHalfWidth, parameter.PieceHalfDepth)

		fill, alpha := RgbSlot, 0.35
		if s.Highlighted {
			fill, alpha = RgbSlotHighlight, 0.6
		}
		for y := cy - hh; y <= cy+hh; y++ {
			for x := cx - hw; x <= cx+hw; x++ {
				buf.BlendBg(x, y, fill, alpha)
			}
		}
		drawFrame(buf, cx-hw, cy-hh, cx+hw, cy+hh, RgbSlotMarker)
		buf.SetFgOnly(cx, cy, YawArrow(s.Yaw), RgbSlotMarker)
	}
}

// PieceRenderer draws pieces, lifted ones last so they cover the rest
type PieceRenderer struct{}

func (r *PieceRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	pieces := slices.Clone(ctx.Board.Pieces)
	slices.SortStableFunc(pieces, func(a, b engine.PieceView) int {
		switch {
		case a.Position.Y < b.Position.Y:
			return -1
		case a.Position.Y > b.Position.Y:
			return 1
		}
		return 0
	})

	for _, p := range pieces {
		cx, cy := ctx.project(p.Position.X, p.Position.Z)
		hw, hh := ctx.extent(p.Bounds.Half.X, p.Bounds.Half.Z)

		fill := PieceColor(uint64(p.ID))
		edge := RgbPieceEdge
		switch {
		case p.Locked:
			fill = Blend(fill, RgbPieceLocked, 0.3)
		case p.State == "Dragging":
			fill = Scale(fill, 1.15)
			edge = RgbPieceLifted
		}
		if p.Scale > 1.05 {
			fill = Blend(fill, RgbPieceLifted, 0.4)
		}

		for y := cy - hh; y <= cy+hh; y++ {
			for x := cx - hw; x <= cx+hw; x++ {
				buf.SetWithBg(x, y, ' ', edge, fill)
			}
		}
		drawFrame(buf, cx-hw, cy-hh, cx+hw, cy+hh, edge)
		buf.SetFgOnly(cx, cy, YawArrow(p.Yaw), edge)
		buf.SetFgOnly(cx-hw+1, cy-hh+1, rune('0'+p.ID%10), edge)
	}
}

// drawFrame outlines a cell rectangle, keeping the backgrounds underneath
func drawFrame(buf *RenderBuffer, x0, y0, x1, y1 int, fg RGB) {
	for x := x0 + 1; x < x1; x++ {
		buf.SetFgOnly(x, y0, '─', fg)
		buf.SetFgOnly(x, y1, '─', fg)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.SetFgOnly(x0, y, '│', fg)
		buf.SetFgOnly(x1, y, '│', fg)
	}
	buf.SetFgOnly(x0, y0, '┌', fg)
	buf.SetFgOnly(x1, y0, '┐', fg)
	buf.SetFgOnly(x0, y1, '└', fg)
	buf.SetFgOnly(x1, y1, '┘', fg)
}

// ConfettiRenderer bursts particles outward from each active effect
type ConfettiRenderer struct {
	Particles int
	Radius    float64 // World units reached at the end of the effect
}

var confettiRunes = []rune{'*', '+', '•', '·'}

func (r *ConfettiRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	n := r.Particles
	if n <= 0 {
		n = 24
	}
	radius := r.Radius
	if radius <= 0 {
		radius = 3
	}

	for _, e := range ctx.Board.Effects {
		t := e.Progress()
		if t >= 1 {
			continue
		}
		glyph := confettiRunes[min(int(t*float64(len(confettiRunes))), len(confettiRunes)-1)]
		for i := 0; i < n; i++ {
			angle := float64(i)*2*math.Pi/float64(n) + float64(e.Serial)
			// Alternate rings so the burst is not a perfect circle
			dist := radius * t * (0.6 + 0.4*float64(i%3)/2)
			x := e.At.X + math.Cos(angle)*dist
			z := e.At.Z + math.Sin(angle)*dist
			cx, cy := ctx.project(x, z)
			buf.SetFgOnly(cx, cy, glyph, confettiPalette[(i+int(e.Serial))%len(confettiPalette)])
		}
	}
}

// StatusRenderer draws the HUD lines, the progress footer and the completion banner
type StatusRenderer struct{}

func (r *StatusRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	for i, line := range ctx.Status {
		if i >= buf.Height()-1 {
			break
		}
		buf.Text(0, i, " "+line+" ", RgbStatusText, RgbStatusBg, false)
	}

	footer := fmt.Sprintf(" %s  locked %d/%d ", ctx.Board.Phase, ctx.Board.Locked, ctx.Board.Total)
	if ctx.Paused {
		footer += " PAUSED "
	}
	if ctx.Muted {
		footer += " MUTED "
	}
	y := buf.Height() - 1
	for x := 0; x < buf.Width(); x++ {
		buf.SetWithBg(x, y, ' ', RgbStatusText, RgbStatusBg)
	}
	buf.Text(0, y, footer, RgbStatusText, RgbStatusBg, true)

	if ctx.Board.PuzzlePhase() == puzzle.PhaseComplete {
		banner := " PUZZLE COMPLETE "
		x := (buf.Width() - len([]rune(banner))) / 2
		buf.Text(x, buf.Height()/2, banner, RgbBackground, RgbBanner, true)
	}
}
