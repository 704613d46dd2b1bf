package render

import "github.com/gdamore/tcell/v2"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// FromUnit converts normalized [0,1] channels
func FromUnit(r, g, b float64) RGB {
	return RGB{R: clamp(r * 255), G: clamp(g * 255), B: clamp(b * 255)}
}

// Tcell converts to a true-color tcell color
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func Blend(dst, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(src.R)*alpha + float64(dst.R)*inv),
		G: clamp(float64(src.G)*alpha + float64(dst.G)*inv),
		B: clamp(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Scale multiplies every channel, clamping at 255
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}

// clamp converts float to uint8, rounding to nearest
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}
