package render

import (
	"slices"

	"github.com/gdamore/tcell/v2"
)

// SystemRenderer draws one layer of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type layer struct {
	renderer SystemRenderer
	priority RenderPriority
}

// RenderOrchestrator composites layers into a buffer and pushes it to the screen
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers []layer // Ascending priority; equal priorities keep registration order
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen: screen,
		buffer: NewRenderBuffer(w, h),
	}
}

// NewBoardOrchestrator registers the standard board layers
func NewBoardOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&GridRenderer{}, PriorityBackground)
	o.Register(&SlotRenderer{}, PrioritySlots)
	o.Register(&PieceRenderer{}, PriorityPieces)
	o.Register(&ConfettiRenderer{}, PriorityEffects)
	o.Register(&StatusRenderer{}, PriorityUI)
	return o
}

// Register inserts r after every layer of equal or lower priority
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	at := slices.IndexFunc(o.layers, func(l layer) bool { return l.priority > priority })
	if at < 0 {
		at = len(o.layers)
	}
	o.layers = slices.Insert(o.layers, at, layer{renderer: r, priority: priority})
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame redraws every visible layer and shows the result
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear()
	for _, l := range o.layers {
		if vt, ok := l.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		l.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
	o.screen.Show()
}
