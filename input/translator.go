package input

import (
	"github.com/gdamore/tcell/v2"
)

// Translator turns tcell mouse reports into pointer events
// tcell reports button state, not transitions; edges are derived from the previous mask
type Translator struct {
	prev          tcell.ButtonMask
	source        Source
	lastX, lastY  int
	primaryActive bool
}

// NewTranslator creates a translator; touch=true reports the primary button as a touch pointer
func NewTranslator(touch bool) *Translator {
	src := SourceMouse
	if touch {
		src = SourceTouch
	}
	return &Translator{source: src}
}

// Translate converts one mouse event into zero or more pointer events
func (t *Translator) Translate(ev *tcell.EventMouse) []PointerEvent {
	x, y := ev.Position()
	when := ev.When()
	buttons := ev.Buttons()
	defer func() {
		t.prev = buttons
		t.lastX, t.lastY = x, y
	}()

	mk := func(phase Phase) PointerEvent {
		return PointerEvent{Phase: phase, Source: t.source, X: float64(x), Y: float64(y), When: when}
	}

	var out []PointerEvent

	primaryDown := buttons&tcell.Button1 != 0
	primaryWas := t.prev&tcell.Button1 != 0
	switch {
	case primaryDown && !primaryWas:
		t.primaryActive = true
		out = append(out, mk(PhaseBegan))
	case primaryDown && primaryWas:
		if x != t.lastX || y != t.lastY {
			out = append(out, mk(PhaseMoved))
		}
	case !primaryDown && primaryWas && t.primaryActive:
		t.primaryActive = false
		out = append(out, mk(PhaseEnded))
	}

	secondaryDown := buttons&tcell.Button2 != 0
	secondaryWas := t.prev&tcell.Button2 != 0
	if secondaryDown && !secondaryWas {
		sec := mk(PhaseSecondary)
		sec.Source = SourceMouse
		out = append(out, sec)
	}

	return out
}

// Cancel ends an in-progress primary drag, used when focus is lost
func (t *Translator) Cancel() (PointerEvent, bool) {
	if !t.primaryActive {
		return PointerEvent{}, false
	}
	t.primaryActive = false
	t.prev &^= tcell.Button1
	return PointerEvent{Phase: PhaseCanceled, Source: t.source, X: float64(t.lastX), Y: float64(t.lastY)}, true
}
