package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func phases(evs []PointerEvent) []Phase {
	out := make([]Phase, len(evs))
	for i, e := range evs {
		out[i] = e.Phase
	}
	return out
}

func TestTranslatorDragSequence(t *testing.T) {
	tr := NewTranslator(false)

	assert.Empty(t, tr.Translate(mouse(1, 1, tcell.ButtonNone)), "hover emits nothing")

	began := tr.Translate(mouse(2, 3, tcell.Button1))
	require.Equal(t, []Phase{PhaseBegan}, phases(began))
	assert.Equal(t, 2.0, began[0].X)
	assert.Equal(t, 3.0, began[0].Y)
	assert.Equal(t, SourceMouse, began[0].Source)

	assert.Empty(t, tr.Translate(mouse(2, 3, tcell.Button1)), "held without motion")
	assert.Equal(t, []Phase{PhaseMoved}, phases(tr.Translate(mouse(4, 3, tcell.Button1))))
	assert.Equal(t, []Phase{PhaseEnded}, phases(tr.Translate(mouse(4, 3, tcell.ButtonNone))))
}

func TestTranslatorSecondaryAndTouch(t *testing.T) {
	tr := NewTranslator(true)

	sec := tr.Translate(mouse(5, 5, tcell.Button2))
	require.Equal(t, []Phase{PhaseSecondary}, phases(sec))
	assert.Equal(t, SourceMouse, sec[0].Source, "secondary is always a mouse action")
	assert.Empty(t, tr.Translate(mouse(5, 5, tcell.Button2)), "held secondary does not repeat")

	began := tr.Translate(mouse(5, 5, tcell.Button1))
	require.Len(t, began, 1)
	assert.Equal(t, SourceTouch, began[0].Source)
}

func TestTranslatorCancel(t *testing.T) {
	tr := NewTranslator(false)
	_, ok := tr.Cancel()
	assert.False(t, ok)

	tr.Translate(mouse(1, 1, tcell.Button1))
	ev, ok := tr.Cancel()
	require.True(t, ok)
	assert.True(t, ev.Ends())
	assert.Empty(t, tr.Translate(mouse(1, 1, tcell.ButtonNone)), "release after cancel is swallowed")
}
