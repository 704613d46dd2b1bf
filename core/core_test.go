package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSoundTypeNames(t *testing.T) {
	for st := SoundType(0); st < SoundTypeCount; st++ {
		parsed, ok := ParseSoundType(st.String())
		assert.True(t, ok, st.String())
		assert.Equal(t, st, parsed)
	}
	assert.Equal(t, "unknown", SoundType(42).String())

	_, ok := ParseSoundType("kazoo")
	assert.False(t, ok)
}

func TestManualClockAdvance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := NewManualClock(start)
	m.Advance(300 * time.Millisecond)
	assert.Equal(t, start.Add(300*time.Millisecond), m.Now())

	m.Set(start)
	assert.Equal(t, start, m.Now())
}
