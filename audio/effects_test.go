package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/puzzle-snap/core"
)

// drain streams s to completion and returns the sample count
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never drained")
	return 0
}

// ones is an endless constant +1 source
func ones() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
}

func TestToneRangeAndLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		s := NewTone(wave, 440, 10*time.Millisecond, rate)

		buf := make([][2]float64, 64)
		n, ok := s.Stream(buf)
		require.True(t, ok)
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, math.Abs(buf[i][0]), 1.0+1e-9, "wave %d sample %d", wave, i)
		}
		assert.Equal(t, rate.N(10*time.Millisecond), n+drain(t, s), "wave %d", wave)
	}
}

func TestToneAboveNyquistIsSilent(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewTone(WaveSine, 6000, 5*time.Millisecond, rate)

	buf := make([][2]float64, 16)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		assert.Zero(t, buf[i][0])
	}
}

func TestRampShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	r := NewRamp(ones(), 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	buf := make([][2]float64, 200)
	n, ok := r.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 100, n)

	assert.Zero(t, buf[0][0])
	for i := 1; i < 10; i++ {
		assert.Greater(t, buf[i][0], buf[i-1][0], "attack at %d", i)
	}
	assert.Equal(t, 1.0, buf[50][0])
	for i := 81; i < 100; i++ {
		assert.Less(t, buf[i][0], buf[i-1][0], "release at %d", i)
	}

	n, ok = r.Stream(buf)
	assert.Zero(t, n)
	assert.False(t, ok)
}

func TestRampLongerThanLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	r := NewRamp(ones(), 10*time.Millisecond, 8*time.Millisecond, 8*time.Millisecond, rate)
	assert.Equal(t, 10, drain(t, r))
}

// TestClipsDrain verifies each clip is finite and non-silent
func TestClipsDrain(t *testing.T) {
	cfg := DefaultConfig()
	for st, clip := range DefaultClips() {
		s := clip(cfg, 1.0)
		if s == nil {
			t.Fatalf("%s: nil streamer", st)
		}

		buf := make([][2]float64, 4096)
		n, _ := s.Stream(buf)
		peak := 0.0
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		if peak == 0 {
			t.Errorf("%s: clip is silent", st)
		}
		drain(t, s)
	}
}

// TestNewVolumeZero verifies zero volume is silent rather than -Inf gain
func TestNewVolumeZero(t *testing.T) {
	v := newVolume(beep.Take(441, ones()), 0)

	samples := make([][2]float64, 32)
	n, _ := v.Stream(samples)
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", samples[i][0], i)
		}
	}
}

func TestDefaultClipsCoverEverySound(t *testing.T) {
	clips := DefaultClips()
	for st := core.SoundType(0); st < core.SoundTypeCount; st++ {
		if clips[st] == nil {
			t.Errorf("No clip for %s", st)
		}
	}
}
