package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/puzzle-snap/core"
	"github.com/lixenwraith/puzzle-snap/parameter"
)

// WaveType selects the generator behind a voice
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// voice is one shaped tone inside a clip
type voice struct {
	wave    WaveType
	freq    float64
	length  time.Duration
	attack  time.Duration
	release time.Duration
	gain    float64
}

// stream renders v at rate as a finite streamer
func (v voice) stream(rate beep.SampleRate) beep.Streamer {
	src := NewTone(v.wave, v.freq, v.length, rate)
	return newVolume(NewRamp(src, v.length, v.attack, v.release, rate), v.gain)
}

// NewTone returns length worth of wave at freq
// Frequencies a generator rejects (at or above Nyquist) yield silence
func NewTone(wave WaveType, freq float64, length time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(length)

	var (
		gen beep.Streamer
		err error
	)
	switch wave {
	case WaveSine:
		gen, err = generators.SineTone(rate, freq)
	case WaveSquare:
		gen, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		gen, err = generators.SawtoothTone(rate, freq)
	case WaveNoise:
		gen = beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
			for i := range samples {
				v := rand.Float64()*2 - 1
				samples[i] = [2]float64{v, v}
			}
			return len(samples), true
		})
	}
	if err != nil || gen == nil {
		return beep.Silence(n)
	}
	return beep.Take(n, gen)
}

// ramp scales a stream by a linear fade-in and fade-out
type ramp struct {
	src   beep.Streamer
	pos   int
	total int
	in    int
	out   int
}

// NewRamp fades s in over attack and out over release within length
// Output stops at length even if s continues
func NewRamp(s beep.Streamer, length, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(length)
	in, out := rate.N(attack), rate.N(release)
	if in+out > total {
		in = min(in, total)
		out = total - in
	}
	return &ramp{src: s, total: total, in: in, out: out}
}

// gain returns the multiplier at sample i
func (r *ramp) gain(i int) float64 {
	switch {
	case i < r.in:
		return float64(i) / float64(r.in)
	case r.out > 0 && i >= r.total-r.out:
		return math.Max(0, float64(r.total-i)/float64(r.out))
	default:
		return 1
	}
}

func (r *ramp) Stream(samples [][2]float64) (int, bool) {
	left := r.total - r.pos
	if left <= 0 {
		return 0, false
	}
	if len(samples) > left {
		samples = samples[:left]
	}

	n, ok := r.src.Stream(samples)
	for i := range samples[:n] {
		g := r.gain(r.pos + i)
		samples[i][0] *= g
		samples[i][1] *= g
	}
	r.pos += n
	return n, ok || n > 0
}

func (r *ramp) Err() error { return r.src.Err() }

// newVolume wraps s with a linear gain
// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateSnapSound generates a short wooden click with a low body
func CreateSnapSound(cfg *Config, volume float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d, a, r := parameter.SnapSoundDuration, parameter.SnapSoundAttack, parameter.SnapSoundRelease

	mixed := beep.Mix(
		voice{wave: WaveNoise, length: d, attack: a, release: r, gain: 0.35}.stream(rate),
		voice{wave: WaveSine, freq: 220, length: d, attack: a, release: r, gain: 0.65}.stream(rate),
	)
	return newVolume(mixed, cfg.EffectVolumes[core.SoundSnap]*cfg.MasterVolume*volume)
}

// CreateRotateSound generates a quick square tick
func CreateRotateSound(cfg *Config, volume float64) beep.Streamer {
	tick := voice{
		wave:    WaveSquare,
		freq:    660,
		length:  parameter.RotateSoundDuration,
		attack:  parameter.RotateSoundAttack,
		release: parameter.RotateSoundRelease,
		gain:    0.4,
	}
	return newVolume(tick.stream(beep.SampleRate(cfg.SampleRate)), cfg.EffectVolumes[core.SoundRotate]*cfg.MasterVolume*volume)
}

// winNotes is C5 E5 G5 then a held C6
var winNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}

// CreateWinSound generates a C-E-G arpeggio ending on a held C
func CreateWinSound(cfg *Config, volume float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(winNotes))
	for i, f := range winNotes {
		v := voice{
			wave:    WaveSine,
			freq:    f,
			length:  parameter.WinSoundNoteDuration,
			attack:  parameter.WinSoundAttack,
			release: parameter.WinSoundRelease,
			gain:    1,
		}
		if i == len(winNotes)-1 {
			v.length, v.release = parameter.WinSoundFinalDuration, parameter.WinSoundFinalRelease
		}
		notes = append(notes, v.stream(rate))
	}
	return newVolume(beep.Seq(notes...), cfg.EffectVolumes[core.SoundWin]*cfg.MasterVolume*volume)
}

// ClipFunc builds a fresh streamer for one playback
type ClipFunc func(cfg *Config, volume float64) beep.Streamer

// DefaultClips returns the synthesized clip for every sound type
func DefaultClips() map[core.SoundType]ClipFunc {
	return map[core.SoundType]ClipFunc{
		core.SoundSnap:   CreateSnapSound,
		core.SoundRotate: CreateRotateSound,
		core.SoundWin:    CreateWinSound,
	}
}
