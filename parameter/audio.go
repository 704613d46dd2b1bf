package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// DefaultSFXVolume is the one-shot playback volume when callers pass none
	DefaultSFXVolume = 1.0
)

// Snap Sound
const (
	SnapSoundDuration = 90 * time.Millisecond
	SnapSoundAttack   = 2 * time.Millisecond
	SnapSoundRelease  = 60 * time.Millisecond
)

// Rotate Sound
const (
	RotateSoundDuration = 70 * time.Millisecond
	RotateSoundAttack   = 5 * time.Millisecond
	RotateSoundRelease  = 30 * time.Millisecond
)

// Win Sound (three-note arpeggio)
const (
	WinSoundNoteDuration  = 140 * time.Millisecond
	WinSoundFinalDuration = 420 * time.Millisecond
	WinSoundAttack        = 5 * time.Millisecond
	WinSoundRelease       = 80 * time.Millisecond
	WinSoundFinalRelease  = 300 * time.Millisecond
)
