package audio

import "errors"

// Sentinel errors
var (
	ErrUnknownClip    = errors.New("unknown sound clip")
	ErrAlreadyRunning = errors.New("audio engine already running")
)
