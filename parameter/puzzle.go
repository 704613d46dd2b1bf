package parameter

import "time"

// Celebration
const (
	// CelebrationScale is the pulse multiplier applied to each piece in turn
	CelebrationScale = 1.1

	// CelebrationStepDelay is how long each piece stays pulsed
	CelebrationStepDelay = 50 * time.Millisecond

	// WinEffectName is the default effect spawned on completion
	WinEffectName = "confetti"

	// WinEffectTTL is how long a spawned effect stays alive
	WinEffectTTL = 2 * time.Second
)
