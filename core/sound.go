package core

// SoundType identifies a one-shot sound clip
type SoundType int

const (
	SoundSnap   SoundType = iota // Piece locked into its slot
	SoundRotate                  // Piece rotated one step
	SoundWin                     // Puzzle completed
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{"snap", "rotate", "win"}

func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// ParseSoundType maps a clip name back to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}
