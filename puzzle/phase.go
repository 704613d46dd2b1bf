package puzzle

// Phase is the lifecycle stage of a puzzle
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseCelebrating
	PhaseComplete
)

var phaseNames = [...]string{"Playing", "Celebrating", "Complete"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

var validTransitions = map[Phase][]Phase{
	PhasePlaying:     {PhaseCelebrating},
	PhaseCelebrating: {PhaseComplete},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to Phase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
