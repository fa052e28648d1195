package picker

// Phase is a step of the spin state machine.
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseValidating
	PhasePreSpinHook
	PhaseShuffling
	PhaseRendering
	PhaseAnimating
	PhaseSettling
	PhasePostSpinHook
	PhaseAborted
)

var phaseNames = [...]string{
	PhaseIdle:         "idle",
	PhaseValidating:   "validating",
	PhasePreSpinHook:  "pre_spin_hook",
	PhaseShuffling:    "shuffling",
	PhaseRendering:    "rendering",
	PhaseAnimating:    "animating",
	PhaseSettling:     "settling",
	PhasePostSpinHook: "post_spin_hook",
	PhaseAborted:      "aborted",
}

func (ph Phase) String() string {
	if ph < 0 || int(ph) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[ph]
}
