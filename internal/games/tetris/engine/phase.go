package engine

// Phase is a stage of the per-piece lifecycle.
type Phase int

const (
	Noop Phase = iota
	Generation
	Falling
	Lock
	Pattern
	Animate
	Eliminate
	Completion
)

func (p Phase) String() string {
	switch p {
	case Noop:
		return "Noop"
	case Generation:
		return "Generation"
	case Falling:
		return "Falling"
	case Lock:
		return "Lock"
	case Pattern:
		return "Pattern"
	case Animate:
		return "Animate"
	case Eliminate:
		return "Eliminate"
	case Completion:
		return "Completion"
	default:
		return "Unknown"
	}
}
