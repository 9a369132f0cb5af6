package tracker

// State of one tracked operation. A tracker only moves forward through the
// ordering below, or into StateFailed from any non-terminal state. Once
// terminal, the state never changes again.
type State int

const (
	// StateSubmitted is the initial state of a priority operation: the
	// outer-chain transaction exists but has not been mined, so the serial
	// id is still unknown.
	StateSubmitted State = iota

	// StateSent is the initial state of a rollup-native transaction.
	StateSent

	// StateMined means the outer-chain transaction was included and the
	// priority operation serial id extracted from its receipt.
	StateMined

	StateCommitted
	StateVerified
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateSubmitted:
		return "submitted"
	case StateSent:
		return "sent"
	case StateMined:
		return "mined"
	case StateCommitted:
		return "committed"
	case StateVerified:
		return "verified"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}
