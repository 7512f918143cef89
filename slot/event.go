package slot

// EventType identifies a machine notification
type EventType uint8

const (
	EventSpinStarted EventType = iota
	EventSpinResolved
	EventGameOver
	EventReset
)

func (t EventType) String() string {
	switch t {
	case EventSpinStarted:
		return "spin_started"
	case EventSpinResolved:
		return "spin_resolved"
	case EventGameOver:
		return "game_over"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after the machine state is updated
// Outcome is only meaningful for EventSpinResolved
type Event struct {
	Type    EventType
	State   State
	Outcome Outcome
}
