package input

// Action is the semantic result of one terminal event
type Action uint8

const (
	ActionNone Action = iota
	ActionSpin
	ActionReset
	ActionToggleMute
	ActionQuit
	ActionResize
)

func (a Action) String() string {
	switch a {
	case ActionSpin:
		return "spin"
	case ActionReset:
		return "reset"
	case ActionToggleMute:
		return "toggle_mute"
	case ActionQuit:
		return "quit"
	case ActionResize:
		return "resize"
	default:
		return "none"
	}
}
