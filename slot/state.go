// Package slot implements the three-reel machine: rules, payout and the spin lifecycle
package slot

// Phase is the coarse lifecycle position of a machine
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseSpinning
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSpinning:
		return "spinning"
	case PhaseGameOver:
		return "game_over"
	default:
		return "idle"
	}
}

// State is the observable game state read by the presentation layer
type State struct {
	Credits     int
	Reels       Reels
	IsSpinning  bool
	WinAmount   int  // payout of the last resolved spin, cleared when the next spin starts
	ShowJackpot bool // last resolved spin was a jackpot
	GameOver    bool // credits ran out, only Reset leaves this state
}

// InitialState is the state of a fresh or reset game
func InitialState(rules Rules) State {
	return State{
		Credits: rules.InitialCredits,
		Reels:   InitialReels(),
	}
}

// Phase derives the lifecycle phase from the flags
func (s State) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseGameOver
	case s.IsSpinning:
		return PhaseSpinning
	default:
		return PhaseIdle
	}
}
