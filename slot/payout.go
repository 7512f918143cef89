package slot

import (
	"time"

	"github.com/lixenwraith/lucky-slots/constants"
)

// Rules are the tunable numbers of the machine
type Rules struct {
	InitialCredits    int
	SpinCost          int
	SymbolCount       int
	JackpotMultiplier int
	PairMultiplier    int
	SpinDuration      time.Duration
}

// DefaultRules returns the stock machine
func DefaultRules() Rules {
	return Rules{
		InitialCredits:    constants.InitialCredits,
		SpinCost:          constants.SpinCost,
		SymbolCount:       constants.SymbolCount,
		JackpotMultiplier: constants.JackpotMultiplier,
		PairMultiplier:    constants.PairMultiplier,
		SpinDuration:      constants.SpinDuration,
	}
}

// OutcomeKind classifies a resolved spin
type OutcomeKind uint8

const (
	OutcomeMiss OutcomeKind = iota
	OutcomePair
	OutcomeJackpot
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomePair:
		return "pair"
	case OutcomeJackpot:
		return "jackpot"
	default:
		return "miss"
	}
}

// Outcome is the result of one spin
type Outcome struct {
	Reels     Reels
	Kind      OutcomeKind
	WinAmount int
	Jackpot   bool
}

// Resolve computes the payout for a set of reels
// Pure: the result depends only on the reels, SpinCost and the multipliers
//   - all reels equal: SpinCost * JackpotMultiplier, jackpot
//   - two distinct symbols: SpinCost * PairMultiplier
//   - all different: nothing
func Resolve(rules Rules, reels Reels) Outcome {
	out := Outcome{Reels: reels}
	switch reels.Distinct() {
	case 1:
		out.Kind = OutcomeJackpot
		out.WinAmount = rules.SpinCost * rules.JackpotMultiplier
		out.Jackpot = true
	case 2:
		out.Kind = OutcomePair
		out.WinAmount = rules.SpinCost * rules.PairMultiplier
	default:
		out.Kind = OutcomeMiss
	}
	return out
}
