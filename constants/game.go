package constants

import "time"

// Machine Rules
// Defaults for a fresh game; a rules file may override everything except ReelCount
const (
	// InitialCredits is the balance a new or reset game starts with
	InitialCredits = 1000

	// SpinCost is the price of one spin
	SpinCost = 50

	// ReelCount is the number of reels on the machine
	ReelCount = 3

	// SymbolCount is the size of the symbol alphabet (codes 1..SymbolCount)
	SymbolCount = 5

	// JackpotMultiplier pays SpinCost * JackpotMultiplier when every reel matches
	JackpotMultiplier = 50

	// PairMultiplier pays SpinCost * PairMultiplier when exactly two reels match
	PairMultiplier = 5

	// SpinDuration is the delay between paying for a spin and its resolution
	SpinDuration = 1 * time.Second
)

// Rule Limits
const (
	// MinSymbolCount keeps at least one non-jackpot outcome possible
	MinSymbolCount = 2

	// MaxSymbolCount is the largest alphabet a rules file may configure
	MaxSymbolCount = 9
)
