// Package sim measures machine economics by headless play
package sim

import (
	"github.com/lixenwraith/lucky-slots/slot"
)

// Odds are the per-spin outcome probabilities for a uniform alphabet of n symbols over three reels
type Odds struct {
	Jackpot float64 `json:"jackpot"`
	Pair    float64 `json:"pair"`
	Miss    float64 `json:"miss"`
}

// OddsFor returns closed-form outcome probabilities
// Jackpot: n matching faces out of n^3 = 1/n^2
// Pair: 3 positions for the odd reel, n*(n-1) symbol choices = 3(n-1)/n^2
func OddsFor(n int) Odds {
	if n <= 0 {
		return Odds{}
	}
	nf := float64(n)
	jackpot := 1 / (nf * nf)
	pair := 3 * (nf - 1) / (nf * nf)
	return Odds{Jackpot: jackpot, Pair: pair, Miss: 1 - jackpot - pair}
}

// ExpectedRTP is the long-run return per credit wagered
func ExpectedRTP(rules slot.Rules) float64 {
	o := OddsFor(rules.SymbolCount)
	return o.Jackpot*float64(rules.JackpotMultiplier) + o.Pair*float64(rules.PairMultiplier)
}
