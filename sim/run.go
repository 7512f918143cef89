package sim

import (
	"github.com/lixenwraith/lucky-slots/slot"
)

// Report summarizes independent spins
type Report struct {
	Spins       int     `json:"spins"`
	Wagered     int64   `json:"wagered"`
	Won         int64   `json:"won"`
	RTP         float64 `json:"rtp"`
	ExpectedRTP float64 `json:"expected_rtp"`
	HitRate     float64 `json:"hit_rate"`
	Jackpots    int     `json:"jackpots"`
	Pairs       int     `json:"pairs"`
	Misses      int     `json:"misses"`
}

// Run draws and resolves spins independent spins, ignoring the credit balance
func Run(rules slot.Rules, spins int, rng slot.RandomSource) Report {
	if rng == nil {
		rng = slot.DefaultRNG()
	}
	r := Report{ExpectedRTP: ExpectedRTP(rules)}

	for i := 0; i < spins; i++ {
		out := slot.Resolve(rules, slot.Draw(rng, rules.SymbolCount))
		r.Spins++
		r.Wagered += int64(rules.SpinCost)
		r.Won += int64(out.WinAmount)
		switch out.Kind {
		case slot.OutcomeJackpot:
			r.Jackpots++
		case slot.OutcomePair:
			r.Pairs++
		default:
			r.Misses++
		}
	}

	if r.Wagered > 0 {
		r.RTP = float64(r.Won) / float64(r.Wagered)
	}
	if r.Spins > 0 {
		r.HitRate = float64(r.Jackpots+r.Pairs) / float64(r.Spins)
	}
	return r
}
