package sim

import (
	"math"
	"sort"

	"github.com/lixenwraith/lucky-slots/engine"
	"github.com/lixenwraith/lucky-slots/slot"
)

// Stats summarizes integer samples
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
}

// SessionStats summarizes whole games played from the initial state
type SessionStats struct {
	Sessions     int   `json:"sessions"`
	MaxSpins     int   `json:"max_spins"`
	Busts        int   `json:"busts"`    // ended in game over
	Stranded     int   `json:"stranded"` // positive credits below the spin cost
	Capped       int   `json:"capped"`   // still playable at max spins
	Spins        Stats `json:"spins"`
	FinalCredits Stats `json:"final_credits"`
}

// RunSessions plays sessions games through the real machine until no spin is possible or maxSpins
func RunSessions(rules slot.Rules, sessions, maxSpins int, rng slot.RandomSource) SessionStats {
	if rng == nil {
		rng = slot.DefaultRNG()
	}
	out := SessionStats{Sessions: sessions, MaxSpins: maxSpins}
	spins := make([]int, 0, sessions)
	finals := make([]int, 0, sessions)

	for i := 0; i < sessions; i++ {
		sched := engine.NewManualScheduler(nil)
		m := slot.NewMachine(rules, sched, slot.WithRandomSource(rng))

		n := 0
		for n < maxSpins && m.Spin() {
			sched.Advance(rules.SpinDuration)
			n++
		}

		s := m.State()
		switch {
		case s.GameOver:
			out.Busts++
		case !m.CanSpin():
			out.Stranded++
		default:
			out.Capped++
		}
		spins = append(spins, n)
		finals = append(finals, s.Credits)
	}

	out.Spins = calcStats(spins)
	out.FinalCredits = calcStats(finals)
	return out
}

// calcStats computes mean, population stddev and interpolated percentiles
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}

	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		if i+1 >= n {
			return float64(cp[n-1])
		}
		f := pos - float64(i)
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:   mean,
		StdDev: math.Sqrt(acc / float64(n)),
		P50:    percentile(0.50),
		P90:    percentile(0.90),
		P99:    percentile(0.99),
		Min:    cp[0],
		Max:    cp[n-1],
	}
}
