package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/lixenwraith/lucky-slots/config"
	"github.com/lixenwraith/lucky-slots/sim"
	"github.com/lixenwraith/lucky-slots/slot"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	spinsFlag    = flag.Int("spins", 1_000_000, "Independent spins for the RTP estimate")
	sessionsFlag = flag.Int("sessions", 1000, "Whole games to play, 0 to skip")
	maxSpinsFlag = flag.Int("max-spins", 10_000, "Spin cap per session")
	seedFlag     = flag.Uint64("seed", 0, "RNG seed, 0 for random")
	configFlag   = flag.String("config", "", "YAML rules file (defaults when empty)")
	jsonFlag     = flag.Bool("json", false, "Print the result as JSON")
)

// result is the full simulator output
type result struct {
	Rules    rulesView         `json:"rules"`
	Odds     sim.Odds          `json:"odds"`
	Spins    sim.Report        `json:"spins"`
	Sessions *sim.SessionStats `json:"sessions,omitempty"`
}

type rulesView struct {
	Credits           int    `json:"credits"`
	SpinCost          int    `json:"spin_cost"`
	Symbols           int    `json:"symbols"`
	JackpotMultiplier int    `json:"jackpot_multiplier"`
	PairMultiplier    int    `json:"pair_multiplier"`
	Seed              uint64 `json:"seed"`
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "slot-sim: %v\n", err)
		os.Exit(1)
	}

	res := simulate(cfg.Rules(), *spinsFlag, *sessionsFlag, *maxSpinsFlag, *seedFlag)
	if err := writeResult(os.Stdout, res, *jsonFlag); err != nil {
		fmt.Fprintf(os.Stderr, "slot-sim: %v\n", err)
		os.Exit(1)
	}
}

func simulate(rules slot.Rules, spins, sessions, maxSpins int, seed uint64) result {
	rng := slot.DefaultRNG()
	if seed != 0 {
		rng = slot.NewSeededRNG(seed)
	}

	res := result{
		Rules: rulesView{
			Credits:           rules.InitialCredits,
			SpinCost:          rules.SpinCost,
			Symbols:           rules.SymbolCount,
			JackpotMultiplier: rules.JackpotMultiplier,
			PairMultiplier:    rules.PairMultiplier,
			Seed:              seed,
		},
		Odds:  sim.OddsFor(rules.SymbolCount),
		Spins: sim.Run(rules, spins, rng),
	}
	if sessions > 0 {
		st := sim.RunSessions(rules, sessions, maxSpins, rng)
		res.Sessions = &st
	}
	return res
}

func writeResult(w io.Writer, res result, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	r := res.Rules
	fmt.Fprintf(w, "rules     credits=%d cost=%d symbols=%d jackpot=x%d pair=x%d\n",
		r.Credits, r.SpinCost, r.Symbols, r.JackpotMultiplier, r.PairMultiplier)
	fmt.Fprintf(w, "odds      jackpot=%.4f pair=%.4f miss=%.4f\n", res.Odds.Jackpot, res.Odds.Pair, res.Odds.Miss)

	s := res.Spins
	fmt.Fprintf(w, "spins     %d wagered=%d won=%d\n", s.Spins, s.Wagered, s.Won)
	fmt.Fprintf(w, "rtp       %.4f (expected %.4f) hit rate %.4f\n", s.RTP, s.ExpectedRTP, s.HitRate)
	fmt.Fprintf(w, "outcomes  jackpots=%d pairs=%d misses=%d\n", s.Jackpots, s.Pairs, s.Misses)

	if st := res.Sessions; st != nil {
		fmt.Fprintf(w, "sessions  %d (cap %d) busts=%d stranded=%d capped=%d\n",
			st.Sessions, st.MaxSpins, st.Busts, st.Stranded, st.Capped)
		fmt.Fprintf(w, "length    mean=%.1f sd=%.1f p50=%.0f p90=%.0f p99=%.0f\n",
			st.Spins.Mean, st.Spins.StdDev, st.Spins.P50, st.Spins.P90, st.Spins.P99)
		_, err := fmt.Fprintf(w, "credits   mean=%.1f min=%d max=%d\n",
			st.FinalCredits.Mean, st.FinalCredits.Min, st.FinalCredits.Max)
		return err
	}
	return nil
}
