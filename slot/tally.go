package slot

// Tally accumulates play statistics across resets
type Tally struct {
	Spins      int
	Games      int
	Wagered    int
	Won        int
	Jackpots   int
	Pairs      int
	BiggestWin int
}

func (t *Tally) recordWager(cost int) {
	t.Spins++
	t.Wagered += cost
}

func (t *Tally) recordOutcome(out Outcome) {
	t.Won += out.WinAmount
	if out.WinAmount > t.BiggestWin {
		t.BiggestWin = out.WinAmount
	}
	switch out.Kind {
	case OutcomeJackpot:
		t.Jackpots++
	case OutcomePair:
		t.Pairs++
	}
}

// RTP is won over wagered, zero before the first spin
func (t Tally) RTP() float64 {
	if t.Wagered == 0 {
		return 0
	}
	return float64(t.Won) / float64(t.Wagered)
}
