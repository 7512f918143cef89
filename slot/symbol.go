package slot

import (
	"strconv"
	"strings"

	"github.com/lixenwraith/lucky-slots/constants"
)

// Symbol is a reel symbol code, valid codes are 1..Rules.SymbolCount
type Symbol uint8

// Default alphabet
const (
	Apple Symbol = iota + 1
	Lemon
	Cherry
	Grapes
	Diamond
)

var symbolNames = [...]string{
	Apple:   "apple",
	Lemon:   "lemon",
	Cherry:  "cherry",
	Grapes:  "grapes",
	Diamond: "diamond",
}

func (s Symbol) String() string {
	if int(s) > 0 && int(s) < len(symbolNames) {
		return symbolNames[s]
	}
	return "symbol(" + strconv.Itoa(int(s)) + ")"
}

// Valid reports whether s belongs to an alphabet of symbolCount codes
func (s Symbol) Valid(symbolCount int) bool {
	return s >= 1 && int(s) <= symbolCount
}

// Reels holds one symbol per reel, left to right
type Reels [constants.ReelCount]Symbol

// InitialReels is the face shown before the first spin
func InitialReels() Reels {
	var r Reels
	for i := range r {
		r[i] = Apple
	}
	return r
}

// Distinct returns the number of different symbols showing
func (r Reels) Distinct() int {
	n := 0
	for i := range r {
		seen := false
		for j := 0; j < i; j++ {
			if r[j] == r[i] {
				seen = true
				break
			}
		}
		if !seen {
			n++
		}
	}
	return n
}

func (r Reels) String() string {
	parts := make([]string, len(r))
	for i, s := range r {
		parts[i] = s.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
