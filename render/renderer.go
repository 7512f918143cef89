package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/lucky-slots/constants"
	"github.com/lixenwraith/lucky-slots/slot"
)

// Surface is the drawing target, satisfied by tcell.Screen
type Surface interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// View is everything one frame depends on
type View struct {
	State slot.State
	Rules slot.Rules
	Tally slot.Tally
	Frame int64
	Muted bool
	ASCII bool
}

// Row offsets within the centered block
const (
	rowTitle    = 0
	rowCredits  = 2
	rowReelTop  = 4
	rowReels    = 5
	rowReelBot  = 6
	rowWin      = 8
	rowButton   = 10
	rowJackpot  = 12
	rowGameOver = 13
	rowRestart  = 14
	blockHeight = 15
)

// Renderer draws the slot machine screen
type Renderer struct {
	surface Surface
	width   int
	height  int
}

// NewRenderer creates a renderer bound to surface
func NewRenderer(surface Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Draw renders one complete frame
func (r *Renderer) Draw(v View) {
	r.width, r.height = r.surface.Size()
	r.surface.Clear()
	r.fill()

	if r.width < constants.MinScreenWidth || r.height < constants.MinScreenHeight {
		r.centered(r.height/2, constants.TooSmallText, defaultStyle)
		r.surface.Show()
		return
	}

	// Footer takes the last two rows, the block is centered in the rest
	top := (r.height - 2 - blockHeight) / 2
	if top < 0 {
		top = 0
	}
	s := v.State

	r.centered(top+rowTitle, constants.TitleText, titleStyle)
	r.centered(top+rowCredits, fmt.Sprintf(constants.CreditsFormat, s.Credits), creditsStyle)
	r.drawReels(top, v)

	if s.WinAmount > 0 {
		r.centered(top+rowWin, fmt.Sprintf(constants.WinFormat, s.WinAmount), winStyle)
	}

	r.drawButton(top+rowButton, v)

	if s.ShowJackpot {
		r.centered(top+rowJackpot, constants.JackpotText, jackpotStyle(v.Frame))
	}
	if s.GameOver {
		r.centered(top+rowGameOver, constants.GameOverText, gameOverStyle)
	}
	if NeedsRestart(s, v.Rules) {
		r.centered(top+rowRestart, constants.RestartText, defaultStyle)
	}

	r.drawFooter(v)
	r.surface.Show()
}

// NeedsRestart reports whether the only way forward is a reset
func NeedsRestart(s slot.State, rules slot.Rules) bool {
	return s.GameOver || (!s.IsSpinning && s.Credits < rules.SpinCost)
}

// DisplayReels returns the symbols shown for a frame, cycling while spinning
// The machine's reels are left untouched
func DisplayReels(v View) slot.Reels {
	if !v.State.IsSpinning {
		return v.State.Reels
	}
	n := v.Rules.SymbolCount
	if n <= 0 {
		n = constants.SymbolCount
	}
	step := v.Frame / constants.ReelSpinFrameDivisor
	var reels slot.Reels
	for i := range reels {
		// Offset each reel so they don't move in lockstep
		reels[i] = slot.Symbol((step+int64(i*2))%int64(n) + 1)
	}
	return reels
}

func (r *Renderer) drawReels(top int, v View) {
	cells := len(slot.Reels{})
	boxWidth := cells*(constants.ReelCellWidth+1) + 1
	x0 := (r.width - boxWidth) / 2

	horiz, vert, sep := '═', '║', '│'
	tl, tr, bl, br, tj, bj := '╔', '╗', '╚', '╝', '╤', '╧'
	if v.ASCII {
		horiz, vert, sep = '-', '|', '|'
		tl, tr, bl, br, tj, bj = '+', '+', '+', '+', '+', '+'
	}

	for x := 0; x < boxWidth; x++ {
		topCh, botCh := horiz, horiz
		switch {
		case x == 0:
			topCh, botCh = tl, bl
		case x == boxWidth-1:
			topCh, botCh = tr, br
		case x%(constants.ReelCellWidth+1) == 0:
			topCh, botCh = tj, bj
		}
		r.surface.SetContent(x0+x, top+rowReelTop, topCh, nil, reelBoxStyle)
		r.surface.SetContent(x0+x, top+rowReelBot, botCh, nil, reelBoxStyle)
	}

	reels := DisplayReels(v)
	for i := 0; i <= cells; i++ {
		ch := sep
		if i == 0 || i == cells {
			ch = vert
		}
		r.surface.SetContent(x0+i*(constants.ReelCellWidth+1), top+rowReels, ch, nil, reelBoxStyle)
	}
	for i, sym := range reels {
		glyph := Glyph(sym, v.ASCII)
		cellX := x0 + 1 + i*(constants.ReelCellWidth+1)
		gx := cellX + (constants.ReelCellWidth-runewidth.StringWidth(glyph))/2
		r.text(gx, top+rowReels, glyph, defaultStyle)
	}
}

func (r *Renderer) drawButton(y int, v View) {
	label := fmt.Sprintf(constants.SpinFormat, v.Rules.SpinCost)
	style := buttonStyle
	switch {
	case v.State.IsSpinning:
		label = constants.SpinningText
		style = buttonDisabledStyle
	case !CanSpin(v.State, v.Rules):
		style = buttonDisabledStyle
	}
	r.centered(y, label, style)
}

// CanSpin mirrors the machine guard for presentation
func CanSpin(s slot.State, rules slot.Rules) bool {
	return !s.IsSpinning && !s.GameOver && s.Credits >= rules.SpinCost
}

func (r *Renderer) drawFooter(v View) {
	r.centered(r.height-2, constants.HelpText, footerStyle)

	t := v.Tally
	line := fmt.Sprintf(constants.TallyFormat, t.Spins, t.Won, t.BiggestWin, t.Jackpots)
	if v.Muted {
		line += "  " + constants.MutedIndicator
	}
	r.centered(r.height-1, line, footerStyle)
}

// fill paints the background so Clear's default style doesn't show through
func (r *Renderer) fill() {
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.surface.SetContent(x, y, ' ', nil, defaultStyle)
		}
	}
}

func (r *Renderer) centered(y int, s string, style tcell.Style) {
	s = runewidth.Truncate(s, r.width, "")
	r.text((r.width-runewidth.StringWidth(s))/2, y, s, style)
}

// text draws s from x, advancing by display width so wide glyphs keep alignment
func (r *Renderer) text(x, y int, s string, style tcell.Style) int {
	if y < 0 || y >= r.height {
		return x
	}
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x >= 0 && x+w <= r.width {
			r.surface.SetContent(x, y, ch, nil, style)
		}
		x += w
	}
	return x
}
