package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/lucky-slots/slot"
)

type cell struct {
	ch    rune
	style tcell.Style
}

// memSurface is an in-memory Surface for layout assertions
type memSurface struct {
	width, height int
	cells         map[[2]int]cell
	shows         int
	clears        int
}

func newMemSurface(w, h int) *memSurface {
	return &memSurface{width: w, height: h, cells: make(map[[2]int]cell)}
}

func (m *memSurface) Clear() {
	m.clears++
	m.cells = make(map[[2]int]cell)
}

func (m *memSurface) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	m.cells[[2]int{x, y}] = cell{ch: primary, style: style}
}

func (m *memSurface) Size() (int, int) { return m.width, m.height }
func (m *memSurface) Show()            { m.shows++ }

func (m *memSurface) row(y int) string {
	var b strings.Builder
	for x := 0; x < m.width; x++ {
		if c, ok := m.cells[[2]int{x, y}]; ok {
			b.WriteRune(c.ch)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func (m *memSurface) text() string {
	rows := make([]string, m.height)
	for y := range rows {
		rows[y] = m.row(y)
	}
	return strings.Join(rows, "\n")
}

// find returns the position of the first occurrence of s on screen
func (m *memSurface) find(s string) (x, y int, ok bool) {
	for y := 0; y < m.height; y++ {
		row := m.row(y)
		if i := strings.Index(row, s); i >= 0 {
			return len([]rune(row[:i])), y, true
		}
	}
	return 0, 0, false
}

func baseView() View {
	rules := slot.DefaultRules()
	return View{State: slot.InitialState(rules), Rules: rules, Tally: slot.Tally{Games: 1}}
}

func TestDraw_InitialLayout(t *testing.T) {
	s := newMemSurface(80, 24)
	NewRenderer(s).Draw(baseView())

	screen := s.text()
	for _, want := range []string{"Lucky Slots", "Credits: $1000", "Spin! ($50)", "[space] spin", "spins 0  won $0  best $0  jackpots 0"} {
		if !strings.Contains(screen, want) {
			t.Errorf("Expected %q on screen", want)
		}
	}
	for _, absent := range []string{"You won", "JACKPOT!", "Game Over", "Restart Game"} {
		if strings.Contains(screen, absent) {
			t.Errorf("Unexpected %q on initial screen", absent)
		}
	}
	if n := strings.Count(screen, "🍎"); n != 3 {
		t.Errorf("Expected 3 apples, got %d", n)
	}
	if s.shows != 1 || s.clears != 1 {
		t.Errorf("Expected one clear and one show, got %d/%d", s.clears, s.shows)
	}
}

func TestDraw_WinAndJackpot(t *testing.T) {
	v := baseView()
	v.State.Reels = slot.Reels{slot.Diamond, slot.Diamond, slot.Diamond}
	v.State.WinAmount = 2500
	v.State.ShowJackpot = true
	v.State.Credits = 2550

	s := newMemSurface(80, 24)
	NewRenderer(s).Draw(v)

	screen := s.text()
	for _, want := range []string{"You won $2500!", "JACKPOT!", "Credits: $2550"} {
		if !strings.Contains(screen, want) {
			t.Errorf("Expected %q on screen", want)
		}
	}
	if n := strings.Count(screen, "💎"); n != 3 {
		t.Errorf("Expected 3 diamonds, got %d", n)
	}
}

func TestDraw_GameOver(t *testing.T) {
	v := baseView()
	v.State.Credits = 0
	v.State.GameOver = true
	v.State.Reels = slot.Reels{slot.Apple, slot.Lemon, slot.Cherry}

	s := newMemSurface(80, 24)
	NewRenderer(s).Draw(v)

	screen := s.text()
	if !strings.Contains(screen, "Game Over") || !strings.Contains(screen, "Restart Game [r]") {
		t.Errorf("Expected game over and restart prompt:\n%s", screen)
	}

	x, y, ok := s.find("Spin!")
	if !ok {
		t.Fatal("Spin button missing")
	}
	if got := s.cells[[2]int{x, y}].style; got != buttonDisabledStyle {
		t.Error("Expected disabled button style at game over")
	}
}

func TestDraw_ButtonEnabled(t *testing.T) {
	s := newMemSurface(80, 24)
	NewRenderer(s).Draw(baseView())

	x, y, ok := s.find("Spin!")
	if !ok {
		t.Fatal("Spin button missing")
	}
	if got := s.cells[[2]int{x, y}].style; got != buttonStyle {
		t.Error("Expected enabled button style")
	}
}

func TestDraw_StrandedCreditsShowRestart(t *testing.T) {
	v := baseView()
	v.State.Credits = 20

	s := newMemSurface(80, 24)
	NewRenderer(s).Draw(v)

	screen := s.text()
	if strings.Contains(screen, "Game Over") {
		t.Error("Positive credits are not game over")
	}
	if !strings.Contains(screen, "Restart Game [r]") {
		t.Error("Expected restart hint when spin is unaffordable")
	}
}

func TestDraw_Spinning(t *testing.T) {
	v := baseView()
	v.State.IsSpinning = true
	v.State.Credits = 950

	s := newMemSurface(80, 24)
	r := NewRenderer(s)
	r.Draw(v)
	if !strings.Contains(s.text(), "Spinning...") {
		t.Error("Expected spinning label")
	}

	first := DisplayReels(v)
	v.Frame += 4
	second := DisplayReels(v)
	if first == second {
		t.Errorf("Expected reels to cycle between frames, both %v", first)
	}
	if v.State.Reels != (slot.Reels{slot.Apple, slot.Apple, slot.Apple}) {
		t.Error("Display cycling must not touch state reels")
	}
	for _, sym := range second {
		if !sym.Valid(5) {
			t.Errorf("Cycling produced invalid symbol %d", sym)
		}
	}
}

func TestDraw_UnknownAndASCII(t *testing.T) {
	v := baseView()
	v.State.Reels = slot.Reels{slot.Apple, slot.Symbol(7), slot.Cherry}

	s := newMemSurface(80, 24)
	NewRenderer(s).Draw(v)
	if !strings.Contains(s.text(), "❓") {
		t.Error("Expected question mark for unknown symbol")
	}

	v.ASCII = true
	s = newMemSurface(80, 24)
	NewRenderer(s).Draw(v)
	screen := s.text()
	for _, want := range []string{"APL", "???", "CHR", "+---"} {
		if !strings.Contains(screen, want) {
			t.Errorf("Expected %q in ascii mode", want)
		}
	}
}

func TestDraw_MutedFooter(t *testing.T) {
	v := baseView()
	v.Muted = true
	v.Tally = slot.Tally{Spins: 3, Won: 250, BiggestWin: 250}

	s := newMemSurface(80, 24)
	NewRenderer(s).Draw(v)

	last := s.row(23)
	if !strings.Contains(last, "spins 3  won $250  best $250  jackpots 0  muted") {
		t.Errorf("Unexpected footer %q", last)
	}
}

func TestDraw_TooSmall(t *testing.T) {
	s := newMemSurface(30, 10)
	NewRenderer(s).Draw(baseView())

	screen := s.text()
	if !strings.Contains(screen, "terminal too small") {
		t.Error("Expected too-small message")
	}
	if strings.Contains(screen, "Lucky Slots") {
		t.Error("Layout should not draw in a too-small terminal")
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		sym   slot.Symbol
		ascii bool
		want  string
	}{
		{slot.Apple, false, "🍎"},
		{slot.Lemon, false, "🍋"},
		{slot.Cherry, false, "🍒"},
		{slot.Grapes, false, "🍇"},
		{slot.Diamond, false, "💎"},
		{slot.Symbol(0), false, "❓"},
		{slot.Symbol(6), false, "❓"},
		{slot.Grapes, true, "GRP"},
		{slot.Symbol(9), true, "???"},
	}
	for _, tt := range tests {
		if got := Glyph(tt.sym, tt.ascii); got != tt.want {
			t.Errorf("Glyph(%d, %v): expected %q, got %q", tt.sym, tt.ascii, tt.want, got)
		}
	}
}
