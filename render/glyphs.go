package render

import (
	"github.com/lixenwraith/lucky-slots/constants"
	"github.com/lixenwraith/lucky-slots/slot"
)

var emojiGlyphs = map[slot.Symbol]string{
	slot.Apple:   "🍎",
	slot.Lemon:   "🍋",
	slot.Cherry:  "🍒",
	slot.Grapes:  "🍇",
	slot.Diamond: "💎",
}

var asciiGlyphs = map[slot.Symbol]string{
	slot.Apple:   "APL",
	slot.Lemon:   "LEM",
	slot.Cherry:  "CHR",
	slot.Grapes:  "GRP",
	slot.Diamond: "DIA",
}

// Glyph returns the display string for a symbol code
// Codes outside the table render as a question mark
func Glyph(s slot.Symbol, ascii bool) string {
	if ascii {
		if g, ok := asciiGlyphs[s]; ok {
			return g
		}
		return constants.UnknownASCIIGlyph
	}
	if g, ok := emojiGlyphs[s]; ok {
		return g
	}
	return constants.UnknownGlyph
}
