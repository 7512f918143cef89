package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var defaultTable = DefaultKeyTable()

// Translate maps a tcell event to an action using the default bindings
func Translate(ev tcell.Event) Action {
	return defaultTable.Translate(ev)
}

// Translate maps a tcell event to an action
func (kt *KeyTable) Translate(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.TranslateKey(ev.Key(), ev.Rune(), ev.Modifiers())
	case *tcell.EventResize:
		return ActionResize
	}
	return ActionNone
}

// TranslateKey resolves a decoded key press
// Modified runes (Alt, Ctrl) other than the table's special keys are ignored
func (kt *KeyTable) TranslateKey(key tcell.Key, ch rune, mod tcell.ModMask) Action {
	if key != tcell.KeyRune {
		if a, ok := kt.SpecialKeys[key]; ok {
			return a
		}
		return ActionNone
	}

	if mod&(tcell.ModAlt|tcell.ModCtrl|tcell.ModMeta) != 0 {
		// Some terminals report Ctrl+letter as a modified rune
		if mod&tcell.ModCtrl != 0 && (ch == 'c' || ch == 'q') {
			return ActionQuit
		}
		return ActionNone
	}

	if a, ok := kt.Runes[unicode.ToLower(ch)]; ok {
		return a
	}
	return ActionNone
}
