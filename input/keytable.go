package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, Enter, Esc)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyEnter:  ActionSpin,
		},
		Runes: map[rune]Action{
			' ': ActionSpin,
			's': ActionSpin,
			'r': ActionReset,
			'm': ActionToggleMute,
			'q': ActionQuit,
		},
	}
}
