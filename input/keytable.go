package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default bindings: arrows and hjkl move, q/Esc/Ctrl+C quit
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlC:  Quit,
			tcell.KeyEscape: Quit,
			tcell.KeyUp:     Move(MotionUp),
			tcell.KeyDown:   Move(MotionDown),
			tcell.KeyLeft:   Move(MotionLeft),
			tcell.KeyRight:  Move(MotionRight),
		},
		Runes: map[rune]Intent{
			'q': Quit,
			'h': Move(MotionLeft),
			'j': Move(MotionDown),
			'k': Move(MotionUp),
			'l': Move(MotionRight),
		},
	}
}

// Lookup resolves a key event; ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Intent, bool) {
	if ev.Key() == tcell.KeyRune {
		in, ok := kt.Runes[ev.Rune()]
		return in, ok
	}
	in, ok := kt.SpecialKeys[ev.Key()]
	return in, ok
}
