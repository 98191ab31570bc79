package game

import (
	"github.com/TheBitDrifter/papercraft/events"
	"github.com/gdamore/tcell/v2"
)

// keyToEvent maps a tcell key event to a game key.
func keyToEvent(ev *tcell.EventKey) events.Key {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return events.KeyUp
	case tcell.KeyDown:
		return events.KeyDown
	case tcell.KeyRight:
		return events.KeyRight
	case tcell.KeyLeft:
		return events.KeyLeft
	case tcell.KeyEscape:
		return events.KeyEscape
	}

	// Rune keys.
	switch ev.Rune() {
	case ' ':
		return events.KeySpace
	case 'k', 'K':
		return events.KeyUp
	case 'j', 'J':
		return events.KeyDown
	case 'l', 'L':
		return events.KeyRight
	case 'h', 'H':
		return events.KeyLeft
	case 'd', 'D':
		return events.KeyDebug
	case 'q', 'Q':
		return events.KeyEscape
	}
	return events.KeyUnknown
}
