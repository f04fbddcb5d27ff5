package terminal

import "github.com/gdamore/tcell/v2"

type control int

const (
	ctlNone control = iota
	ctlQuit
	ctlPause
	ctlLeftUp
	ctlLeftDown
	ctlRightUp
	ctlRightDown
)

// controlFor maps a key event to the game control it drives.
func controlFor(ev *tcell.EventKey) control {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ctlQuit
	case tcell.KeyUp:
		return ctlRightUp
	case tcell.KeyDown:
		return ctlRightDown
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return ctlQuit
		case ' ':
			return ctlPause
		case 'w', 'W':
			return ctlLeftUp
		case 's', 'S':
			return ctlLeftDown
		}
	}
	return ctlNone
}
