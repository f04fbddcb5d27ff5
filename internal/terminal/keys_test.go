package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestControlFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want control
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ctlQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ctlQuit},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ctlQuit},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ctlPause},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), ctlLeftUp},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), ctlLeftDown},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ctlRightUp},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ctlRightDown},
		{"other rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ctlNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ctlNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := controlFor(tt.ev); got != tt.want {
				t.Errorf("Expected control %d, got %d", tt.want, got)
			}
		})
	}
}
