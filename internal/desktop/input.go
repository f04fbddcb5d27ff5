package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/game"
)

// Keys maps the game controls to GLFW keys.
type Keys struct {
	Quit      []glfw.Key
	Pause     glfw.Key
	LeftUp    glfw.Key
	LeftDown  glfw.Key
	RightUp   glfw.Key
	RightDown glfw.Key
}

var DefaultKeys = Keys{
	Quit:      []glfw.Key{glfw.KeyQ, glfw.KeyEscape},
	Pause:     glfw.KeySpace,
	LeftUp:    glfw.KeyW,
	LeftDown:  glfw.KeyS,
	RightUp:   glfw.KeyUp,
	RightDown: glfw.KeyDown,
}

type Keyboard struct {
	keys  Keys
	latch *game.Latch[glfw.Key]
}

func NewKeyboard(keys Keys) *Keyboard {
	return &Keyboard{
		keys:  keys,
		latch: game.NewLatch[glfw.Key](),
	}
}

func held(window *glfw.Window, key glfw.Key) bool {
	return window.GetKey(key) == glfw.Press
}

func (kb *Keyboard) JustPressed(window *glfw.Window, key glfw.Key) bool {
	return kb.latch.JustPressed(key, held(window, key))
}

// Snapshot reads the key state once. Events must have been polled already.
func (kb *Keyboard) Snapshot(window *glfw.Window) game.Input {
	quit := window.ShouldClose()
	for _, k := range kb.keys.Quit {
		if held(window, k) {
			quit = true
		}
	}
	return game.Input{
		Quit:      quit,
		Pause:     kb.JustPressed(window, kb.keys.Pause),
		LeftUp:    held(window, kb.keys.LeftUp),
		LeftDown:  held(window, kb.keys.LeftDown),
		RightUp:   held(window, kb.keys.RightUp),
		RightDown: held(window, kb.keys.RightDown),
	}
}
