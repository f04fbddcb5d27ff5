package desktop

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/game"
)

// initWindow initialises GLFW and opens a resizable window scale times the
// playfield size. GLFW is terminated again if the window cannot be created.
func initWindow(scale int) (*glfw.Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Decorated, glfw.True)

	window, err := glfw.CreateWindow(game.ScreenWidth*scale, game.ScreenHeight*scale, game.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	// The frame loop paces itself.
	glfw.SwapInterval(0)

	return window, nil
}
