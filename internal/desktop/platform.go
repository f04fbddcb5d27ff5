// Package desktop runs the game in a GLFW window with an OpenGL renderer.
package desktop

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"pong/internal/game"
)

type Options struct {
	Scale  int // window pixels per grid pixel
	Assets game.Assets
	Keys   Keys
}

// Platform owns the window, GL context and renderer. It must be used from
// the goroutine that called Open, locked to its OS thread.
type Platform struct {
	window *glfw.Window
	rend   *Renderer
	keys   *Keyboard
	canvas *game.Canvas
	assets game.Assets

	lastFPS int
	closed  bool
}

// Open acquires the window, GL and the renderer in that order. On failure
// everything acquired so far is released before returning.
func Open(opts Options) (*Platform, error) {
	if opts.Scale <= 0 {
		opts.Scale = game.WindowScale
	}
	if opts.Assets == nil {
		opts.Assets = game.BuiltinAssets()
	}
	if opts.Keys.Quit == nil {
		opts.Keys = DefaultKeys
	}

	window, err := initWindow(opts.Scale)
	if err != nil {
		return nil, err
	}
	log.Printf("Created the window (%dx%d)", game.ScreenWidth*opts.Scale, game.ScreenHeight*opts.Scale)

	p := &Platform{
		window:  window,
		keys:    NewKeyboard(opts.Keys),
		canvas:  game.NewCanvas(),
		assets:  opts.Assets,
		lastFPS: -1,
	}

	if err := gl.Init(); err != nil {
		p.Close()
		return nil, fmt.Errorf("gl init: %w", err)
	}
	log.Printf("Initialized OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	rend, err := NewRenderer()
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("renderer: %w", err)
	}
	p.rend = rend
	log.Print("Created the renderer")

	return p, nil
}

// Close releases in reverse order of acquisition. Safe to call twice.
func (p *Platform) Close() {
	if p.closed {
		return
	}
	p.closed = true

	if p.rend != nil {
		p.rend.Destroy()
		log.Print("Destroyed the renderer")
	}
	p.window.Destroy()
	log.Print("Destroyed the window")
	glfw.Terminate()
}

func (p *Platform) Poll() game.Input {
	glfw.PollEvents()
	return p.keys.Snapshot(p.window)
}

func (p *Platform) Present(cmds []game.Command, stats game.Stats) error {
	p.canvas.Execute(cmds, p.assets)

	fbW, fbH := p.window.GetFramebufferSize()
	if fbW > 0 && fbH > 0 {
		if err := p.rend.Draw(p.canvas, fbW, fbH); err != nil {
			return err
		}
	}

	if stats.FPS != p.lastFPS {
		p.window.SetTitle(stats.Title())
		p.lastFPS = stats.FPS
	}

	p.window.SwapBuffers()
	return nil
}
