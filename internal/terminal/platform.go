// Package terminal runs the game inside a terminal using tcell, drawing two
// grid rows per character cell with half-block glyphs.
package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"pong/internal/game"
)

const (
	// DefaultRepeatDelay covers the usual keyboard delay before the first
	// auto-repeat (250 to 660 ms).
	DefaultRepeatDelay = 700 * time.Millisecond
	// DefaultHoldWindow is the gap allowed between two repeats.
	DefaultHoldWindow  = 150 * time.Millisecond
)

type Options struct {
	Assets      game.Assets
	RepeatDelay time.Duration
	HoldWindow  time.Duration

	// Screen overrides the real terminal, e.g. with a simulation screen.
	// It must not be initialised yet.
	Screen tcell.Screen
	Now    func() time.Time
}

type Platform struct {
	screen tcell.Screen
	events chan tcell.Event
	done   chan struct{}

	canvas *game.Canvas
	assets game.Assets

	holds *Holds[control]
	latch *game.Latch[control]
	now   func() time.Time

	quit   bool
	closed bool
}

func Open(opts Options) (*Platform, error) {
	if opts.Assets == nil {
		opts.Assets = game.BuiltinAssets()
	}
	if opts.RepeatDelay <= 0 {
		opts.RepeatDelay = DefaultRepeatDelay
	}
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = DefaultHoldWindow
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("new screen: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	log.Print("Initialized the terminal screen")

	p := &Platform{
		screen: screen,
		events: make(chan tcell.Event, 100),
		done:   make(chan struct{}),
		canvas: game.NewCanvas(),
		assets: opts.Assets,
		holds:  NewHolds[control](opts.RepeatDelay, opts.HoldWindow),
		latch:  game.NewLatch[control](),
		now:    opts.Now,
	}
	go p.readEvents()

	return p, nil
}

// readEvents forwards terminal events until the screen is finalised.
func (p *Platform) readEvents() {
	for {
		ev := p.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.done:
			return
		}
	}
}

// Close restores the terminal. Safe to call twice.
func (p *Platform) Close() {
	if p.closed {
		return
	}
	p.closed = true
	close(p.done)
	p.screen.Fini()
	log.Print("Restored the terminal")
}

// Poll drains pending events without blocking and derives held keys from
// the time of their last press.
func (p *Platform) Poll() game.Input {
	now := p.now()

drain:
	for {
		select {
		case ev := <-p.events:
			p.handle(ev, now)
		default:
			break drain
		}
	}

	return game.Input{
		Quit:      p.quit,
		Pause:     p.latch.JustPressed(ctlPause, p.holds.Held(ctlPause, now)),
		LeftUp:    p.holds.Held(ctlLeftUp, now),
		LeftDown:  p.holds.Held(ctlLeftDown, now),
		RightUp:   p.holds.Held(ctlRightUp, now),
		RightDown: p.holds.Held(ctlRightDown, now),
	}
}

func (p *Platform) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.screen.Sync()

	case *tcell.EventKey:
		ctl := controlFor(ev)
		switch ctl {
		case ctlNone:
			return
		case ctlQuit:
			p.quit = true
			return
		// Only the most recent key auto-repeats, so a new direction ends
		// the opposite hold.
		case ctlLeftUp:
			p.holds.Release(ctlLeftDown)
		case ctlLeftDown:
			p.holds.Release(ctlLeftUp)
		case ctlRightUp:
			p.holds.Release(ctlRightDown)
		case ctlRightDown:
			p.holds.Release(ctlRightUp)
		}
		p.holds.Press(ctl, now)
	}
}

func (p *Platform) Present(cmds []game.Command, stats game.Stats) error {
	p.canvas.Execute(cmds, p.assets)
	p.canvas.NeedsUpload = false

	p.screen.Clear()
	w, h := p.screen.Size()
	x0, y0 := origin(w, h)
	drawCanvas(p.screen, p.canvas, x0, y0)
	drawText(p.screen, x0, y0+game.ScreenHeight/2, fmt.Sprintf("%s tick: %d", stats.Title(), stats.Tick))
	p.screen.Show()
	return nil
}
