package game

import (
	"context"
	"fmt"
	"time"
)

// Stats is diagnostic only (window title, status line).
type Stats struct {
	Tick uint64
	FPS  int
}

// Platform is the window/terminal side of the game: it produces one input
// snapshot per tick and draws the command list.
type Platform interface {
	Poll() Input
	Present(cmds []Command, stats Stats) error
}

// Clock paces the loop.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Run drives g until it stops or ctx is cancelled. Both are only observed at
// the top of an iteration, so the tick in flight always completes. The sleep
// at the end of each iteration is a fixed FrameDelay; drift is not corrected.
func Run(ctx context.Context, p Platform, g *Game, clock Clock) error {
	if clock == nil {
		clock = SystemClock{}
	}

	var cmds []Command
	last := clock.Now()
	for g.Session.Running() {
		if ctx.Err() != nil {
			g.Session.State = StateStopped
			break
		}

		now := clock.Now()
		g.Session.FPS = framesPerSecond(now.Sub(last))
		last = now

		g.Update(p.Poll())

		cmds = g.Emit(cmds[:0])
		if err := p.Present(cmds, Stats{Tick: g.Session.Tick, FPS: g.Session.FPS}); err != nil {
			return fmt.Errorf("present tick %d: %w", g.Session.Tick, err)
		}

		g.Session.Tick++
		clock.Sleep(FrameDelay)
	}
	return nil
}

func framesPerSecond(frame time.Duration) int {
	if frame <= 0 {
		return 0
	}
	return int(time.Second / frame)
}

// Title is the window title text for s.
func (s Stats) Title() string {
	return fmt.Sprintf("%s FPS: %d", Title, s.FPS)
}
