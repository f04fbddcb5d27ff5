package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	now    time.Time
	sleeps int
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps++
	c.now = c.now.Add(d)
}

type fakePlatform struct {
	inputs  []Input
	polls   int
	frames  [][]Command
	stats   []Stats
	onFrame func(n int) error
}

func (p *fakePlatform) Poll() Input {
	var in Input
	if p.polls < len(p.inputs) {
		in = p.inputs[p.polls]
	}
	p.polls++
	return in
}

func (p *fakePlatform) Present(cmds []Command, stats Stats) error {
	p.frames = append(p.frames, append([]Command(nil), cmds...))
	p.stats = append(p.stats, stats)
	if p.onFrame != nil {
		return p.onFrame(len(p.frames))
	}
	return nil
}

func TestRunStopsOnQuit(t *testing.T) {
	p := &fakePlatform{inputs: []Input{{}, {}, {}, {Quit: true}}}
	clock := &fakeClock{now: time.Unix(0, 0)}
	g := newTestGame()

	if err := Run(context.Background(), p, g, clock); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(p.frames) != 4 {
		t.Errorf("Expected 4 presented frames, got %d", len(p.frames))
	}
	if g.Session.Tick != 4 {
		t.Errorf("Expected tick 4, got %d", g.Session.Tick)
	}
	if g.State() != StateStopped {
		t.Errorf("Expected state %v, got %v", StateStopped, g.State())
	}
	if clock.sleeps != 4 {
		t.Errorf("Expected 4 sleeps, got %d", clock.sleeps)
	}
}

func TestRunReportsTickAndFPS(t *testing.T) {
	p := &fakePlatform{inputs: []Input{{}, {}, {}, {Quit: true}}}
	clock := &fakeClock{now: time.Unix(0, 0)}

	if err := Run(context.Background(), p, newTestGame(), clock); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for i, s := range p.stats {
		if s.Tick != uint64(i) {
			t.Errorf("Frame %d: expected tick %d, got %d", i, i, s.Tick)
		}
		if i > 0 && s.FPS != FPSCap {
			t.Errorf("Frame %d: expected %d FPS, got %d", i, FPSCap, s.FPS)
		}
	}
}

func TestRunFinishesTickOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := &fakePlatform{onFrame: func(n int) error {
		if n == 3 {
			cancel()
		}
		return nil
	}}
	g := newTestGame()

	if err := Run(ctx, p, g, &fakeClock{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(p.frames) != 3 {
		t.Errorf("Expected 3 frames, got %d", len(p.frames))
	}
	if g.Session.Tick != 3 {
		t.Errorf("Expected the cancelled tick to complete, got tick %d", g.Session.Tick)
	}
	if g.State() != StateStopped {
		t.Errorf("Expected state %v, got %v", StateStopped, g.State())
	}
}

func TestRunReturnsPresentError(t *testing.T) {
	boom := errors.New("boom")
	p := &fakePlatform{onFrame: func(n int) error {
		if n == 2 {
			return boom
		}
		return nil
	}}

	err := Run(context.Background(), p, newTestGame(), &fakeClock{})

	if !errors.Is(err, boom) {
		t.Errorf("Expected wrapped boom error, got %v", err)
	}
}

func TestRunAdvancesSimulation(t *testing.T) {
	inputs := make([]Input, 10)
	inputs[9].Quit = true
	p := &fakePlatform{inputs: inputs}
	g := newTestGame()
	start := g.Proj

	if err := Run(context.Background(), p, g, &fakeClock{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if g.Proj == start {
		t.Error("Expected the projectile to move during the run")
	}
	if first := p.frames[0][0]; first.Kind != CmdClear {
		t.Errorf("Expected frames to start with a clear, got %+v", first)
	}
}

func TestLatch(t *testing.T) {
	l := NewLatch[int]()

	steps := []struct {
		down bool
		want bool
	}{
		{false, false},
		{true, true},
		{true, false},
		{true, false},
		{false, false},
		{true, true},
	}
	for i, s := range steps {
		if got := l.JustPressed(1, s.down); got != s.want {
			t.Errorf("Step %d: expected %v, got %v", i, s.want, got)
		}
	}

	if !l.JustPressed(2, true) {
		t.Error("Expected keys to be tracked independently")
	}
}
