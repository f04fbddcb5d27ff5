package game

// Input is the per-tick snapshot the simulation consumes. Pause is an edge
// (true only on the tick the key went down); the movement keys are holds.
type Input struct {
	Quit  bool
	Pause bool

	LeftUp, LeftDown   bool
	RightUp, RightDown bool
}

// Latch turns polled key levels into rising edges.
type Latch[K comparable] struct {
	prev map[K]bool
}

func NewLatch[K comparable]() *Latch[K] {
	return &Latch[K]{prev: make(map[K]bool)}
}

// JustPressed reports whether key is down now but was not on the previous
// call for the same key.
func (l *Latch[K]) JustPressed(key K, down bool) bool {
	jp := down && !l.prev[key]
	l.prev[key] = down
	return jp
}
