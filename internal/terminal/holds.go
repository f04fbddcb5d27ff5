package terminal

import "time"

// Terminals only report key presses (and auto-repeats), never releases, and
// the first repeat arrives only after the keyboard's repeat delay. Holds
// treats a control as held until delay has passed since the press that
// started the hold, and after that until window has passed since the last
// repeat.
type Holds[K comparable] struct {
	delay  time.Duration
	window time.Duration
	keys   map[K]hold
}

type hold struct {
	start time.Time
	last  time.Time
}

func NewHolds[K comparable](delay, window time.Duration) *Holds[K] {
	return &Holds[K]{
		delay:  delay,
		window: window,
		keys:   make(map[K]hold),
	}
}

// Press records a press or repeat of key. A press after the hold lapsed
// starts a new hold.
func (h *Holds[K]) Press(key K, at time.Time) {
	if !h.Held(key, at) {
		h.keys[key] = hold{start: at, last: at}
		return
	}
	k := h.keys[key]
	k.last = at
	h.keys[key] = k
}

func (h *Holds[K]) Held(key K, now time.Time) bool {
	k, ok := h.keys[key]
	if !ok {
		return false
	}
	return now.Sub(k.start) < h.delay || now.Sub(k.last) < h.window
}

// Release forgets key, ending its hold immediately.
func (h *Holds[K]) Release(key K) {
	delete(h.keys, key)
}
