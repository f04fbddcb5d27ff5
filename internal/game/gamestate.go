package game

type GameState int

const (
	StatePlaying   GameState = iota // main gameplay
	StatePaused                     // simulation frozen until the pause key is pressed again
	StateRoundOver                  // post-miss freeze, see Round.LostTimer
	StateStopped                    // terminal, the loop exits
)

func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateRoundOver:
		return "round-over"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

// Side names the half of the field whose edge the projectile crossed,
// which is the side that lost the round.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Winner returns the opposite side.
func (s Side) Winner() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Round holds the post-loss freeze. LostTimer is only non-zero in
// StateRoundOver.
type Round struct {
	LostTimer int
	Side      Side
}

// Session carries the top-level loop bookkeeping.
type Session struct {
	State GameState
	Tick  uint64
	FPS   int
}

func (s *Session) Running() bool {
	return s.State != StateStopped
}
