package game

import (
	"image"
	"math"
)

// Projectile is the ball. AngleX/AngleY form a unit direction vector.
type Projectile struct {
	X, Y           float64
	AngleX, AngleY float64
	Speed          float64
}

// Rect returns the 1x1 grid cell the projectile occupies.
func (p *Projectile) Rect() image.Rectangle {
	return cellRect(p.X, p.Y, 1, 1)
}

// Paddle is a vertical bar at a fixed column. Y is the top edge.
type Paddle struct {
	X int
	Y float64
}

func (p *Paddle) Rect() image.Rectangle {
	return cellRect(float64(p.X), p.Y, 1, PaddleLength)
}

// cellRect truncates a float position onto the pixel grid.
func cellRect(x, y float64, w, h int) image.Rectangle {
	ix, iy := int(x), int(y)
	return image.Rect(ix, iy, ix+w, iy+h)
}

// Game owns the whole simulation state. Only Update mutates it.
type Game struct {
	Session Session
	Round   Round

	Proj        Projectile
	Left, Right Paddle

	rng *Rand
}

func New(seed uint64) *Game {
	g := &Game{
		Session: Session{State: StatePlaying},
		Left:    Paddle{X: LeftPaddleX},
		Right:   Paddle{X: RightPaddleX},
		rng:     NewRand(seed),
	}
	g.resetPaddles()
	g.resetProj()
	return g
}

func (g *Game) State() GameState {
	return g.Session.State
}

// Update advances the game by one fixed tick using a single input snapshot.
func (g *Game) Update(in Input) {
	if in.Quit {
		g.Session.State = StateStopped
	}

	switch g.Session.State {
	case StateStopped:
		return

	case StatePaused:
		if !in.Pause {
			return
		}
		g.Session.State = StatePlaying

	case StateRoundOver:
		g.Round.LostTimer--
		if g.Round.LostTimer <= 0 {
			g.Round.LostTimer = 0
			g.resetProj()
			g.resetPaddles()
			g.Session.State = StatePlaying
		}
		return

	case StatePlaying:
		if in.Pause {
			g.Session.State = StatePaused
			return
		}
	}

	g.movePaddle(&g.Left, in.LeftUp, in.LeftDown)
	g.movePaddle(&g.Right, in.RightUp, in.RightDown)
	g.stepProjectile()
}

// movePaddle applies one tick of movement. Up wins when both keys are held.
// Leaving the grid clamps; overlapping the ball cancels the move.
// A clamped move is committed without the ball check, so a paddle pinned at
// an edge may overlap the ball. Keep this order.
func (g *Game) movePaddle(p *Paddle, up, down bool) {
	prev := p.Y
	step := PaddleSpeed * DeltaTime

	switch {
	case up:
		p.Y -= step
		if p.Y < 0 {
			p.Y = 0
		} else if p.Rect().Overlaps(g.Proj.Rect()) {
			p.Y = prev
		}
	case down:
		p.Y += step
		if p.Y+PaddleLength >= ScreenHeight {
			p.Y = ScreenHeight - PaddleLength
		} else if p.Rect().Overlaps(g.Proj.Rect()) {
			p.Y = prev
		}
	}
}

// stepProjectile moves the ball along x, then along y. Each axis is
// resolved on its own, x first.
func (g *Game) stepProjectile() {
	p := &g.Proj
	prevX, prevY := p.X, p.Y

	p.X += p.AngleX * p.Speed * DeltaTime
	if p.X <= 0 || p.X >= ScreenWidth {
		side := SideRight
		if p.X <= 0 {
			side = SideLeft
		}
		p.X = prevX
		g.Round = Round{LostTimer: RoundDelay, Side: side}
		g.Session.State = StateRoundOver
		return
	}
	if g.hitsPaddle() {
		p.X = prevX
		p.AngleX = -p.AngleX
		p.Speed += ProjSpeedup
	}

	p.Y += p.AngleY * p.Speed * DeltaTime
	if p.Y <= 0 || p.Y >= ScreenHeight || g.hitsPaddle() {
		p.Y = prevY
		p.AngleY = -p.AngleY
	}
}

func (g *Game) hitsPaddle() bool {
	r := g.Proj.Rect()
	return r.Overlaps(g.Left.Rect()) || r.Overlaps(g.Right.Rect())
}

func (g *Game) resetProj() {
	angles := LaunchAngles()
	angle := degToRad(angles[g.rng.Intn(len(angles))])
	g.Proj = Projectile{
		X:      ScreenWidth / 2,
		Y:      ScreenHeight / 2,
		AngleX: math.Cos(angle),
		AngleY: math.Sin(angle),
		Speed:  ProjStartSpeed,
	}
}

func (g *Game) resetPaddles() {
	y := float64(ScreenHeight/2 - PaddleLength/2)
	g.Left.Y = y
	g.Right.Y = y
}
