package game

import "time"

const Title = "8pong"

// Playfield dimensions (in grid pixels).
const (
	ScreenWidth  = 35
	ScreenHeight = 28
)

// Window defaults.
const (
	WindowScale  = 14
	WindowWidth  = ScreenWidth * WindowScale
	WindowHeight = ScreenHeight * WindowScale
)

// Timing. DeltaTime is fixed and does not follow real frame pacing.
const (
	FPSCap    = 60
	DeltaTime = 1.0 / FPSCap

	FrameDelay = time.Second / FPSCap
)

// Paddle constants.
const (
	PaddleLength = 6
	PaddleSpeed  = 23.0 // grid pixels per second

	LeftPaddleX  = 1
	RightPaddleX = ScreenWidth - 2
)

// Projectile constants.
const (
	ProjStartSpeed = 22.0
	ProjSpeedup    = 2.0
)

// RoundDelay is the number of ticks the field stays frozen after a miss.
const RoundDelay = 60

// LaunchAngles returns the reset angles in degrees; one is picked at random
// on every reset.
func LaunchAngles() [4]float64 {
	return [4]float64{20, -20, 160, 200}
}

// Overlay placement.
const (
	WinIconWidth  = 25
	WinIconHeight = 5
	WinIconX      = ScreenWidth/2 - WinIconWidth/2
	WinIconY      = ScreenHeight/2 - WinIconWidth/2

	PauseIconWidth  = 7
	PauseIconHeight = 8
	PauseIconX      = ScreenWidth/2 - 3
	PauseIconY      = ScreenHeight/2 - 4

	PauseShadeAlpha = 50
)
