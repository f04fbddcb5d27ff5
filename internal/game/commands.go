package game

import "image"

type CommandKind uint8

const (
	CmdClear CommandKind = iota // fill the whole canvas, no blending
	CmdFill                     // filled rectangle, alpha blended
	CmdBlit                     // stretch an image into Rect
)

// ImageID names an image resolved by the platform.
type ImageID string

const (
	ImageLeft  ImageID = "left"
	ImageRight ImageID = "right"
	ImagePause ImageID = "pause"
)

// Command is one abstract draw operation in grid pixels.
type Command struct {
	Kind  CommandKind
	Rect  image.Rectangle
	Color Color
	Image ImageID
}

var screenRect = image.Rect(0, 0, ScreenWidth, ScreenHeight)

// Emit appends the draw commands for the current state to buf and returns
// it. Later commands draw on top of earlier ones.
func (g *Game) Emit(buf []Command) []Command {
	buf = append(buf, Command{Kind: CmdClear, Rect: screenRect, Color: Palette.Background})

	// Dashed centre line.
	for y := 0; y < ScreenHeight; y += 2 {
		buf = append(buf, fill(image.Rect(ScreenWidth/2, y, ScreenWidth/2+1, y+1), Palette.CenterLine))
	}

	buf = append(buf,
		fill(g.Proj.Rect(), Palette.Projectile),
		fill(g.Left.Rect(), Palette.Paddle),
		fill(g.Right.Rect(), Palette.Paddle),
	)

	switch g.Session.State {
	case StateRoundOver:
		// The recorded side lost, so show the other side's icon.
		id := ImageRight
		if g.Round.Side.Winner() == SideLeft {
			id = ImageLeft
		}
		buf = append(buf, Command{
			Kind:  CmdBlit,
			Rect:  image.Rect(WinIconX, WinIconY, WinIconX+WinIconWidth, WinIconY+WinIconHeight),
			Image: id,
		})

	case StatePaused:
		buf = append(buf,
			fill(screenRect, Palette.PauseShade),
			Command{
				Kind:  CmdBlit,
				Rect:  image.Rect(PauseIconX, PauseIconY, PauseIconX+PauseIconWidth, PauseIconY+PauseIconHeight),
				Image: ImagePause,
			},
		)
	}

	return buf
}

func fill(r image.Rectangle, c Color) Command {
	return Command{Kind: CmdFill, Rect: r, Color: c}
}
