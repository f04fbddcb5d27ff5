package game

import "image"

// Canvas is the ScreenWidth x ScreenHeight off-screen target the draw
// commands are rasterised onto. Pixels is RGBA8, row-major, ready for upload.
type Canvas struct {
	Pixels []uint8

	// NeedsUpload is set by Execute and cleared by whoever uploads the pixels.
	NeedsUpload bool
}

func NewCanvas() *Canvas {
	return &Canvas{
		Pixels:      make([]uint8, ScreenWidth*ScreenHeight*4),
		NeedsUpload: true,
	}
}

func (c *Canvas) pixOff(x, y int) int {
	return (y*ScreenWidth + x) * 4
}

// At returns the colour at (x, y). Out-of-bounds reads return the zero Color.
func (c *Canvas) At(x, y int) Color {
	if !(image.Point{X: x, Y: y}).In(screenRect) {
		return Color{}
	}
	o := c.pixOff(x, y)
	return Color{R: c.Pixels[o], G: c.Pixels[o+1], B: c.Pixels[o+2], A: c.Pixels[o+3]}
}

func (c *Canvas) set(x, y int, col Color) {
	o := c.pixOff(x, y)
	c.Pixels[o+0] = col.R
	c.Pixels[o+1] = col.G
	c.Pixels[o+2] = col.B
	c.Pixels[o+3] = col.A
}

func (c *Canvas) blend(x, y int, col Color) {
	c.set(x, y, col.Over(c.At(x, y)))
}

// Execute runs cmds in order. Rectangles are clipped to the canvas and blits
// of images missing from assets are skipped.
func (c *Canvas) Execute(cmds []Command, assets Assets) {
	for _, cmd := range cmds {
		r := cmd.Rect.Intersect(screenRect)
		if r.Empty() {
			continue
		}
		switch cmd.Kind {
		case CmdClear:
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					c.set(x, y, cmd.Color)
				}
			}
		case CmdFill:
			for y := r.Min.Y; y < r.Max.Y; y++ {
				for x := r.Min.X; x < r.Max.X; x++ {
					c.blend(x, y, cmd.Color)
				}
			}
		case CmdBlit:
			c.blit(cmd.Rect, r, assets[cmd.Image])
		}
	}
	c.NeedsUpload = true
}

// blit stretches src over dst with nearest-neighbour sampling, drawing only
// the part inside clip.
func (c *Canvas) blit(dst, clip image.Rectangle, src *image.NRGBA) {
	if src == nil {
		return
	}
	sb := src.Bounds()
	if sb.Empty() {
		return
	}
	for y := clip.Min.Y; y < clip.Max.Y; y++ {
		sy := sb.Min.Y + (y-dst.Min.Y)*sb.Dy()/dst.Dy()
		for x := clip.Min.X; x < clip.Max.X; x++ {
			sx := sb.Min.X + (x-dst.Min.X)*sb.Dx()/dst.Dx()
			p := src.NRGBAAt(sx, sy)
			if p.A == 0 {
				continue
			}
			c.blend(x, y, Color{R: p.R, G: p.G, B: p.B, A: p.A})
		}
	}
}
