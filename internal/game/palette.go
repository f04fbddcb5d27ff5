package game

// Color is an 8-bit per channel colour with straight (non-premultiplied) alpha.
type Color struct {
	R, G, B, A uint8
}

// Opaque returns c with full alpha.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Over composites c onto dst (source-over) and returns an opaque result
// when dst is opaque.
func (c Color) Over(dst Color) Color {
	switch c.A {
	case 255:
		return c
	case 0:
		return dst
	}
	a := uint16(c.A)
	blend := func(s, d uint8) uint8 {
		return uint8((uint16(s)*a + uint16(d)*(255-a)) / 255)
	}
	outA := a + uint16(dst.A)*(255-a)/255
	return Color{
		R: blend(c.R, dst.R),
		G: blend(c.G, dst.G),
		B: blend(c.B, dst.B),
		A: uint8(outA),
	}
}

var Palette = struct {
	Background Color
	CenterLine Color
	Projectile Color
	Paddle     Color
	PauseShade Color
	IconLeft   Color
	IconRight  Color
	IconPause  Color
	ColorKey   Color
}{
	Background: Opaque(0, 0, 0),
	CenterLine: Opaque(0, 0, 255),
	Projectile: Opaque(255, 0, 0),
	Paddle:     Opaque(255, 255, 255),
	PauseShade: Color{R: 255, G: 255, B: 0, A: PauseShadeAlpha},
	IconLeft:   Opaque(90, 200, 255),
	IconRight:  Opaque(255, 150, 70),
	IconPause:  Opaque(255, 255, 255),
	ColorKey:   Opaque(123, 0, 123),
}
