package terminal

import (
	"github.com/gdamore/tcell/v2"

	"pong/internal/game"
)

const (
	halfBlock = '▀'

	// One cell covers two canvas rows; the status line sits underneath.
	cellRows  = game.ScreenHeight / 2
	areaWidth = game.ScreenWidth
	areaRows  = cellRows + 1
)

// origin centres the drawing area in a w x h terminal. Terminals smaller
// than the area are drawn from the top-left and clipped by tcell.
func origin(w, h int) (int, int) {
	return max((w-areaWidth)/2, 0), max((h-areaRows)/2, 0)
}

func rgb(c game.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// drawCanvas paints c with half blocks: the foreground is the upper canvas
// row and the background the lower one.
func drawCanvas(s tcell.Screen, c *game.Canvas, x0, y0 int) {
	for row := 0; row < cellRows; row++ {
		for x := 0; x < game.ScreenWidth; x++ {
			top := c.At(x, row*2)
			bottom := c.At(x, row*2+1)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			s.SetContent(x0+x, y0+row, halfBlock, nil, style)
		}
	}
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}
