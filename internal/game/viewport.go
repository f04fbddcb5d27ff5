package game

import (
	"image"
	"math"
)

// Letterbox returns the largest area of a fbW x fbH framebuffer that shows
// the playfield at its own aspect ratio, centred. Y grows downwards.
func Letterbox(fbW, fbH int) image.Rectangle {
	if fbW <= 0 || fbH <= 0 {
		return image.Rectangle{}
	}
	scale := math.Min(float64(fbW)/ScreenWidth, float64(fbH)/ScreenHeight)
	w := int(math.Round(ScreenWidth * scale))
	h := int(math.Round(ScreenHeight * scale))
	x := (fbW - w) / 2
	y := (fbH - h) / 2
	return image.Rect(x, y, x+w, y+h)
}
