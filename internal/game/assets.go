package game

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"golang.org/x/image/bmp"
)

// Assets resolves image ids to decoded images. Transparent pixels have A=0.
type Assets map[ImageID]*image.NRGBA

// AssetFiles maps every image id to its file name inside an asset directory.
var AssetFiles = map[ImageID]string{
	ImageRight: "right.bmp",
	ImageLeft:  "left.bmp",
	ImagePause: "pause.bmp",
}

// LoadAssets decodes all images from fsys. Pixels matching Palette.ColorKey
// become transparent. The first failure aborts the load.
func LoadAssets(fsys fs.FS) (Assets, error) {
	a := make(Assets, len(AssetFiles))
	for _, id := range []ImageID{ImageRight, ImageLeft, ImagePause} {
		name := AssetFiles[id]
		img, err := loadBMP(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("load asset %q: %w", name, err)
		}
		a[id] = img
	}
	return a, nil
}

func loadBMP(fsys fs.FS, name string) (*image.NRGBA, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return applyColorKey(src, Palette.ColorKey), nil
}

// applyColorKey copies src into a zero-origin NRGBA image, dropping pixels
// that match key.
func applyColorKey(src image.Image, key Color) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			p := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			if p.R == key.R && p.G == key.G && p.B == key.B {
				continue
			}
			dst.SetNRGBA(x, y, p)
		}
	}
	return dst
}

// 3x5 glyphs for the built-in icons.
var glyphs = map[rune][5]string{
	'<': {"..#", ".#.", "#..", ".#.", "..#"},
	'>': {"#..", ".#.", "..#", ".#.", "#.."},
	'E': {"###", "#..", "##.", "#..", "###"},
	'F': {"###", "#..", "##.", "#..", "#.."},
	'G': {".##", "#..", "#.#", "#.#", ".##"},
	'H': {"#.#", "#.#", "###", "#.#", "#.#"},
	'I': {"###", ".#.", ".#.", ".#.", "###"},
	'L': {"#..", "#..", "#..", "#..", "###"},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'T': {"###", ".#.", ".#.", ".#.", ".#."},
}

const (
	glyphW   = 3
	glyphH   = 5
	glyphGap = 1
)

func textWidth(text string) int {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return n*glyphW + (n-1)*glyphGap
}

// drawText stamps text onto img with its top-left corner at (x, y).
func drawText(img *image.NRGBA, x, y int, text string, col Color) {
	c := color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A}
	for _, ch := range text {
		g, ok := glyphs[ch]
		if ok {
			for row := 0; row < glyphH; row++ {
				for column := 0; column < glyphW; column++ {
					if g[row][column] == '#' {
						img.SetNRGBA(x+column, y+row, c)
					}
				}
			}
		}
		x += glyphW + glyphGap
	}
}

func makeWinIcon(text string, col Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, WinIconWidth, WinIconHeight))
	drawText(img, (WinIconWidth-textWidth(text))/2, 0, text, col)
	return img
}

func makePauseIcon(col Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, PauseIconWidth, PauseIconHeight))
	c := color.NRGBA{R: col.R, G: col.G, B: col.B, A: col.A}
	// Two bars with a one pixel transparent border.
	for y := 1; y < PauseIconHeight-1; y++ {
		for _, x := range []int{1, 2, 4, 5} {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// BuiltinAssets builds the icons procedurally, for runs without an asset
// directory.
func BuiltinAssets() Assets {
	return Assets{
		ImageLeft:  makeWinIcon("<LEFT", Palette.IconLeft),
		ImageRight: makeWinIcon("RIGHT>", Palette.IconRight),
		ImagePause: makePauseIcon(Palette.IconPause),
	}
}
