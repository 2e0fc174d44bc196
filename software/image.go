package software

import (
	"image"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"

	"github.com/muesli/leddy"
)

// ImageFrame scales img down to the key grid and returns the all-keys frame
// showing it.
func ImageFrame(g leddy.Geometry, img image.Image) []byte {
	scaled := resize.Resize(uint(g.Width), uint(g.Height), img, resize.Bilinear)

	rgba := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	draw.Draw(rgba, rgba.Bounds(), scaled, scaled.Bounds().Min, draw.Src)

	keys := make([]byte, g.FrameSize())
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			led, ok := g.LED(row, col)
			if !ok {
				continue
			}
			px := rgba.RGBAAt(col, row)
			setKey(keys, led, leddy.Color{R: px.R, G: px.G, B: px.B})
		}
	}
	return keys
}

// ShowImage shows img on the keyboard.
func ShowImage(kbd Keyboard, img image.Image) error {
	return kbd.AllKeysRaw(ImageFrame(kbd.Geometry(), img))
}
