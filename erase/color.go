package erase

import (
	"fmt"
	"image"
	"image/color"
)

// Color is a non-premultiplied 8-bit RGBA value. Two colors match only when
// every channel is identical.
type Color struct {
	R, G, B, A uint8
}

// Transparent is what every erased pixel becomes.
var Transparent = Color{}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color through the NRGBA model.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// At reads the pixel at (x, y) straight from the backing slice.
func At(img *image.NRGBA, x, y int) Color {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	return Color{R: s[0], G: s[1], B: s[2], A: s[3]}
}

func set(img *image.NRGBA, x, y int, c Color) {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	s[0], s[1], s[2], s[3] = c.R, c.G, c.B, c.A
}

// Clone returns a deep copy of img with the same bounds.
func Clone(img *image.NRGBA) *image.NRGBA {
	dst := &image.NRGBA{
		Pix:    make([]uint8, len(img.Pix)),
		Stride: img.Stride,
		Rect:   img.Rect,
	}
	copy(dst.Pix, img.Pix)
	return dst
}
