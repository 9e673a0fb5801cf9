package fractal

import (
	"image"
	"image/color"
	"math"
)

// Colorize maps an escape count to the display palette. Points that never
// escaped are black; the rest ramp through red, yellow and white. The budget
// is clamped to at least 1.
func Colorize(iterCount, maxIter int) color.RGBA {
	if maxIter < 1 {
		maxIter = 1
	}
	if iterCount >= maxIter {
		return color.RGBA{A: 0xff}
	}
	t := float64(iterCount) / float64(maxIter)
	return color.RGBA{
		R: channel(255 * t * 3.5),
		G: channel(255 * (t*2.5 - 0.5)),
		B: channel(255 * (t*1.5 - 1.0)),
		A: 0xff,
	}
}

// channel clamps to [0, 255] and rounds half to even like a canvas pixel store.
func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}

// FillRGBA writes the colourised field into buf as RGBA bytes. buf must hold
// 4*Width*Height bytes.
func (f *IterationField) FillRGBA(buf []byte) {
	for i, n := range f.Counts {
		c := Colorize(n, f.MaxIter)
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// Image returns the colourised field as an image.
func (f *IterationField) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	f.FillRGBA(img.Pix)
	return img
}
