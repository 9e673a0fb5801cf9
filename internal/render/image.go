package render

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"gridsim/internal/core"
)

// DefaultOn and DefaultOff colour binary sims without a palette.
var (
	DefaultOn  = color.RGBA{R: 0x2d, G: 0xd4, B: 0xbf, A: 0xff}
	DefaultOff = color.RGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
)

// SimImage paints the current cells of sim into an image, scaled up by scale.
func SimImage(sim core.Sim, scale int) *image.RGBA {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	buf := make([]byte, 4*size.W*size.H)
	if p, ok := sim.(core.PaletteProvider); ok {
		FillPaletteRGBA(buf, sim.Cells(), p.Palette())
	} else {
		FillBinaryRGBA(buf, sim.Cells(), DefaultOn, DefaultOff)
	}
	src := &image.RGBA{Pix: buf, Stride: 4 * size.W, Rect: image.Rect(0, 0, size.W, size.H)}
	return Scale(src, scale)
}

// Scale enlarges img by an integer factor using nearest-neighbour sampling.
func Scale(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	for y := 0; y < out.Rect.Dy(); y++ {
		for x := 0; x < out.Rect.Dx(); x++ {
			out.SetRGBA(x, y, img.RGBAAt(b.Min.X+x/scale, b.Min.Y+y/scale))
		}
	}
	return out
}

// WritePNG encodes img into the file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := png.Encode(w, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
