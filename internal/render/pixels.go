// Package render converts simulation cells into RGBA pixels.
package render

import "image/color"

// FillBinaryRGBA paints 0/1 cells into buf with off for dead cells and on for
// everything else.
func FillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	FillPaletteRGBA(buf, cells, []color.RGBA{toRGBA(off), toRGBA(on)})
}

// FillPaletteRGBA writes palette[cell] for every cell into buf, which must hold
// 4*len(cells) bytes. Values past the end of the palette use its last entry;
// an empty palette clears the pixels to transparent.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		col := palette[min(int(c), last)]
		px := buf[4*i : 4*i+4 : 4*i+4]
		px[0], px[1], px[2], px[3] = col.R, col.G, col.B, col.A
	}
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
