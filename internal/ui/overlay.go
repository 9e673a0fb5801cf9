//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws interaction hints on top of the simulation view: the hovered
// cell, the zoom target and a busy veil while a render is pending.
type Overlay struct {
	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// DrawHighlight outlines the rectangle at (x, y) with size w x h and tints it.
func (o *Overlay) DrawHighlight(screen *ebiten.Image, x, y, w, h float64) {
	o.fillRect(screen, x, y, w, h, highlightFill)
	o.drawRect(screen, x, y, w, h, 1, highlightBorder)
}

// DrawZoomTarget outlines the region a click at (cx, cy) would zoom into.
func (o *Overlay) DrawZoomTarget(screen *ebiten.Image, cx, cy, w, h float64) {
	o.drawRect(screen, cx-w/2, cy-h/2, w, h, 1, highlightBorder)
	o.drawLine(screen, cx-4, cy, cx+4, cy, 1, highlightBorder)
	o.drawLine(screen, cx, cy-4, cx, cy+4, 1, highlightBorder)
}

// DrawBusy dims a w x h area and centres label on it.
func (o *Overlay) DrawBusy(screen *ebiten.Image, w, h int, label string) {
	o.fillRect(screen, 0, 0, float64(w), float64(h), busyVeil)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	text.Draw(screen, label, face, (w-bounds.Dx())/2, h/2, busyText)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	tint(op, col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h, thickness float64, col color.RGBA) {
	o.fillRect(screen, x, y, w, thickness, col)
	o.fillRect(screen, x, y+h-thickness, w, thickness, col)
	o.fillRect(screen, x, y, thickness, h, col)
	o.fillRect(screen, x+w-thickness, y, thickness, h, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	tint(op, col)
	screen.DrawImage(o.pixel, op)
}

// tint applies a straight-alpha colour to the white source pixel.
func tint(op *ebiten.DrawImageOptions, col color.RGBA) {
	a := float32(col.A) / 255
	op.ColorScale.Scale(float32(col.R)/255*a, float32(col.G)/255*a, float32(col.B)/255*a, a)
}

var (
	highlightFill   = color.RGBA{R: 56, G: 189, B: 248, A: 128}
	highlightBorder = color.RGBA{R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff}
	busyVeil        = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0x80}
	busyText        = color.RGBA{R: 0x22, G: 0xd3, B: 0xee, A: 0xff}
)
