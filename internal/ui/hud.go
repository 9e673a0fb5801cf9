//go:build ebiten

package ui

import (
	"image/color"

	"gridsim/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a read-only parameter panel to the right of the simulation view.
type HUD struct {
	title      string
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     []string
	help       []string
}

// NewHUD constructs a HUD with the provided title and panel width. A width of
// zero disables the panel.
func NewHUD(title string, width int, help ...string) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{title: title, width: width, help: help}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the parameter snapshot and status lines.
func (h *HUD) Update(snapshot core.ParameterSnapshot, status ...string) {
	if h == nil {
		return
	}
	h.snapshot = snapshot
	h.status = status
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += groupSpacing

	for _, line := range h.status {
		text.Draw(h.panel, line, face, panelPadding, y, statusColor)
		y += lineHeight
	}
	if len(h.status) > 0 {
		y += groupSpacing - lineHeight
	}

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, groupColor)
		y += lineHeight
		for _, param := range group.Params {
			text.Draw(h.panel, param.Label, face, panelPadding+indent, y, labelColor)
			bounds := text.BoundString(face, param.Value)
			text.Draw(h.panel, param.Value, face, h.width-panelPadding-bounds.Dx(), y, valueColor)
			y += lineHeight
		}
		y += groupSpacing - lineHeight
	}

	helpY := height - panelPadding - (len(h.help)-1)*lineHeight
	if helpY > y {
		for i, line := range h.help {
			text.Draw(h.panel, line, face, panelPadding, helpY+i*lineHeight, helpColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

var (
	panelColor  = color.RGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}
	titleColor  = color.RGBA{R: 0x67, G: 0xe8, B: 0xf9, A: 0xff}
	statusColor = color.RGBA{R: 0x2d, G: 0xd4, B: 0xbf, A: 0xff}
	groupColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 0x9c, G: 0xa3, B: 0xaf, A: 0xff}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	helpColor   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
	groupSpacing   = 24
	indent         = 8
)
