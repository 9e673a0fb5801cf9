//go:build !ebiten

package ui

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// DrawHighlight is a no-op placeholder.
func (o *Overlay) DrawHighlight(any, float64, float64, float64, float64) {}

// DrawZoomTarget is a no-op placeholder.
func (o *Overlay) DrawZoomTarget(any, float64, float64, float64, float64) {}

// DrawBusy is a no-op placeholder.
func (o *Overlay) DrawBusy(any, int, int, string) {}
