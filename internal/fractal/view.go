package fractal

import (
	"errors"
	"fmt"

	"gridsim/internal/core"
)

// DefaultZoomFactor shrinks both axes of the view on every zoom.
const DefaultZoomFactor = 2.5

// ErrInvalidZoomFactor is returned for non-positive zoom factors.
var ErrInvalidZoomFactor = errors.New("invalid zoom factor")

// ViewWindow is the rectangle of the complex plane mapped onto the raster.
// Values are replaced, never mutated.
type ViewWindow struct {
	XMin, XMax float64
	YMin, YMax float64
}

// DefaultView frames the whole Mandelbrot set.
func DefaultView() ViewWindow {
	return ViewWindow{XMin: -2.0, XMax: 1.0, YMin: -1.5, YMax: 1.5}
}

// Validate reports ErrInvalidViewWindow when an axis is empty or inverted.
func (v ViewWindow) Validate() error {
	if !(v.XMax > v.XMin) || !(v.YMax > v.YMin) {
		return fmt.Errorf("view x[%g,%g] y[%g,%g]: %w", v.XMin, v.XMax, v.YMin, v.YMax, core.ErrInvalidViewWindow)
	}
	return nil
}

// Width returns the real-axis extent.
func (v ViewWindow) Width() float64 { return v.XMax - v.XMin }

// Height returns the imaginary-axis extent.
func (v ViewWindow) Height() float64 { return v.YMax - v.YMin }

// Center returns the midpoint of the window.
func (v ViewWindow) Center() (float64, float64) {
	return v.XMin + v.Width()/2, v.YMin + v.Height()/2
}

// PixelToComplex maps raster coordinates onto the plane. Pixel (0, 0) maps to
// (XMin, YMin) and y grows downwards with the raster.
func (v ViewWindow) PixelToComplex(px, py float64, width, height int) (float64, float64) {
	cx := v.XMin + (px/float64(width))*v.Width()
	cy := v.YMin + (py/float64(height))*v.Height()
	return cx, cy
}

// Zoom returns a window centred on the clicked pixel with both ranges divided
// by factor.
func Zoom(view ViewWindow, clickPx, clickPy float64, canvasWidth, canvasHeight int, factor float64) (ViewWindow, error) {
	if err := view.Validate(); err != nil {
		return view, err
	}
	if canvasWidth <= 0 || canvasHeight <= 0 {
		return view, fmt.Errorf("canvas %dx%d: %w", canvasWidth, canvasHeight, core.ErrInvalidDimension)
	}
	if !(factor > 0) {
		return view, fmt.Errorf("factor %g: %w", factor, ErrInvalidZoomFactor)
	}
	cx, cy := view.PixelToComplex(clickPx, clickPy, canvasWidth, canvasHeight)
	halfX := view.Width() / factor / 2
	halfY := view.Height() / factor / 2
	return ViewWindow{
		XMin: cx - halfX,
		XMax: cx + halfX,
		YMin: cy - halfY,
		YMax: cy + halfY,
	}, nil
}
